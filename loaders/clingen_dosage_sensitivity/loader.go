package clingen_dosage_sensitivity

import (
	"context"
	"time"

	"github.com/turbot/kgx-ingest-sdk/constants"
	"github.com/turbot/kgx-ingest-sdk/extractor"
	"github.com/turbot/kgx-ingest-sdk/helpers"
	"github.com/turbot/kgx-ingest-sdk/loader"
	"github.com/turbot/kgx-ingest-sdk/types"
)

// register the loader from the package init function
func init() {
	loader.Factory.RegisterLoaders(NewClinGenDosageSensitivityLoader)
}

const (
	SourceId       = "ClinGenDosageSensitivity"
	ProvenanceId   = "infores:clingen"
	ParsingVersion = "v1.0"

	DataUrl    = "https://ftp.clinicalgenome.org/"
	GeneFile   = "ClinGen_gene_curation_list_GRCh38.tsv"
	RegionFile = "ClinGen_region_curation_list_GRCh38.tsv"
)

// column indices - HI is haploinsufficiency, TS is triplosensitivity
// the disease columns are the last two of the row
const (
	geneCol            = 1
	regionCol          = 0
	hiDiseaseCol       = -2
	tsDiseaseCol       = -1
	hiScoreCol         = 4
	hiDescriptionCol   = 5
	tsScoreCol         = 12
	tsDescriptionCol   = 13
	haploinsufficiency = "Haploinsufficiency"
	triplosensitivity  = "Triplosensitivity"
)

// dosagePass describes one extraction pass over a curation list
type dosagePass struct {
	file           string
	subjectPrefix  string
	subjectCol     int
	predicate      string
	dosageType     string
	diseaseCol     int
	scoreCol       int
	descriptionCol int
}

var passes = []dosagePass{
	{GeneFile, "NCBIGene", geneCol, "gene associated with condition", haploinsufficiency, hiDiseaseCol, hiScoreCol, hiDescriptionCol},
	{GeneFile, "NCBIGene", geneCol, "gene associated with condition", triplosensitivity, tsDiseaseCol, tsScoreCol, tsDescriptionCol},
	{RegionFile, "ISCARegion", regionCol, "region associated with condition", haploinsufficiency, hiDiseaseCol, hiScoreCol, hiDescriptionCol},
	{RegionFile, "ISCARegion", regionCol, "region associated with condition", triplosensitivity, tsDiseaseCol, tsScoreCol, tsDescriptionCol},
}

// ClinGenDosageSensitivityLoader loads the ClinGen gene and region dosage sensitivity curation lists
type ClinGenDosageSensitivityLoader struct {
	loader.LoaderBase
}

func NewClinGenDosageSensitivityLoader(params *loader.LoaderParams) loader.SourceDataLoader {
	return &ClinGenDosageSensitivityLoader{
		LoaderBase: loader.NewLoaderBase(params),
	}
}

func (l *ClinGenDosageSensitivityLoader) Identifier() string {
	return SourceId
}

func (l *ClinGenDosageSensitivityLoader) ProvenanceId() string {
	return ProvenanceId
}

func (l *ClinGenDosageSensitivityLoader) ParsingVersion() string {
	return ParsingVersion
}

func (l *ClinGenDosageSensitivityLoader) DataFiles() []string {
	return []string{GeneFile, RegionFile}
}

// GetLatestSourceVersion returns today's date - the source publishes no version
func (l *ClinGenDosageSensitivityLoader) GetLatestSourceVersion(context.Context) (string, error) {
	return time.Now().Format("20060102"), nil
}

func (l *ClinGenDosageSensitivityLoader) GetData(ctx context.Context) error {
	return l.PullFiles(ctx, DataUrl, l.DataFiles()...)
}

// ParseData runs a haploinsufficiency and a triplosensitivity pass over each curation list
// all passes share one extractor so each gene or region node is written once
func (l *ClinGenDosageSensitivityLoader) ParseData(ctx context.Context) (*types.LoadMetadata, error) {
	e := l.NewExtractor()
	for _, p := range passes {
		err := e.CsvExtractFile(ctx, l.DataFilePath(p.file), p.rowExtractors(),
			extractor.WithDelimiter("\t"),
			extractor.WithCommentCharacter("#"),
			extractor.WithHeaderRow())
		if err != nil {
			return nil, err
		}
	}
	return e.LoadMetadata(), nil
}

func (p dosagePass) rowExtractors() extractor.RowExtractors[[]string] {
	return extractor.RowExtractors[[]string]{
		Subject:        extractor.PrefixedColumn(p.subjectPrefix, p.subjectCol),
		Object:         p.object,
		Predicate:      extractor.Const[[]string](p.predicate),
		EdgeProperties: p.edgeProperties,
	}
}

// object returns the disease, or the catch-all disease if the row names none
func (p dosagePass) object(row []string) (types.Optional[string], error) {
	disease, err := helpers.Column(row, p.diseaseCol)
	if err != nil {
		return types.None[string](), err
	}
	if disease == "" {
		return types.Some(constants.MondoDisease), nil
	}
	return types.Some(disease), nil
}

func (p dosagePass) edgeProperties(row []string) (types.Properties, error) {
	description, err := helpers.Column(row, p.descriptionCol)
	if err != nil {
		return nil, err
	}
	score, err := helpers.Column(row, p.scoreCol)
	if err != nil {
		return nil, err
	}
	disease, err := helpers.Column(row, p.diseaseCol)
	if err != nil {
		return nil, err
	}
	scoreProps, err := scoreProperties(score, p.dosageType, disease)
	if err != nil {
		return nil, err
	}

	props := types.Properties{
		constants.PrimaryKnowledgeSource: ProvenanceId,
		p.dosageType + "_Description":    description,
	}
	for k, v := range scoreProps {
		props[k] = v
	}
	return props, nil
}
