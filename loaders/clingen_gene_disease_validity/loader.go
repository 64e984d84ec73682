package clingen_gene_disease_validity

import (
	"context"
	"strings"
	"time"

	"github.com/turbot/kgx-ingest-sdk/constants"
	"github.com/turbot/kgx-ingest-sdk/extractor"
	"github.com/turbot/kgx-ingest-sdk/helpers"
	"github.com/turbot/kgx-ingest-sdk/loader"
	"github.com/turbot/kgx-ingest-sdk/types"
)

func init() {
	loader.Factory.RegisterLoaders(NewClinGenGeneDiseaseValidityLoader)
}

const (
	SourceId       = "ClinGenGeneDiseaseValidity"
	ProvenanceId   = "infores:clingen"
	ParsingVersion = "1.0"

	DataUrl  = "https://search.clinicalgenome.org/kb/gene-validity/"
	DataFile = "download"

	predicate  = "gene_associated_with_condition"
	hgncPrefix = "HGNC:"
)

// columns of the gene-disease validity csv
const (
	geneSymbolCol = iota
	geneIdCol
	diseaseLabelCol
	diseaseIdCol
	moiCol
	sopCol
	classificationCol
	onlineReportCol
	classificationDateCol
	gcepCol
)

// ClinGenGeneDiseaseValidityLoader loads the ClinGen gene-disease validity curations
type ClinGenGeneDiseaseValidityLoader struct {
	loader.LoaderBase
}

func NewClinGenGeneDiseaseValidityLoader(params *loader.LoaderParams) loader.SourceDataLoader {
	return &ClinGenGeneDiseaseValidityLoader{
		LoaderBase: loader.NewLoaderBase(params),
	}
}

func (l *ClinGenGeneDiseaseValidityLoader) Identifier() string {
	return SourceId
}

func (l *ClinGenGeneDiseaseValidityLoader) ProvenanceId() string {
	return ProvenanceId
}

func (l *ClinGenGeneDiseaseValidityLoader) ParsingVersion() string {
	return ParsingVersion
}

func (l *ClinGenGeneDiseaseValidityLoader) DataFiles() []string {
	return []string{DataFile}
}

// GetLatestSourceVersion returns today's date - the source publishes no version
func (l *ClinGenGeneDiseaseValidityLoader) GetLatestSourceVersion(context.Context) (string, error) {
	return time.Now().Format("20060102"), nil
}

func (l *ClinGenGeneDiseaseValidityLoader) GetData(ctx context.Context) error {
	return l.PullFiles(ctx, DataUrl, DataFile)
}

func (l *ClinGenGeneDiseaseValidityLoader) ParseData(ctx context.Context) (*types.LoadMetadata, error) {
	e := l.NewExtractor()
	x := extractor.RowExtractors[[]string]{
		Subject:        geneId,
		Object:         extractor.Column(diseaseIdCol),
		Predicate:      extractor.Const[[]string](predicate),
		EdgeProperties: edgeProperties,
	}
	err := e.CsvExtractFile(ctx, l.DataFilePath(DataFile), x,
		extractor.WithDelimiter(","),
		extractor.WithCommentCharacter("#"),
		extractor.WithHeaderRow())
	if err != nil {
		return nil, err
	}
	return e.LoadMetadata(), nil
}

// geneId returns the HGNC gene id
// the download starts with banner and column title rows, which carry no HGNC id and produce nothing
func geneId(row []string) (types.Optional[string], error) {
	v, err := helpers.Column(row, geneIdCol)
	if err != nil {
		return types.None[string](), err
	}
	if !strings.HasPrefix(v, hgncPrefix) {
		return types.None[string](), nil
	}
	return types.Some(v), nil
}

var edgePropertyColumns = []struct {
	name string
	col  int
}{
	{"Mode_of_Inheritance", moiCol},
	{"Classification", classificationCol},
	{"Classification_Date", classificationDateCol},
	{"Classification_Report", onlineReportCol},
}

func edgeProperties(row []string) (types.Properties, error) {
	props := types.Properties{constants.PrimaryKnowledgeSource: ProvenanceId}
	for _, c := range edgePropertyColumns {
		v, err := helpers.Column(row, c.col)
		if err != nil {
			return nil, err
		}
		props[c.name] = v
	}
	return props, nil
}
