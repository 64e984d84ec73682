package ncbi_gene

import (
	"context"
	"fmt"

	"github.com/turbot/kgx-ingest-sdk/extractor"
	"github.com/turbot/kgx-ingest-sdk/helpers"
	"github.com/turbot/kgx-ingest-sdk/loader"
	"github.com/turbot/kgx-ingest-sdk/types"
)

func init() {
	loader.Factory.RegisterLoaders(NewNCBIGeneLoader)
}

const (
	SourceId       = "NCBI"
	ProvenanceId   = "infores:NCBI"
	ParsingVersion = "1.0"
	SourceVersion  = "v1.0"

	DataUrl  = "https://ftp.ncbi.nih.gov/genomes/refseq/vertebrate_mammalian/Homo_sapiens/all_assembly_versions/GCF_000001405.40_GRCh38.p14/"
	DataFile = "GCF_000001405.40_GRCh38.p14_genomic.gff.gz"

	predicate = "similar_to"
	geneType  = "gene"
)

// GFF3 columns, see http://useast.ensembl.org/info/website/upload/gff.html
const (
	sequenceCol   = 0
	typeCol       = 2
	startCol      = 3
	endCol        = 4
	strandCol     = 6
	attributesCol = 8
)

// NCBIGeneLoader loads NCBI gene to HGNC cross references from the RefSeq GRCh38 GFF annotation
type NCBIGeneLoader struct {
	loader.LoaderBase
}

func NewNCBIGeneLoader(params *loader.LoaderParams) loader.SourceDataLoader {
	return &NCBIGeneLoader{
		LoaderBase: loader.NewLoaderBase(params),
	}
}

func (l *NCBIGeneLoader) Identifier() string {
	return SourceId
}

func (l *NCBIGeneLoader) ProvenanceId() string {
	return ProvenanceId
}

func (l *NCBIGeneLoader) ParsingVersion() string {
	return ParsingVersion
}

func (l *NCBIGeneLoader) DataFiles() []string {
	return []string{DataFile}
}

func (l *NCBIGeneLoader) GetLatestSourceVersion(context.Context) (string, error) {
	return SourceVersion, nil
}

func (l *NCBIGeneLoader) GetData(ctx context.Context) error {
	return l.PullFiles(ctx, DataUrl, DataFile)
}

// ParseData reads the gene records of the GFF file
func (l *NCBIGeneLoader) ParseData(ctx context.Context) (*types.LoadMetadata, error) {
	e := l.NewExtractor()
	x := extractor.RowExtractors[[]string]{
		Subject:           subject,
		Object:            object,
		Predicate:         extractor.Const[[]string](predicate),
		SubjectProperties: subjectProperties,
	}
	err := e.CsvExtractFile(ctx, l.DataFilePath(DataFile), x,
		extractor.WithDelimiter("\t"),
		extractor.WithCommentCharacter("#"),
		extractor.WithHeaderRow(),
		extractor.WithFilter(typeCol, geneType))
	if err != nil {
		return nil, err
	}
	return e.LoadMetadata(), nil
}

func geneIds(row []string) (geneId, hgncId string, err error) {
	attr, err := helpers.Column(row, attributesCol)
	if err != nil {
		return "", "", err
	}
	attributes, err := helpers.ParseGffAttributes(attr)
	if err != nil {
		return "", "", err
	}
	return attributes.GeneAndHgncIds()
}

func subject(row []string) (types.Optional[string], error) {
	geneId, _, err := geneIds(row)
	if err != nil {
		return types.None[string](), err
	}
	return types.Some(fmt.Sprintf("NCBIGene:%s", geneId)), nil
}

func object(row []string) (types.Optional[string], error) {
	_, hgncId, err := geneIds(row)
	if err != nil {
		return types.None[string](), err
	}
	return types.Some(fmt.Sprintf("HGNC:%s", hgncId)), nil
}

var subjectPropertyColumns = []struct {
	name string
	col  int
}{
	{"SEQUENCE", sequenceCol},
	{"START_POSITION", startCol},
	{"END_POSITION", endCol},
	{"STRAND", strandCol},
}

func subjectProperties(row []string) (types.Properties, error) {
	props := make(types.Properties, len(subjectPropertyColumns))
	for _, c := range subjectPropertyColumns {
		v, err := helpers.Column(row, c.col)
		if err != nil {
			return nil, err
		}
		props[c.name] = v
	}
	return props, nil
}
