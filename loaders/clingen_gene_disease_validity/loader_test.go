package clingen_gene_disease_validity

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turbot/kgx-ingest-sdk/extractor"
	"github.com/turbot/kgx-ingest-sdk/loader"
	"github.com/turbot/kgx-ingest-sdk/types"
)

const fixture = `"CLINGEN GENE DISEASE VALIDITY CURATIONS"
"FILE CREATED: 2024-01-01"
"+++++++++++","++++++++++++++","+++++++++++++","++++++++++++++++++","+++++++++","+++++++++","++++++++++++++","+++++++++++++","+++++++++++++++++++","+++++++++++++++++++"
"GENE SYMBOL","GENE ID (HGNC)","DISEASE LABEL","DISEASE ID (MONDO)","MOI","SOP","CLASSIFICATION","ONLINE REPORT","CLASSIFICATION DATE","GCEP"
"A2ML1","HGNC:23336","Noonan syndrome with multiple lentigines","MONDO:0007893","AD","SOP7","Disputed","https://search.clinicalgenome.org/kb/gene-validity/1","2018-06-07T14:37:47.175Z","RASopathy GCEP"
"AARS1","HGNC:20","hereditary motor and sensory neuropathy, type 2","MONDO:0100156","AD","SOP9","Definitive","https://search.clinicalgenome.org/kb/gene-validity/2","2024-02-20T16:00:00.000Z","CMT GCEP"`

// sink records what it is given
type sink struct {
	nodes   []*types.Node
	edges   []*types.Edge
	written map[string]bool
}

func (s *sink) WriteNode(_ context.Context, n *types.Node) error {
	s.nodes = append(s.nodes, n)
	s.written[n.Id] = true
	return nil
}

func (s *sink) WriteEdge(_ context.Context, e *types.Edge) error {
	s.edges = append(s.edges, e)
	return nil
}

func (s *sink) HasWrittenNode(id string) bool { return s.written[id] }

func (s *sink) WrittenNodes() []string {
	var res []string
	for _, n := range s.nodes {
		res = append(res, n.Id)
	}
	return res
}

var _ extractor.Sink = (*sink)(nil)

func TestClinGenGeneDiseaseValidityLoader_ParseData(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, DataFile), []byte(fixture), 0644))

	out := &sink{written: make(map[string]bool)}
	l := NewClinGenGeneDiseaseValidityLoader(&loader.LoaderParams{DataPath: dataDir, OutputWriter: out})

	md, err := l.ParseData(context.Background())
	require.NoError(t, err)

	// the first banner row is the header, the second has too few columns
	assert.Equal(t, 5, md.RecordCounter)
	assert.Equal(t, 1, md.SkippedRecordCounter)
	if assert.Len(t, md.Errors, 1) {
		assert.True(t, strings.Contains(md.Errors[0], "out of range"))
	}

	assert.Equal(t, []string{"HGNC:23336", "HGNC:20"}, out.WrittenNodes())
	require.Len(t, out.edges, 2)
	assert.Equal(t, &types.Edge{
		SubjectId:              "HGNC:23336",
		ObjectId:               "MONDO:0007893",
		Predicate:              "gene_associated_with_condition",
		PrimaryKnowledgeSource: ProvenanceId,
		Properties: types.Properties{
			"Mode_of_Inheritance":   "AD",
			"Classification":        "Disputed",
			"Classification_Date":   "2018-06-07T14:37:47.175Z",
			"Classification_Report": "https://search.clinicalgenome.org/kb/gene-validity/1",
		},
	}, out.edges[0])
	assert.Equal(t, "MONDO:0100156", out.edges[1].ObjectId)
}

func Test_geneId(t *testing.T) {
	tests := []struct {
		name    string
		row     []string
		want    types.Optional[string]
		wantErr bool
	}{
		{name: "hgnc id", row: []string{"A2ML1", "HGNC:23336"}, want: types.Some("HGNC:23336")},
		{name: "column title", row: []string{"GENE SYMBOL", "GENE ID (HGNC)"}, want: types.None[string]()},
		{name: "banner", row: []string{"CLINGEN GENE DISEASE VALIDITY CURATIONS"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := geneId(tt.row)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equalf(t, tt.want, got, "geneId(%v)", tt.row)
		})
	}
}
