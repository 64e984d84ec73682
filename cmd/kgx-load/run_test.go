package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turbot/kgx-ingest-sdk/config"
	"github.com/turbot/kgx-ingest-sdk/constants"
	"github.com/turbot/kgx-ingest-sdk/data_puller"
	"github.com/turbot/kgx-ingest-sdk/filepaths"
	"github.com/turbot/kgx-ingest-sdk/loaders/clingen_gene_disease_validity"
)

const validityFixture = `"GENE SYMBOL","GENE ID (HGNC)","DISEASE LABEL","DISEASE ID (MONDO)","MOI","SOP","CLASSIFICATION","ONLINE REPORT","CLASSIFICATION DATE","GCEP"
"A2ML1","HGNC:23336","Noonan syndrome","MONDO:0007893","AD","SOP7","Disputed","https://example.org/1","2018-06-07","RASopathy GCEP"
"AARS1","HGNC:20","neuropathy","MONDO:0100156","AD","SOP9","Definitive","https://example.org/2","2024-02-20","CMT GCEP"`

func testConfig(t *testing.T) (*config.RunConfig, string) {
	base := t.TempDir()
	dataDir := filepath.Join(base, "validity_data")
	require.NoError(t, os.MkdirAll(dataDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, clingen_gene_disease_validity.DataFile), []byte(validityFixture), 0644))

	src := fmt.Sprintf(`
output_dir = %q
data_dir   = %q

loader "ClinGenGeneDiseaseValidity" {
  data_dir      = %q
  skip_download = true
}
`, filepath.Join(base, "out"), filepath.Join(base, "data"), dataDir)
	cfg, err := config.Parse([]byte(src), "kgx.hcl")
	require.NoError(t, err)
	return cfg, base
}

func TestRunner_RunLoader(t *testing.T) {
	cfg, base := testConfig(t)
	r := &runner{cfg: cfg, runId: "test-run", puller: data_puller.New()}

	md, err := r.runLoader(context.Background(), clingen_gene_disease_validity.SourceId)
	require.NoError(t, err)
	assert.Equal(t, 2, md.RecordCounter)
	assert.Equal(t, 2, md.NodeCount)
	assert.Equal(t, 2, md.EdgeCount)

	outputDir := filepath.Join(base, "out", filepaths.LoaderDirName(clingen_gene_disease_validity.SourceId))
	for _, name := range []string{constants.NodesFileName, constants.EdgesFileName, constants.MetadataFileName} {
		assert.FileExists(t, filepath.Join(outputDir, name))
	}

	// the output is flushed by the time runLoader returns
	nodes, err := os.ReadFile(filepath.Join(outputDir, constants.NodesFileName))
	require.NoError(t, err)
	assert.Equal(t, "{\"id\":\"HGNC:23336\",\"name\":\"\"}\n{\"id\":\"HGNC:20\",\"name\":\"\"}\n", string(nodes))
	edges, err := os.ReadFile(filepath.Join(outputDir, constants.EdgesFileName))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(edges), "\n"))

	written, err := ReadRunMetadata(filepath.Join(outputDir, constants.MetadataFileName))
	require.NoError(t, err)
	assert.Equal(t, "test-run", written.RunId)
	assert.Equal(t, "ClinGenGeneDiseaseValidity", written.SourceId)
	assert.Equal(t, "infores:clingen", written.ProvenanceId)
	assert.Equal(t, "1.0", written.ParsingVersion)
	assert.Equal(t, 2, written.RecordCounter)
	assert.Equal(t, 0, written.SkippedRecordCounter)
	assert.Empty(t, written.Errors)
}

func TestRunner_RunLoader_UnknownLoader(t *testing.T) {
	cfg, _ := testConfig(t)
	r := &runner{cfg: cfg, runId: "test-run", puller: data_puller.New(), skipDownload: true}

	_, err := r.runLoader(context.Background(), "Missing")
	assert.Error(t, err)
}

func TestListCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := listCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "ClinGenDosageSensitivity\nClinGenGeneDiseaseValidity\nNCBI\n", out.String())
}
