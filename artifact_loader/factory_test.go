package artifact_loader

import (
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactLoaderFactory_GetLoaderForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "genomic.gff.gz", want: GzipRowLoaderIdentifier},
		{path: "GENOMIC.GFF.GZ", want: GzipRowLoaderIdentifier},
		{path: "data.gzip", want: GzipRowLoaderIdentifier},
		{path: "ClinGen_gene_curation_list_GRCh38.tsv", want: FileRowLoaderIdentifier},
		{path: "download", want: FileRowLoaderIdentifier},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			l, err := Factory.GetLoaderForPath(tt.path)
			assert.NoError(t, err)
			assert.Equalf(t, tt.want, l.Identifier(), "GetLoaderForPath(%s)", tt.path)
		})
	}
}

func TestArtifactLoaderFactory_GetLoader_NotRegistered(t *testing.T) {
	_, err := Factory.GetLoader("zip_row_loader")
	assert.Error(t, err)
}

func TestLoaders_Open(t *testing.T) {
	dir := t.TempDir()
	content := "#comment\nG1\tD1\n"

	plainPath := filepath.Join(dir, "plain.tsv")
	require.NoError(t, os.WriteFile(plainPath, []byte(content), 0644))

	gzPath := filepath.Join(dir, "compressed.tsv.gz")
	f, err := os.Create(gzPath)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	for _, path := range []string{plainPath, gzPath} {
		l, err := Factory.GetLoaderForPath(path)
		require.NoError(t, err)
		r, err := l.Open(context.Background(), path)
		require.NoError(t, err)
		got, err := io.ReadAll(r)
		assert.NoError(t, err)
		assert.NoError(t, r.Close())
		assert.Equalf(t, content, string(got), "Open(%s)", path)
	}
}

func TestLoaders_OpenErrors(t *testing.T) {
	dir := t.TempDir()
	notGzip := filepath.Join(dir, "not_gzip.gz")
	require.NoError(t, os.WriteFile(notGzip, []byte("plain text"), 0644))

	_, err := NewGzipRowLoader().Open(context.Background(), notGzip)
	assert.Error(t, err)
	_, err = NewFileRowLoader().Open(context.Background(), filepath.Join(dir, "missing.tsv"))
	assert.Error(t, err)
}
