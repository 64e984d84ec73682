package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestParse(t *testing.T) {
	src := `
output_dir    = "/tmp/kgx"
download_rate = 0.5

loader "NCBI" {
  skip_download = true
}

loader "ClinGenDosageSensitivity" {
  data_dir = "/data/clingen"
}
`
	c, err := Parse([]byte(src), "kgx.hcl")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/kgx", c.OutputDir)
	assert.Equal(t, DefaultDataDir, c.DataDir)
	require.Len(t, c.Loaders, 2)

	ncbi := c.Loader("NCBI")
	assert.True(t, ncbi.IsSkipDownload())
	assert.Nil(t, ncbi.DataDir)

	dosage := c.Loader("ClinGenDosageSensitivity")
	assert.False(t, dosage.IsSkipDownload())
	if assert.NotNil(t, dosage.DataDir) {
		assert.Equal(t, "/data/clingen", *dosage.DataDir)
	}

	missing := c.Loader("ClinGenGeneDiseaseValidity")
	assert.Equal(t, "ClinGenGeneDiseaseValidity", missing.Identifier)
	assert.False(t, missing.IsSkipDownload())

	d := c.DownloadLimiter()
	assert.Equal(t, rate.Limit(0.5), d.FillRate)
	assert.Equal(t, DefaultDownloadBurst, d.BucketSize)
	assert.Equal(t, int64(DefaultDownloadConcurrency), d.MaxConcurrency)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		// decode errors name the file they came from
		wantFileName bool
	}{
		{name: "syntax error", src: `output_dir = `, wantFileName: true},
		{name: "unknown attribute", src: `test_mode = true`, wantFileName: true},
		{name: "wrong type", src: `download_burst = "lots"`, wantFileName: true},
		{name: "loader without label", src: `loader { }`, wantFileName: true},
		{name: "duplicate loader", src: "loader \"NCBI\" {}\nloader \"NCBI\" {}"},
		{name: "invalid limiter", src: `download_concurrency = -1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "kgx.hcl")
			assert.Error(t, err)
			if tt.wantFileName {
				assert.ErrorContains(t, err, "kgx.hcl")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kgx.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`data_dir = "/tmp/kgx_data"`), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/kgx_data", c.DataDir)
	assert.Equal(t, DefaultOutputDir, c.OutputDir)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, DefaultOutputDir, c.OutputDir)
	assert.Equal(t, DefaultDataDir, c.DataDir)
	assert.Empty(t, c.Loaders)
	assert.NoError(t, c.Validate())
}
