package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/turbot/kgx-ingest-sdk/rate_limiter"
	"golang.org/x/time/rate"
)

const (
	DefaultOutputDir           = "./kgx_output"
	DefaultDataDir             = "./kgx_data"
	DefaultDownloadRate        = 2.0
	DefaultDownloadBurst       = 1
	DefaultDownloadConcurrency = 4
)

// RunConfig is the configuration for a load run
//
//	output_dir = "~/kgx"
//	data_dir   = "~/kgx_data"
//
//	loader "NCBI" {
//	  skip_download = true
//	}
type RunConfig struct {
	OutputDir           string          `hcl:"output_dir,optional"`
	DataDir             string          `hcl:"data_dir,optional"`
	DownloadRate        *float64        `hcl:"download_rate"`
	DownloadBurst       *int            `hcl:"download_burst"`
	DownloadConcurrency *int            `hcl:"download_concurrency"`
	Loaders             []*LoaderConfig `hcl:"loader,block"`
}

// LoaderConfig holds the per-loader settings
type LoaderConfig struct {
	Identifier   string  `hcl:"identifier,label"`
	DataDir      *string `hcl:"data_dir"`
	SkipDownload *bool   `hcl:"skip_download"`
}

func (l *LoaderConfig) IsSkipDownload() bool {
	return l.SkipDownload != nil && *l.SkipDownload
}

// LoadFile reads and parses the config file at path
func LoadFile(path string) (*RunConfig, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses config source, applies defaults and expands ~ in paths
func Parse(data []byte, filename string) (*RunConfig, error) {
	c := &RunConfig{}
	if err := decodeRunConfig(data, filename, c); err != nil {
		return nil, err
	}
	if err := c.init(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Default returns a config with default settings and no loader blocks
func Default() *RunConfig {
	c := &RunConfig{}
	// the defaults contain no ~ so init cannot fail
	_ = c.init()
	return c
}

func (c *RunConfig) init() error {
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	var err error
	if c.OutputDir, err = homedir.Expand(c.OutputDir); err != nil {
		return err
	}
	if c.DataDir, err = homedir.Expand(c.DataDir); err != nil {
		return err
	}
	for _, l := range c.Loaders {
		if l.DataDir == nil {
			continue
		}
		expanded, err := homedir.Expand(*l.DataDir)
		if err != nil {
			return err
		}
		l.DataDir = &expanded
	}
	return nil
}

func (c *RunConfig) Validate() error {
	var errList []error
	seen := make(map[string]struct{})
	for _, l := range c.Loaders {
		if _, ok := seen[l.Identifier]; ok {
			errList = append(errList, fmt.Errorf("loader '%s' is configured more than once", l.Identifier))
		}
		seen[l.Identifier] = struct{}{}
	}
	if err := c.DownloadLimiter().Validate(); err != nil {
		errList = append(errList, err)
	}
	return errors.Join(errList...)
}

// Loader returns the config for the given loader, or an empty config if there is no block for it
func (c *RunConfig) Loader(identifier string) *LoaderConfig {
	for _, l := range c.Loaders {
		if l.Identifier == identifier {
			return l
		}
	}
	return &LoaderConfig{Identifier: identifier}
}

// DownloadLimiter returns the rate limiter definition for source downloads
func (c *RunConfig) DownloadLimiter() *rate_limiter.Definition {
	d := &rate_limiter.Definition{
		Name:           "download",
		FillRate:       rate.Limit(DefaultDownloadRate),
		BucketSize:     DefaultDownloadBurst,
		MaxConcurrency: DefaultDownloadConcurrency,
	}
	if c.DownloadRate != nil {
		d.FillRate = rate.Limit(*c.DownloadRate)
	}
	if c.DownloadBurst != nil {
		d.BucketSize = *c.DownloadBurst
	}
	if c.DownloadConcurrency != nil {
		d.MaxConcurrency = int64(*c.DownloadConcurrency)
	}
	return d
}
