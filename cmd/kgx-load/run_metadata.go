package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/turbot/kgx-ingest-sdk/constants"
	"github.com/turbot/kgx-ingest-sdk/types"
	"gopkg.in/yaml.v3"
)

// RunMetadata is written alongside the KGX files of each loader
type RunMetadata struct {
	types.LoadMetadata `yaml:",inline"`

	RunId          string    `yaml:"run_id"`
	SourceId       string    `yaml:"source_id"`
	ProvenanceId   string    `yaml:"provenance_id"`
	SourceVersion  string    `yaml:"source_version"`
	ParsingVersion string    `yaml:"parsing_version"`
	StartTime      time.Time `yaml:"start_time"`
	Duration       string    `yaml:"duration"`
	NodeCount      int       `yaml:"node_count"`
	EdgeCount      int       `yaml:"edge_count"`
}

func (m *RunMetadata) Write(outputDir string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal run metadata: %w", err)
	}
	filename := filepath.Join(outputDir, constants.MetadataFileName)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write run metadata %s: %w", filename, err)
	}
	return nil
}

func ReadRunMetadata(path string) (*RunMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m := &RunMetadata{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse run metadata %s: %w", path, err)
	}
	return m, nil
}
