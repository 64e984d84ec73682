package loader

import (
	"context"

	"github.com/turbot/kgx-ingest-sdk/types"
)

// SourceDataLoader fetches the files of one data source and converts them to KGX nodes and edges
type SourceDataLoader interface {
	// Identifier returns the source id, e.g. "ClinGenDosageSensitivity"
	Identifier() string
	// ProvenanceId returns the infores curie of the source
	ProvenanceId() string
	// ParsingVersion must change whenever a parser change would change its output
	ParsingVersion() string
	DataFiles() []string
	GetLatestSourceVersion(context.Context) (string, error)
	// GetData downloads the data files into the loader data path
	GetData(context.Context) error
	// ParseData extracts nodes and edges from the data files and writes them to the output sink
	ParseData(context.Context) (*types.LoadMetadata, error)
}
