package loader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/turbot/kgx-ingest-sdk/data_puller"
	"github.com/turbot/kgx-ingest-sdk/extractor"
)

// LoaderParams are passed to a loader constructor
type LoaderParams struct {
	// DataPath is the directory the data files are downloaded to and read from
	DataPath string
	// OutputWriter receives the nodes and edges - if nil they are kept in memory by the extractor
	OutputWriter extractor.Sink
	Puller       *data_puller.Puller
}

// LoaderBase provides the state and helpers common to all loaders
// it should be embedded in all loader implementations
type LoaderBase struct {
	DataPath     string
	OutputWriter extractor.Sink
	Puller       *data_puller.Puller
}

func NewLoaderBase(params *LoaderParams) LoaderBase {
	if params == nil {
		params = &LoaderParams{}
	}
	puller := params.Puller
	if puller == nil {
		puller = data_puller.New()
	}
	return LoaderBase{
		DataPath:     params.DataPath,
		OutputWriter: params.OutputWriter,
		Puller:       puller,
	}
}

// NewExtractor returns an extractor which forwards to the output writer, if there is one
func (b *LoaderBase) NewExtractor() *extractor.Extractor {
	if b.OutputWriter != nil {
		return extractor.New(extractor.WithSink(b.OutputWriter))
	}
	return extractor.New()
}

// DataFilePath returns the local path of a data file
func (b *LoaderBase) DataFilePath(fileName string) string {
	return filepath.Join(b.DataPath, fileName)
}

// PullFiles downloads each file from baseUrl into the data path
func (b *LoaderBase) PullFiles(ctx context.Context, baseUrl string, fileNames ...string) error {
	var errList []error
	for _, fileName := range fileNames {
		if _, err := b.Puller.PullViaHTTP(ctx, baseUrl+fileName, b.DataPath); err != nil {
			errList = append(errList, fmt.Errorf("failed to pull %s: %w", fileName, err))
		}
	}
	return errors.Join(errList...)
}
