package artifact_loader

import (
	"context"
	"fmt"
	"io"
	"os"
)

const FileRowLoaderIdentifier = "file_row_loader"

// FileRowLoader is a Loader that opens an uncompressed file so it can be read a line at a time
type FileRowLoader struct {
}

func NewFileRowLoader() Loader {
	return &FileRowLoader{}
}

func (g FileRowLoader) Identifier() string {
	return FileRowLoaderIdentifier
}

func (g FileRowLoader) Extensions() []string {
	return nil
}

// Open implements Loader
func (g FileRowLoader) Open(_ context.Context, inputPath string) (io.ReadCloser, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", inputPath, err)
	}
	return f, nil
}
