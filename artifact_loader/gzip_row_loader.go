package artifact_loader

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

const GzipRowLoaderIdentifier = "gzip_row_loader"

// GzipRowLoader is a Loader that opens a gzip file and decompresses it as it is read
type GzipRowLoader struct {
}

func NewGzipRowLoader() Loader {
	return &GzipRowLoader{}
}

func (g GzipRowLoader) Identifier() string {
	return GzipRowLoaderIdentifier
}

func (g GzipRowLoader) Extensions() []string {
	return []string{".gz", ".gzip"}
}

// Open implements Loader
func (g GzipRowLoader) Open(_ context.Context, inputPath string) (io.ReadCloser, error) {
	gzFile, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", inputPath, err)
	}

	gzReader, err := gzip.NewReader(gzFile)
	if err != nil {
		gzFile.Close()
		return nil, fmt.Errorf("error creating gzip reader for %s: %w", inputPath, err)
	}
	return &gzipReadCloser{Reader: gzReader, file: gzFile}, nil
}

// gzipReadCloser closes both the gzip stream and the underlying file
type gzipReadCloser struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Close() error {
	return errors.Join(g.Reader.Close(), g.file.Close())
}
