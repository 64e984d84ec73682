package artifact_loader

import (
	"context"
	"io"
)

// Loader is an interface which provides a method for opening a locally saved source file
// Loaders provided by the SDK: [FileRowLoader], [GzipRowLoader]
type Loader interface {
	Identifier() string
	// Extensions returns the file extensions this loader handles - an empty list means any
	Extensions() []string
	// Open the locally saved file and perform any necessary decompression
	// the caller must close the returned reader
	Open(context.Context, string) (io.ReadCloser, error)
}
