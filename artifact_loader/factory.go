package artifact_loader

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Factory is a global ArtifactLoaderFactory instance
var Factory = newArtifactLoaderFactory()

func init() {
	Factory.RegisterArtifactLoaders(NewFileRowLoader, NewGzipRowLoader)
}

type ArtifactLoaderFactory struct {
	artifactLoaders map[string]func() Loader
	// extension to loader identifier
	extensions map[string]string
}

func newArtifactLoaderFactory() ArtifactLoaderFactory {
	return ArtifactLoaderFactory{
		artifactLoaders: make(map[string]func() Loader),
		extensions:      make(map[string]string),
	}
}

func (b *ArtifactLoaderFactory) RegisterArtifactLoaders(loaderFuncs ...func() Loader) {
	for _, ctor := range loaderFuncs {
		// create an instance of the loader to get the identifier
		c := ctor()
		b.artifactLoaders[c.Identifier()] = ctor
		for _, ext := range c.Extensions() {
			b.extensions[strings.ToLower(ext)] = c.Identifier()
		}
	}
}

// GetLoader returns a new instance of the loader with the given identifier
func (b *ArtifactLoaderFactory) GetLoader(identifier string) (Loader, error) {
	ctor, ok := b.artifactLoaders[identifier]
	if !ok {
		return nil, fmt.Errorf("artifact loader '%s' not registered", identifier)
	}
	return ctor(), nil
}

// GetLoaderForPath returns the loader registered for the extension of path,
// falling back to the plain file loader
func (b *ArtifactLoaderFactory) GetLoaderForPath(path string) (Loader, error) {
	identifier, ok := b.extensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		identifier = FileRowLoaderIdentifier
	}
	return b.GetLoader(identifier)
}
