package loader

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Factory is a global LoaderFactory instance
// loaders register themselves from their package init function
var Factory = newLoaderFactory()

type LoaderFactory struct {
	loaders map[string]func(*LoaderParams) SourceDataLoader
}

func newLoaderFactory() LoaderFactory {
	return LoaderFactory{
		loaders: make(map[string]func(*LoaderParams) SourceDataLoader),
	}
}

func (f *LoaderFactory) RegisterLoaders(ctors ...func(*LoaderParams) SourceDataLoader) {
	for _, ctor := range ctors {
		// create an instance of the loader to get the identifier
		l := ctor(&LoaderParams{})
		f.loaders[l.Identifier()] = ctor
	}
}

// GetLoader creates the loader with the given identifier
func (f *LoaderFactory) GetLoader(identifier string, params *LoaderParams) (SourceDataLoader, error) {
	ctor, ok := f.loaders[identifier]
	if !ok {
		return nil, fmt.Errorf("loader '%s' not registered", identifier)
	}
	return ctor(params), nil
}

// Identifiers returns the identifiers of all registered loaders, sorted
func (f *LoaderFactory) Identifiers() []string {
	ids := maps.Keys(f.loaders)
	slices.Sort(ids)
	return ids
}
