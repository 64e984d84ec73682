package extractor

import (
	"fmt"

	"github.com/turbot/kgx-ingest-sdk/helpers"
	"github.com/turbot/kgx-ingest-sdk/types"
)

// IdExtractor extracts a subject id, object id or predicate from a row
type IdExtractor[R any] func(R) (types.Optional[string], error)

// PropertyExtractor extracts a property mapping from a row
type PropertyExtractor[R any] func(R) (types.Properties, error)

// RowExtractors is the set of functions used to turn a row into a [types.Tuple]
// Any function may be nil: a nil IdExtractor yields no value, a nil PropertyExtractor yields an empty mapping
type RowExtractors[R any] struct {
	Subject           IdExtractor[R]
	Object            IdExtractor[R]
	Predicate         IdExtractor[R]
	SubjectProperties PropertyExtractor[R]
	ObjectProperties  PropertyExtractor[R]
	EdgeProperties    PropertyExtractor[R]
}

func (x IdExtractor[R]) extract(row R) (types.Optional[string], error) {
	if x == nil {
		return types.None[string](), nil
	}
	return x(row)
}

func (x PropertyExtractor[R]) extract(row R) (types.Properties, error) {
	if x == nil {
		return types.Properties{}, nil
	}
	props, err := x(row)
	if err != nil {
		return nil, err
	}
	if props == nil {
		props = types.Properties{}
	}
	return props, nil
}

// Const returns an IdExtractor which always yields value
func Const[R any](value string) IdExtractor[R] {
	return func(R) (types.Optional[string], error) {
		return types.Some(value), nil
	}
}

// Column returns an IdExtractor which yields the field at index i of a delimited row
// a negative index counts back from the end of the row
func Column(i int) IdExtractor[[]string] {
	return func(row []string) (types.Optional[string], error) {
		v, err := helpers.Column(row, i)
		if err != nil {
			return types.None[string](), err
		}
		return types.Some(v), nil
	}
}

// PrefixedColumn returns an IdExtractor which yields the field at index i with a curie prefix, e.g. "NCBIGene:<field>"
func PrefixedColumn(prefix string, i int) IdExtractor[[]string] {
	return func(row []string) (types.Optional[string], error) {
		v, err := helpers.Column(row, i)
		if err != nil {
			return types.None[string](), err
		}
		return types.Some(fmt.Sprintf("%s:%s", prefix, v)), nil
	}
}
