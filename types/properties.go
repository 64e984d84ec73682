package types

import (
	"fmt"

	"github.com/turbot/kgx-ingest-sdk/constants"
	"golang.org/x/exp/maps"
)

// Properties is a free-form property mapping returned by a property extractor
type Properties map[string]any

// NodeFields are the fields of a node which are derived from the subject properties
type NodeFields struct {
	Name       string
	Categories []string
	Properties Properties
}

// EdgeFields are the fields of an edge which are derived from the edge properties
type EdgeFields struct {
	PrimaryKnowledgeSource     string
	AggregatorKnowledgeSources []string
	Properties                 Properties
}

// SplitNodeProperties separates the reserved name and categories keys from the remaining properties
// The source map is not modified.
func SplitNodeProperties(props Properties) (NodeFields, error) {
	remaining := Properties(maps.Clone(props))
	if remaining == nil {
		remaining = Properties{}
	}
	var res NodeFields
	var err error

	if v, ok := remaining[constants.NodeName]; ok {
		delete(remaining, constants.NodeName)
		if res.Name, err = toString(v); err != nil {
			return NodeFields{}, fmt.Errorf("invalid %s property: %w", constants.NodeName, err)
		}
	}
	if v, ok := remaining[constants.NodeCategories]; ok {
		delete(remaining, constants.NodeCategories)
		if res.Categories, err = toStringSlice(v); err != nil {
			return NodeFields{}, fmt.Errorf("invalid %s property: %w", constants.NodeCategories, err)
		}
	}
	res.Properties = remaining
	return res, nil
}

// SplitEdgeProperties separates the reserved knowledge source keys from the remaining properties
// The source map is not modified.
func SplitEdgeProperties(props Properties) (EdgeFields, error) {
	remaining := Properties(maps.Clone(props))
	if remaining == nil {
		remaining = Properties{}
	}
	var res EdgeFields
	var err error

	if v, ok := remaining[constants.PrimaryKnowledgeSource]; ok {
		delete(remaining, constants.PrimaryKnowledgeSource)
		if res.PrimaryKnowledgeSource, err = toString(v); err != nil {
			return EdgeFields{}, fmt.Errorf("invalid %s property: %w", constants.PrimaryKnowledgeSource, err)
		}
	}
	if v, ok := remaining[constants.AggregatorKnowledgeSources]; ok {
		delete(remaining, constants.AggregatorKnowledgeSources)
		if res.AggregatorKnowledgeSources, err = toStringSlice(v); err != nil {
			return EdgeFields{}, fmt.Errorf("invalid %s property: %w", constants.AggregatorKnowledgeSources, err)
		}
	}
	res.Properties = remaining
	return res, nil
}

func toString(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	default:
		return "", fmt.Errorf("expected string, got %T", v)
	}
}

// toStringSlice accepts a single string, a []string or a []any containing only strings
func toStringSlice(v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{t}, nil
	case []string:
		return append([]string(nil), t...), nil
	case []any:
		res := make([]string, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string at index %d, got %T", i, item)
			}
			res[i] = s
		}
		return res, nil
	default:
		return nil, fmt.Errorf("expected string or list of strings, got %T", v)
	}
}
