package types

import (
	"encoding/json"

	"github.com/turbot/kgx-ingest-sdk/constants"
	"golang.org/x/exp/maps"
)

// Edge is a directed, predicate-labelled relationship between two node identifiers
type Edge struct {
	SubjectId                  string
	ObjectId                   string
	Predicate                  string
	PrimaryKnowledgeSource     string
	AggregatorKnowledgeSources []string
	Properties                 Properties
}

func NewEdge(subjectId, objectId, predicate string, fields EdgeFields) *Edge {
	return &Edge{
		SubjectId:                  subjectId,
		ObjectId:                   objectId,
		Predicate:                  predicate,
		PrimaryKnowledgeSource:     fields.PrimaryKnowledgeSource,
		AggregatorKnowledgeSources: fields.AggregatorKnowledgeSources,
		Properties:                 fields.Properties,
	}
}

// MarshalJSON writes the edge as a flat KGX edge object
func (e *Edge) MarshalJSON() ([]byte, error) {
	res := make(map[string]any, len(e.Properties)+5)
	maps.Copy(res, e.Properties)
	res[constants.KgxSubject] = e.SubjectId
	res[constants.KgxPredicate] = e.Predicate
	res[constants.KgxObject] = e.ObjectId
	delete(res, constants.PrimaryKnowledgeSource)
	delete(res, constants.AggregatorKnowledgeSources)
	if e.PrimaryKnowledgeSource != "" {
		res[constants.PrimaryKnowledgeSource] = e.PrimaryKnowledgeSource
	}
	if len(e.AggregatorKnowledgeSources) > 0 {
		res[constants.AggregatorKnowledgeSources] = e.AggregatorKnowledgeSources
	}
	return json.Marshal(res)
}
