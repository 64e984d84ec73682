package types

import (
	"encoding/json"

	"github.com/turbot/kgx-ingest-sdk/constants"
	"golang.org/x/exp/maps"
)

// Node is an entity record in the output graph, keyed by a unique identifier
type Node struct {
	Id         string
	Name       string
	Categories []string
	Properties Properties
}

func NewNode(id string, fields NodeFields) *Node {
	return &Node{
		Id:         id,
		Name:       fields.Name,
		Categories: fields.Categories,
		Properties: fields.Properties,
	}
}

// MarshalJSON writes the node as a flat KGX node object
// the distinguished fields take precedence over properties of the same name
func (n *Node) MarshalJSON() ([]byte, error) {
	res := make(map[string]any, len(n.Properties)+3)
	maps.Copy(res, n.Properties)
	res[constants.KgxId] = n.Id
	res[constants.KgxName] = n.Name
	if len(n.Categories) > 0 {
		res[constants.KgxCategory] = n.Categories
	} else {
		delete(res, constants.KgxCategory)
	}
	return json.Marshal(res)
}
