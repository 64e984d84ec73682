package extractor

import (
	"context"
	"slices"
	"strings"

	"github.com/turbot/kgx-ingest-sdk/types"
	"golang.org/x/exp/maps"
)

// memorySink is a Sink which records what it is given
type memorySink struct {
	nodes   []*types.Node
	edges   []*types.Edge
	written map[string]struct{}
}

func newMemorySink() *memorySink {
	return &memorySink{written: make(map[string]struct{})}
}

func (m *memorySink) WriteNode(_ context.Context, node *types.Node) error {
	m.nodes = append(m.nodes, node)
	m.written[node.Id] = struct{}{}
	return nil
}

func (m *memorySink) WriteEdge(_ context.Context, edge *types.Edge) error {
	m.edges = append(m.edges, edge)
	return nil
}

func (m *memorySink) HasWrittenNode(id string) bool {
	_, ok := m.written[id]
	return ok
}

func (m *memorySink) WrittenNodes() []string {
	ids := maps.Keys(m.written)
	slices.Sort(ids)
	return ids
}

func lines(l ...string) *strings.Reader {
	return strings.NewReader(strings.Join(l, "\n"))
}

// subjectObjectPredicate reads the subject, object and predicate from the first three columns
func subjectObjectPredicate() RowExtractors[[]string] {
	return RowExtractors[[]string]{
		Subject:   Column(0),
		Object:    Column(1),
		Predicate: Column(2),
	}
}

func nodeIds(nodes []*types.Node) []string {
	var res []string
	for _, n := range nodes {
		res = append(res, n.Id)
	}
	return res
}
