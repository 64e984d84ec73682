package extractor

import (
	"context"
	"slices"

	"github.com/turbot/kgx-ingest-sdk/types"
	"golang.org/x/exp/maps"
)

// recordSink receives the nodes and edges produced by the record stage
// [bufferSink] accumulates them in memory, [forwardingSink] passes them to a [Sink]
type recordSink interface {
	hasNode(id string) bool
	addNode(context.Context, *types.Node) error
	addEdge(context.Context, *types.Edge) error
	nodeIds() []string
}

// bufferSink keeps nodes and edges in insertion order
type bufferSink struct {
	seen  map[string]struct{}
	nodes []*types.Node
	edges []*types.Edge
}

func newBufferSink() *bufferSink {
	return &bufferSink{seen: make(map[string]struct{})}
}

func (b *bufferSink) hasNode(id string) bool {
	_, ok := b.seen[id]
	return ok
}

func (b *bufferSink) addNode(_ context.Context, node *types.Node) error {
	b.nodes = append(b.nodes, node)
	b.seen[node.Id] = struct{}{}
	return nil
}

func (b *bufferSink) addEdge(_ context.Context, edge *types.Edge) error {
	b.edges = append(b.edges, edge)
	return nil
}

func (b *bufferSink) nodeIds() []string {
	ids := maps.Keys(b.seen)
	slices.Sort(ids)
	return ids
}

// forwardingSink writes straight through to the sink, which owns the written-node record
type forwardingSink struct {
	sink Sink
}

func (f *forwardingSink) hasNode(id string) bool {
	return f.sink.HasWrittenNode(id)
}

func (f *forwardingSink) addNode(ctx context.Context, node *types.Node) error {
	return f.sink.WriteNode(ctx, node)
}

func (f *forwardingSink) addEdge(ctx context.Context, edge *types.Edge) error {
	return f.sink.WriteEdge(ctx, edge)
}

func (f *forwardingSink) nodeIds() []string {
	return f.sink.WrittenNodes()
}
