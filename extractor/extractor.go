package extractor

import (
	"context"
	"log/slog"
	"slices"

	gokithelpers "github.com/turbot/go-kit/helpers"
	"github.com/turbot/kgx-ingest-sdk/types"
)

// Extractor converts rows from one or more sources into graph nodes and edges
//
// One Extractor is one logical run: the node deduplication state and the load metadata
// accumulate across every pass made with it, so several files (or several passes over
// the same file) can share one Extractor without writing a node twice.
// An Extractor is not safe for concurrent use.
type Extractor struct {
	sink     recordSink
	metadata *types.LoadMetadata
}

type ExtractorOption func(*Extractor)

// WithSink forwards every node and edge to sink as it is produced, rather than
// accumulating them in memory
func WithSink(sink Sink) ExtractorOption {
	return func(e *Extractor) {
		e.sink = &forwardingSink{sink: sink}
	}
}

func New(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		sink:     newBufferSink(),
		metadata: types.NewLoadMetadata(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// LoadMetadata returns a snapshot of the run metadata
func (e *Extractor) LoadMetadata() *types.LoadMetadata {
	return e.metadata.Clone()
}

// Nodes returns a copy of the accumulated nodes in the order they were produced
// it is always empty when the Extractor forwards to a sink
func (e *Extractor) Nodes() []*types.Node {
	if b, ok := e.sink.(*bufferSink); ok {
		return slices.Clone(b.nodes)
	}
	return nil
}

// Edges returns a copy of the accumulated edges in the order they were produced
// it is always empty when the Extractor forwards to a sink
func (e *Extractor) Edges() []*types.Edge {
	if b, ok := e.sink.(*bufferSink); ok {
		return slices.Clone(b.edges)
	}
	return nil
}

// NodeIds returns the identifiers of all nodes materialized so far, sorted
func (e *Extractor) NodeIds() []string {
	return e.sink.nodeIds()
}

// parseRow invokes the extraction functions for one row and hands the tuple to the record stage
// counted reports whether the row was added to the record counter
func parseRow[R any](ctx context.Context, e *Extractor, row R, x *RowExtractors[R], cfg *extractConfig) (counted bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = gokithelpers.ToError(r)
		}
	}()

	predicate, err := x.Predicate.extract(row)
	if err == nil && cfg.excludeUnconnectedNodes && !predicate.IsPresent() {
		return false, nil
	}
	e.metadata.RecordCounter++
	counted = true
	if err != nil {
		return counted, err
	}

	t := types.Tuple{Predicate: predicate}
	if t.SubjectId, err = x.Subject.extract(row); err != nil {
		return counted, err
	}
	if t.ObjectId, err = x.Object.extract(row); err != nil {
		return counted, err
	}
	if t.SubjectProps, err = x.SubjectProperties.extract(row); err != nil {
		return counted, err
	}
	if t.ObjectProps, err = x.ObjectProperties.extract(row); err != nil {
		return counted, err
	}
	if t.EdgeProps, err = x.EdgeProperties.extract(row); err != nil {
		return counted, err
	}
	return counted, e.recordTuple(ctx, t, cfg.excludeUnconnectedNodes)
}

// processTuple counts the tuple and hands it to the record stage
func (e *Extractor) processTuple(ctx context.Context, t types.Tuple, cfg *extractConfig) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = gokithelpers.ToError(r)
		}
	}()
	e.metadata.RecordCounter++
	return e.recordTuple(ctx, t, cfg.excludeUnconnectedNodes)
}

// recordTuple materializes the subject node (at most once per identifier) and the edge
// Object nodes are never materialized here.
func (e *Extractor) recordTuple(ctx context.Context, t types.Tuple, excludeUnconnectedNodes bool) error {
	if excludeUnconnectedNodes && t.Predicate.IsEmpty() {
		return nil
	}

	if subjectId := t.SubjectId.Value(); subjectId != "" && !e.sink.hasNode(subjectId) {
		fields, err := types.SplitNodeProperties(t.SubjectProps)
		if err != nil {
			return err
		}
		if err := e.sink.addNode(ctx, types.NewNode(subjectId, fields)); err != nil {
			return err
		}
	}

	if t.SubjectId.IsEmpty() || t.ObjectId.IsEmpty() || t.Predicate.IsEmpty() {
		return nil
	}
	fields, err := types.SplitEdgeProperties(t.EdgeProps)
	if err != nil {
		return err
	}
	return e.sink.addEdge(ctx, types.NewEdge(t.SubjectId.Value(), t.ObjectId.Value(), t.Predicate.Value(), fields))
}

// handleRowError records a failed row, counting it if it had not been counted
// it returns true if the pass should stop
func (e *Extractor) handleRowError(err error, counted bool, policy ErrorPolicy) bool {
	if !counted {
		e.metadata.RecordCounter++
	}
	e.metadata.RecordError(err)
	slog.Debug("Extractor: skipped record", "error", err, "policy", policy)
	return policy == ErrorPolicyAbort
}

func (e *Extractor) logPassComplete(pass string) {
	slog.Info("Extractor: pass complete", "pass", pass, "records", e.metadata.RecordCounter, "skipped", e.metadata.SkippedRecordCounter)
}
