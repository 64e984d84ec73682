package kgx_writer

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/gofrs/flock"
	"github.com/turbot/kgx-ingest-sdk/constants"
	"github.com/turbot/kgx-ingest-sdk/filepaths"
	"github.com/turbot/kgx-ingest-sdk/types"
	"golang.org/x/exp/maps"
)

// KGXFileWriter implements [extractor.Sink] and writes nodes and edges to KGX JSON lines files
// Each node identifier is written at most once per writer.
type KGXFileWriter struct {
	outputDir string
	lock      *flock.Flock

	nodesFile *os.File
	edgesFile *os.File
	nodes     *bufio.Writer
	edges     *bufio.Writer

	writtenNodes    map[string]struct{}
	edgeCount       int
	repeatNodeCount int
	closed          bool
}

// New creates the output directory if needed, locks it, and creates the nodes and edges files
// it fails if another writer holds the lock on the directory
func New(outputDir string) (*KGXFileWriter, error) {
	if err := filepaths.EnsureDir(outputDir); err != nil {
		return nil, err
	}

	lock := flock.New(filepath.Join(outputDir, constants.LockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock output directory %s: %w", outputDir, err)
	}
	if !locked {
		return nil, fmt.Errorf("output directory %s is locked by another writer", outputDir)
	}

	w := &KGXFileWriter{
		outputDir:    outputDir,
		lock:         lock,
		writtenNodes: make(map[string]struct{}),
	}
	if w.nodesFile, err = createFile(outputDir, constants.NodesFileName); err != nil {
		_ = lock.Unlock()
		return nil, err
	}
	if w.edgesFile, err = createFile(outputDir, constants.EdgesFileName); err != nil {
		_ = w.nodesFile.Close()
		_ = lock.Unlock()
		return nil, err
	}
	w.nodes = bufio.NewWriter(w.nodesFile)
	w.edges = bufio.NewWriter(w.edgesFile)

	slog.Debug("KGXFileWriter: created", "outputDir", outputDir)
	return w, nil
}

func createFile(dir, name string) (*os.File, error) {
	filename := filepath.Join(dir, name)
	f, err := os.Create(filename)
	if err != nil {
		slog.Error("failed to create KGX file", "error", err)
		return nil, fmt.Errorf("failed to create KGX file %s: %w", filename, err)
	}
	return f, nil
}

// WriteNode writes the node unless a node with the same identifier has already been written
func (w *KGXFileWriter) WriteNode(_ context.Context, node *types.Node) error {
	if _, ok := w.writtenNodes[node.Id]; ok {
		w.repeatNodeCount++
		return nil
	}
	if err := writeLine(w.nodes, node); err != nil {
		return fmt.Errorf("failed to write node %s: %w", node.Id, err)
	}
	w.writtenNodes[node.Id] = struct{}{}
	return nil
}

// WriteEdge writes the edge - edges are not deduplicated
func (w *KGXFileWriter) WriteEdge(_ context.Context, edge *types.Edge) error {
	if err := writeLine(w.edges, edge); err != nil {
		return fmt.Errorf("failed to write edge %s-%s->%s: %w", edge.SubjectId, edge.Predicate, edge.ObjectId, err)
	}
	w.edgeCount++
	return nil
}

func writeLine(w *bufio.Writer, item any) error {
	b, err := json.Marshal(item)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func (w *KGXFileWriter) HasWrittenNode(id string) bool {
	_, ok := w.writtenNodes[id]
	return ok
}

// WrittenNodes returns the identifiers of the written nodes, sorted
func (w *KGXFileWriter) WrittenNodes() []string {
	ids := maps.Keys(w.writtenNodes)
	slices.Sort(ids)
	return ids
}

func (w *KGXFileWriter) NodeCount() int {
	return len(w.writtenNodes)
}

func (w *KGXFileWriter) EdgeCount() int {
	return w.edgeCount
}

// RepeatNodeCount returns the number of node writes ignored because the node had already been written
func (w *KGXFileWriter) RepeatNodeCount() int {
	return w.repeatNodeCount
}

func (w *KGXFileWriter) OutputDir() string {
	return w.outputDir
}

// Close flushes and closes the files and releases the directory lock
// closing an already closed writer is a no-op
func (w *KGXFileWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	var errList []error
	if err := w.nodes.Flush(); err != nil {
		errList = append(errList, fmt.Errorf("failed to flush nodes: %w", err))
	}
	if err := w.edges.Flush(); err != nil {
		errList = append(errList, fmt.Errorf("failed to flush edges: %w", err))
	}
	errList = append(errList, w.nodesFile.Close(), w.edgesFile.Close(), w.lock.Unlock())

	slog.Info("KGXFileWriter: closed", "outputDir", w.outputDir, "nodes", w.NodeCount(), "edges", w.edgeCount, "repeatNodes", w.repeatNodeCount)
	return errors.Join(errList...)
}
