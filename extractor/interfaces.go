package extractor

import (
	"context"
	"database/sql"

	"github.com/turbot/kgx-ingest-sdk/types"
)

// Sink is the persistence layer the Extractor forwards nodes and edges to
// The sink tracks which node identifiers it has already written - the Extractor
// uses this record for node deduplication when a sink is provided
type Sink interface {
	WriteNode(context.Context, *types.Node) error
	WriteEdge(context.Context, *types.Edge) error
	HasWrittenNode(id string) bool
	// WrittenNodes returns the identifiers of all nodes written so far
	WrittenNodes() []string
}

// Queryer executes a query - satisfied by *sql.DB, *sql.Tx and *sql.Conn
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}
