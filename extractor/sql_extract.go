package extractor

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"
)

// SqlRow is one row of a query result, in column order
// []byte column values are converted to strings when the row is fetched
type SqlRow []any

// String returns the value of column i formatted as a string - NULL is returned as ""
func (r SqlRow) String(i int) (string, error) {
	if i < 0 || i >= len(r) {
		return "", fmt.Errorf("column index %d out of range for row with %d columns", i, len(r))
	}
	switch v := r[i].(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case time.Time:
		return v.Format(time.RFC3339), nil
	default:
		return fmt.Sprint(v), nil
	}
}

// SqlExtract executes query and extracts nodes and edges from each result row
// All rows are fetched before extraction starts. The comment, header and filter
// options do not apply to query results.
func (e *Extractor) SqlExtract(ctx context.Context, q Queryer, query string, x RowExtractors[SqlRow], opts ...ExtractOption) error {
	cfg, err := newExtractConfig(ErrorPolicyContinue, opts...)
	if err != nil {
		return err
	}

	rows, err := fetchAll(ctx, q, query)
	if err != nil {
		return err
	}

	for _, row := range rows {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		counted, err := parseRow(ctx, e, row, &x, cfg)
		if err != nil && e.handleRowError(err, counted, cfg.errorPolicy) {
			break
		}
	}

	e.logPassComplete("sql")
	return nil
}

func fetchAll(ctx context.Context, q Queryer, query string) ([]SqlRow, error) {
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("error reading query columns: %w", err)
	}

	var res []SqlRow
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("error scanning query row: %w", err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		res = append(res, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading query rows: %w", err)
	}
	return res, nil
}

var _ Queryer = (*sql.DB)(nil)
