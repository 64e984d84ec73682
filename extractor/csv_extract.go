package extractor

import (
	"context"
	"fmt"
	"io"

	"github.com/turbot/kgx-ingest-sdk/artifact_loader"
)

// CsvExtract reads delimited text from r, extracting nodes and edges from each row
//
// Lines starting with the comment character are dropped, then the header row (if any) is skipped,
// then the field filter (if any) is applied. Surviving lines are split with quote-aware parsing
// and passed to the row extractors. A row which fails extraction is recorded in the load metadata;
// by default the pass continues with the next row.
//
// The returned error is reserved for failures of the source itself, e.g. a read error.
func (e *Extractor) CsvExtract(ctx context.Context, r io.Reader, x RowExtractors[[]string], opts ...ExtractOption) error {
	cfg, err := newExtractConfig(ErrorPolicyContinue, opts...)
	if err != nil {
		return err
	}

	rows := newDelimitedRows(r, cfg)
	for fields, err := range rows.All() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		counted := false
		if err == nil {
			counted, err = parseRow(ctx, e, fields, &x, cfg)
		}
		if err != nil && e.handleRowError(err, counted, cfg.errorPolicy) {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error reading delimited source: %w", err)
	}

	e.logPassComplete("csv")
	return nil
}

// CsvExtractFile opens the file at path (decompressing it if its extension is registered
// with a decompressing loader), runs [Extractor.CsvExtract] over it, and closes it
func (e *Extractor) CsvExtractFile(ctx context.Context, path string, x RowExtractors[[]string], opts ...ExtractOption) error {
	loader, err := artifact_loader.Factory.GetLoaderForPath(path)
	if err != nil {
		return err
	}
	f, err := loader.Open(ctx, path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := e.CsvExtract(ctx, f, x, opts...); err != nil {
		return fmt.Errorf("error extracting %s: %w", path, err)
	}
	return nil
}
