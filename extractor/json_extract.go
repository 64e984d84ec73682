package extractor

import (
	"context"
)

// JsonExtract extracts nodes and edges from each item of a decoded JSON array
// By default the first failing item stops the pass; use [WithErrorPolicy] to continue instead.
func (e *Extractor) JsonExtract(ctx context.Context, items []map[string]any, x RowExtractors[map[string]any], opts ...ExtractOption) error {
	cfg, err := newExtractConfig(ErrorPolicyAbort, opts...)
	if err != nil {
		return err
	}

	for _, item := range items {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		counted, err := parseRow(ctx, e, item, &x, cfg)
		if err != nil && e.handleRowError(err, counted, cfg.errorPolicy) {
			break
		}
	}

	e.logPassComplete("json")
	return nil
}
