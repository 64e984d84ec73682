package extractor

import (
	"context"
	"iter"

	"github.com/turbot/kgx-ingest-sdk/types"
)

// GeneratorExtract passes each tuple of a programmatically built sequence straight to the record stage
// By default the first failing tuple stops the pass and the rest of the sequence is not consumed;
// use [WithErrorPolicy] to continue instead.
func (e *Extractor) GeneratorExtract(ctx context.Context, tuples iter.Seq[types.Tuple], opts ...ExtractOption) error {
	cfg, err := newExtractConfig(ErrorPolicyAbort, opts...)
	if err != nil {
		return err
	}

	for t := range tuples {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := e.processTuple(ctx, t, cfg); err != nil && e.handleRowError(err, true, cfg.errorPolicy) {
			break
		}
	}

	e.logPassComplete("generator")
	return nil
}
