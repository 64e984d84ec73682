package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/turbot/pipe-fittings/error_helpers"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// decodeRunConfig parses HCL source and decodes it into c
// run configs are static, so they are evaluated with no variables or functions
func decodeRunConfig(data []byte, filename string, c *RunConfig) error {
	file, diags := hclsyntax.ParseConfig(data, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return fmt.Errorf("%s: %w", filename, error_helpers.HclDiagsToError("invalid run config syntax", diags))
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
		Functions: map[string]function.Function{},
	}
	if diags := gohcl.DecodeBody(file.Body, evalCtx, c); diags.HasErrors() {
		return fmt.Errorf("%s: %w", filename, error_helpers.HclDiagsToError("invalid run config", diags))
	}
	return nil
}
