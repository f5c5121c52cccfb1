package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/opendrivego/internal/ctxlog"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// isExprDefined checks if an HCL expression was actually present in the source
// code. The HCL decoder populates omitted optional hcl.Expression fields with
// a zero-width placeholder, so a nil check is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		logger.Debug("Expression is nil, considering it undefined.", "attribute", attrName)
		return false
	}

	// A real attribute occupies bytes in the file; a placeholder for an
	// omitted optional attribute has a zero-width range.
	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	logger.Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)

	return isDefined
}

// evalOptional evaluates an optional attribute into a T, returning def when
// the attribute is omitted or null.
func evalOptional[T any](ctx context.Context, expr hcl.Expression, attrName string, def T) (T, error) {
	if !isExprDefined(ctx, expr, attrName) {
		return def, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return def, diags
	}
	if val.IsNull() {
		return def, nil
	}

	var out T
	ty, err := gocty.ImpliedType(out)
	if err != nil {
		return def, fmt.Errorf("unable to infer cty.Type for attribute '%s': %w", attrName, err)
	}
	converted, err := convert.Convert(val, ty)
	if err != nil {
		return def, fmt.Errorf("attribute '%s': cannot convert %s to %s: %w", attrName, val.Type().FriendlyName(), ty.FriendlyName(), err)
	}
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return def, fmt.Errorf("attribute '%s': %w", attrName, err)
	}
	return out, nil
}
