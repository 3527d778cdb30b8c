package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// newEvalContext returns the functions available to configuration
// expressions. No variables are defined.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"abs":      stdlib.AbsoluteFunc,
			"ceil":     stdlib.CeilFunc,
			"concat":   stdlib.ConcatFunc,
			"distinct": stdlib.DistinctFunc,
			"floor":    stdlib.FloorFunc,
			"length":   stdlib.LengthFunc,
			"max":      stdlib.MaxFunc,
			"min":      stdlib.MinFunc,
			"pow":      stdlib.PowFunc,
			"range":    stdlib.RangeFunc,
			"reverse":  stdlib.ReverseListFunc,
		},
	}
}

// decodeList evaluates expr as a non-empty list of elem and converts it to a
// Go slice. A null expression, which is what gohcl supplies for an omitted
// optional attribute, yields nil.
func decodeList[T any](expr hcl.Expression, evalCtx *hcl.EvalContext, elem cty.Type, attr string) ([]T, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid %s: %w", attr, diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("%s must be known when the configuration is loaded", attr)
	}

	val, err := convert.Convert(val, cty.List(elem))
	if err != nil {
		return nil, fmt.Errorf("%s must be a list of %s: %w", attr, elem.FriendlyName(), err)
	}
	if val.LengthInt() == 0 {
		return nil, fmt.Errorf("%s must not be empty", attr)
	}

	var out []T
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", attr, err)
	}
	return out, nil
}
