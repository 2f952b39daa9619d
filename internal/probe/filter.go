package probe

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// CompileFilter compiles a boolean filter expression. An empty expression
// matches every result.
func CompileFilter(code string) (*vm.Program, error) {
	if code == "" {
		code = "true"
	}

	env := Result{}.Env()
	return expr.Compile(code, expr.Env(env), expr.AsBool())
}

// Filter returns the results for which program evaluates to true.
func Filter(program *vm.Program, results []Result) ([]Result, error) {
	filtered := make([]Result, 0, len(results))

	for _, r := range results {
		output, err := expr.Run(program, r.Env())
		if err != nil {
			return nil, fmt.Errorf("filter evaluation failed for %s: %w", r.Input, err)
		}

		keep, ok := output.(bool)
		if !ok {
			return nil, fmt.Errorf("filter did not evaluate to boolean, got %T", output)
		}

		if keep {
			filtered = append(filtered, r)
		}
	}

	return filtered, nil
}
