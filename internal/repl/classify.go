package repl

import (
	"strings"

	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/parser"
	"github.com/dop251/goja/token"
)

// printPrefix marks lines whose output is assumed to already be in the
// captured stdout. The match is on the raw prefix, so identifiers such as
// printer are skipped as well.
const printPrefix = "print"

// SkipsPrint reports whether the trimmed line starts with the print prefix.
func SkipsPrint(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), printPrefix)
}

// IsStandaloneExpression reports whether line is a single expression that
// is neither an assignment nor an increment/decrement.
func IsStandaloneExpression(line string) bool {
	_, ok := parseExpression(line)
	return ok
}

// parseExpression parses line as a program and returns it only when its
// sole statement is a bare expression.
func parseExpression(line string) (*ast.Program, bool) {
	prg, err := parser.ParseFile(nil, "", line, 0, parser.WithDisableSourceMaps)
	if err != nil {
		return nil, false
	}
	if len(prg.Body) != 1 {
		return nil, false
	}
	stmt, ok := prg.Body[0].(*ast.ExpressionStatement)
	if !ok {
		return nil, false
	}

	switch expr := stmt.Expression.(type) {
	case *ast.AssignExpression:
		return nil, false
	case *ast.UnaryExpression:
		if expr.Operator == token.INCREMENT || expr.Operator == token.DECREMENT {
			return nil, false
		}
	}
	return prg, true
}
