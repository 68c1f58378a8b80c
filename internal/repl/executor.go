package repl

import (
	"strings"

	"github.com/dop251/goja"
	"github.com/dop251/goja/parser"
)

// Execute runs code against ns and returns everything it printed followed
// by the value of each top-level expression line.
//
// The whole snippet runs once as a script. Afterwards each trimmed source
// line that does not start with "print" and parses as a standalone
// expression is evaluated again, and its value is appended when it is not
// undefined or null. Lines that fail in that second pass are ignored, and a
// line with side effects runs twice.
//
// If the script throws, the result is only the error text. Bindings made
// before the throw are kept.
func Execute(ns *Namespace, code string) string {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	var captured strings.Builder
	restore := ns.redirect(&captured)
	defer restore()

	if err := ns.runScript(code); err != nil {
		return errorText(err)
	}

	var output strings.Builder
	output.WriteString(captured.String())

	for _, line := range strings.Split(strings.TrimSpace(code), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || SkipsPrint(line) {
			continue
		}
		if text, ok := ns.evalLine(line); ok {
			output.WriteString(text)
			output.WriteString("\n")
		}
	}

	return output.String()
}

// runScript parses, compiles and runs code in the global scope. Parsing
// happens here rather than in RunString so syntax errors keep their bare
// message.
func (ns *Namespace) runScript(code string) error {
	prg, err := parser.ParseFile(nil, "", code, 0, parser.WithDisableSourceMaps)
	if err != nil {
		return err
	}
	compiled, err := goja.CompileAST(prg, false)
	if err != nil {
		return err
	}
	_, err = ns.vm.RunProgram(compiled)
	return err
}

// evalLine evaluates a single line as an expression. ok is false when the
// line is not an expression, when it throws, or when its value is
// undefined or null.
func (ns *Namespace) evalLine(line string) (string, bool) {
	prg, ok := parseExpression(line)
	if !ok {
		return "", false
	}
	compiled, err := goja.CompileAST(prg, false)
	if err != nil {
		return "", false
	}
	val, err := ns.vm.RunProgram(compiled)
	if err != nil {
		return "", false
	}
	return formatValue(val)
}
