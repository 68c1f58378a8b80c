package repl

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"
	"github.com/dop251/goja/parser"
)

// formatValue returns the display text for an expression result. ok is
// false for undefined and null, and when converting the value throws.
func formatValue(val goja.Value) (string, bool) {
	if val == nil || goja.IsUndefined(val) || goja.IsNull(val) {
		return "", false
	}
	return safeString(val)
}

// safeString converts val with JS String() semantics. A user-defined
// toString may throw, which goja surfaces as a panic.
func safeString(val goja.Value) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()
	return val.String(), true
}

// errorText flattens an execution failure into its bare message. The
// error's type, stack and source position are left out.
func errorText(err error) string {
	var exception *goja.Exception
	if errors.As(err, &exception) {
		if text, ok := thrownText(exception.Value()); ok {
			return text
		}
		return "Uncaught exception"
	}

	var parseErrs parser.ErrorList
	if errors.As(err, &parseErrs) && len(parseErrs) > 0 {
		return parseErrs[0].Message
	}

	var syntaxErr *goja.CompilerSyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Message
	}

	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		return fmt.Sprint(interrupted.Value())
	}

	return err.Error()
}

// thrownText returns the message property of a thrown object, or the
// String() form of anything else thrown. ok is false when reading either
// one throws.
func thrownText(val goja.Value) (text string, ok bool) {
	if val == nil {
		return "", false
	}
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()
	if obj, isObj := val.(*goja.Object); isObj {
		if msg := obj.Get("message"); msg != nil && !goja.IsUndefined(msg) {
			return msg.String(), true
		}
	}
	return val.String(), true
}
