// Package repl runs JavaScript snippets against a long-lived goja runtime.
// Every snippet shares the same global scope, so bindings made by one call
// stay visible to the next until the process exits.
package repl

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dop251/goja"
)

// Namespace is the shared interpreter state that every execution runs against.
type Namespace struct {
	mu  sync.Mutex
	vm  *goja.Runtime
	out io.Writer
}

// NewNamespace creates an empty namespace whose print output goes to out
// whenever no execution is capturing it.
func NewNamespace(out io.Writer) (*Namespace, error) {
	if out == nil {
		out = io.Discard
	}
	ns := &Namespace{
		vm:  goja.New(),
		out: out,
	}
	if err := ns.setupBuiltins(); err != nil {
		return nil, fmt.Errorf("failed to setup namespace: %w", err)
	}
	return ns, nil
}

// setupBuiltins installs print and the console object.
func (ns *Namespace) setupBuiltins() error {
	printFunc := func(call goja.FunctionCall) goja.Value {
		args := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			args[i] = arg.String()
		}
		fmt.Fprintln(ns.out, strings.Join(args, " "))
		return goja.Undefined()
	}
	if err := ns.vm.Set("print", printFunc); err != nil {
		return fmt.Errorf("failed to set print: %w", err)
	}

	console := ns.vm.NewObject()
	for _, name := range []string{"log", "info"} {
		if err := console.Set(name, printFunc); err != nil {
			return fmt.Errorf("failed to set console.%s: %w", name, err)
		}
	}
	if err := ns.vm.Set("console", console); err != nil {
		return fmt.Errorf("failed to set console: %w", err)
	}
	return nil
}

// redirect points print output at w and returns a func that puts the
// previous writer back. Callers defer the returned func.
func (ns *Namespace) redirect(w io.Writer) (restore func()) {
	prev := ns.out
	ns.out = w
	return func() {
		ns.out = prev
	}
}

// Get exports the global binding for name.
func (ns *Namespace) Get(name string) (any, bool) {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	val := ns.vm.Get(name)
	if val == nil {
		return nil, false
	}
	return val.Export(), true
}
