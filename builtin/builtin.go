// Package builtin holds Graveyard's fixed table of built-in functions: type
// casts, introspection, array/string helpers, file I/O, and the
// random/time "magic" sources. It uses a registration-list idiom, built
// per Table instance rather than through package-level init(), since
// print and scan need to close over the running program's I/O streams
// rather than a process-wide global.
package builtin

import (
	"bufio"
	"io"

	"github.com/geoffreydatema/graveyard/object"
)

// Func is the shape of every built-in: the already-evaluated call
// arguments plus the call site's position for error reporting.
type Func func(args []object.Value, line, column int) object.Value

// Table is a fixed name -> Func lookup, constructed once per running
// program (file execution or REPL session) so print/scan can close over
// that program's writer and reader.
type Table struct {
	fns map[string]Func
}

func newTable() *Table {
	return &Table{fns: make(map[string]Func)}
}

// NewTable builds the full built-in table for one running program, wiring
// print/scan to w/r and registering fread/fwrite and every cast, crypto,
// magic, and json entry alongside them.
func NewTable(w io.Writer, r io.Reader) *Table {
	t := newTable()
	registerCasts(t)
	registerCrypto(t)
	registerMagic(t)
	registerJSON(t)
	registerIO(t, w, bufio.NewReader(r))
	return t
}

func (t *Table) register(name string, fn Func) {
	t.fns[name] = fn
}

// Lookup returns the built-in registered under name, if any.
func (t *Table) Lookup(name string) (Func, bool) {
	fn, ok := t.fns[name]
	return fn, ok
}

func typeErr(line, col int, format string, args ...interface{}) *object.Error {
	return object.NewError("Type", line, col, format, args...)
}

func valueErr(line, col int, format string, args ...interface{}) *object.Error {
	return object.NewError("Value", line, col, format, args...)
}

func arityErr(line, col int, name string, want, got int) *object.Error {
	return object.NewError("Value", line, col, "%s expects %d argument(s), got %d", name, want, got)
}
