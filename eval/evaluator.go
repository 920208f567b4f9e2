// Package eval walks a parsed Graveyard program and executes it directly
// against a scope chain, without compiling to any intermediate form.
package eval

import (
	"io"

	"github.com/geoffreydatema/graveyard/builtin"
	"github.com/geoffreydatema/graveyard/object"
	"github.com/geoffreydatema/graveyard/parser"
	"github.com/geoffreydatema/graveyard/scope"
)

// Evaluator holds the state shared across one program run: its built-in
// table (closed over the run's I/O streams) and the global scope every
// nested scope eventually chains back to.
type Evaluator struct {
	Builtins *builtin.Table
	Global   *scope.Scope
}

// New builds an Evaluator ready to run a program, wiring print/scan to
// w/r.
func New(w io.Writer, r io.Reader) *Evaluator {
	return &Evaluator{
		Builtins: builtin.NewTable(w, r),
		Global:   scope.New(nil),
	}
}

// outcomeKind tags how a statement or statement list finished. A bare
// object.Value return from an exec function would leave no way to tell
// "this block produced null" apart from "this block hit a break" or
// "this block raised an error" without reaching for panic/recover, so
// every statement-level evaluation threads an outcome instead.
type outcomeKind int

const (
	normalOutcome outcomeKind = iota
	breakOutcome
	continueOutcome
	returnOutcome
	errorOutcome
)

type outcome struct {
	kind  outcomeKind
	value object.Value // the statement's value (normal), the raised error, or the returned value
}

var normalNull = outcome{kind: normalOutcome, value: object.NULL}

func normalValue(v object.Value) outcome {
	if isError(v) {
		return outcome{kind: errorOutcome, value: v}
	}
	return outcome{kind: normalOutcome, value: v}
}

// execBlock runs stmts in sc in order, stopping and propagating the first
// non-normal outcome (break, continue, return, or error).
func (e *Evaluator) execBlock(stmts []parser.Statement, sc *scope.Scope) outcome {
	out := normalNull
	for _, stmt := range stmts {
		out = e.execStatement(stmt, sc)
		if out.kind != normalOutcome {
			return out
		}
	}
	return out
}

// Run executes a whole program in the evaluator's global scope and
// returns the last statement's value, or the first error encountered.
func (e *Evaluator) Run(prog *parser.Program) object.Value {
	out := e.execBlock(prog.Statements, e.Global)
	if out.kind == errorOutcome || out.kind == returnOutcome {
		return out.value
	}
	return out.value
}

func isError(v object.Value) bool {
	_, ok := v.(*object.Error)
	return ok
}
