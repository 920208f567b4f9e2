package object

import "github.com/geoffreydatema/graveyard/parser"

// Function is a first-class value produced by a function definition.
// Params names the declared parameters in order; DefiningScope is the
// *scope.Scope each call's scope chains to. The evaluator hoists every
// definition and always sets it to the global scope, so a function does
// not capture the locals of the block it was defined in. It is typed as
// interface{} here to avoid an import cycle between object and scope (the
// evaluator performs the type assertion back to *scope.Scope).
type Function struct {
	Name          string
	Params        []string
	Body          []parser.Statement
	DefiningScope interface{}
}

func (f *Function) Type() Type     { return FunctionType }
func (f *Function) String() string { return "<function " + f.Name + ">" }

// Method is a Function bound as a member of a TypeDescriptor; it is not a
// distinct Value kind, just a Function stored in a TypeDescriptor's
// Members map and recognized by the evaluator when called through `.`.
