// Package scope implements the monolith: the stack of lexical scopes the
// evaluator pushes and pops as it walks into function calls, loop bodies,
// if/else arms, and namespace definitions.
package scope

import "github.com/geoffreydatema/graveyard/object"

// Scope is one frame of the monolith. Parent forms the chain back to the
// global scope; Parent == nil marks the global frame.
type Scope struct {
	Variables map[string]object.Value
	Parent    *Scope
}

// New creates a scope chained to parent. Pass nil to create the global
// scope.
func New(parent *Scope) *Scope {
	return &Scope{Variables: make(map[string]object.Value), Parent: parent}
}

// LookUp searches this scope and every enclosing scope, innermost first.
func (s *Scope) LookUp(name string) (object.Value, bool) {
	if v, ok := s.Variables[name]; ok {
		return v, true
	}
	if s.Parent != nil {
		return s.Parent.LookUp(name)
	}
	return nil, false
}

// Bind creates or overwrites a binding in this scope only, regardless of
// whether an outer scope already has a binding by the same name. Parameter
// binding, function/type/namespace definitions, and `ident = <Type>;`
// instantiation all behave this way: they never reach past the current
// frame.
func (s *Scope) Bind(name string, value object.Value) {
	s.Variables[name] = value
}

// owner walks the chain looking for the scope that already holds a binding
// for name.
func (s *Scope) owner(name string) *Scope {
	if _, ok := s.Variables[name]; ok {
		return s
	}
	if s.Parent != nil {
		return s.Parent.owner(name)
	}
	return nil
}

// Assign implements Graveyard's plain-assignment rule: write into the
// nearest enclosing scope that already binds name, or create the binding in
// this (the innermost) scope if no enclosing scope has it.
func (s *Scope) Assign(name string, value object.Value) {
	if owner := s.owner(name); owner != nil {
		owner.Variables[name] = value
		return
	}
	s.Variables[name] = value
}

// AssignExisting implements the stricter rule shared by compound
// assignment, ++, and --: the name must already be bound somewhere in the
// chain. It reports false (performing no write) if it is not.
func (s *Scope) AssignExisting(name string, value object.Value) bool {
	owner := s.owner(name)
	if owner == nil {
		return false
	}
	owner.Variables[name] = value
	return true
}

// Global walks to the bottom of the chain. Function calls, method calls,
// and type/namespace lookups all resolve by name through the global scope
// specifically, bypassing any shadowing in intermediate frames.
func (s *Scope) Global() *Scope {
	if s.Parent == nil {
		return s
	}
	return s.Parent.Global()
}
