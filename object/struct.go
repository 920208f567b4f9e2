package object

import "strings"

// TypeDescriptor is a user-defined type produced by a type definition.
// Members already has inheritance resolved at definition time: when the
// type declares parents, their member maps are merged left-to-right so a
// later-listed parent overrides an earlier one, and the type's own
// declared members are applied last, overriding anything inherited. This
// merge happens once, up front, rather than walking a parent chain at
// lookup time.
type TypeDescriptor struct {
	Name    string
	Parents []string
	Members map[string]Value
}

func (t *TypeDescriptor) Type() Type     { return TypeDescType }
func (t *TypeDescriptor) String() string { return "<type " + t.Name + ">" }

// NewTypeDescriptor merges parent member maps (later parent wins) then
// overlays own, already-evaluated members.
func NewTypeDescriptor(name string, parents []*TypeDescriptor, own map[string]Value) *TypeDescriptor {
	merged := make(map[string]Value)
	for _, parent := range parents {
		for k, v := range parent.Members {
			merged[k] = v
		}
	}
	for k, v := range own {
		merged[k] = v
	}
	names := make([]string, len(parents))
	for i, p := range parents {
		names[i] = p.Name
	}
	return &TypeDescriptor{Name: name, Parents: names, Members: merged}
}

// Instance is a concrete object created from a TypeDescriptor. Fields holds
// a shallow copy of the type's resolved member map taken at instantiation
// time, so mutating one instance's data members never affects the type
// descriptor or sibling instances.
type Instance struct {
	TypeName string
	Fields   map[string]Value
}

func NewInstance(desc *TypeDescriptor) *Instance {
	fields := make(map[string]Value, len(desc.Members))
	for k, v := range desc.Members {
		fields[k] = v
	}
	return &Instance{TypeName: desc.Name, Fields: fields}
}

func (i *Instance) Type() Type { return InstanceType }
func (i *Instance) String() string {
	var b strings.Builder
	b.WriteString("<instance of ")
	b.WriteString(i.TypeName)
	b.WriteString(">")
	return b.String()
}

// Namespace groups named members declared inside a `::name { ... }` block.
// Namespaces always live in the global scope and are accessed with
// `::name#member`.
type Namespace struct {
	Name    string
	Members map[string]Value
}

func (n *Namespace) Type() Type     { return NamespaceType }
func (n *Namespace) String() string { return "<namespace " + n.Name + ">" }
