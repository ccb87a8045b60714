package statepath

import "fmt"

// Target identifies a state to locate within a path. It is a tagged value
// with two match rules: by name, or by reference. The reference rule accepts
// both forms of the decorated/raw duality: the registered *State (identity
// match) and its raw *StateDeclaration (matched against each state's Self
// back-reference).
type Target struct {
	byName bool
	name   string
	state  *State
	decl   *StateDeclaration
}

// ByName targets the state whose Name equals name.
func ByName(name string) Target {
	return Target{byName: true, name: name}
}

// ByState targets a state by identity.
func ByState(s *State) Target {
	return Target{state: s}
}

// ByDeclaration targets the state whose Self back-reference is the given
// declaration.
func ByDeclaration(d *StateDeclaration) Target {
	return Target{decl: d}
}

// Matches reports whether the given state satisfies this target.
func (t Target) Matches(s *State) bool {
	if s == nil {
		return false
	}
	switch {
	case t.byName:
		return s.Name == t.name
	case t.state != nil:
		return s == t.state
	case t.decl != nil:
		return s.Self == t.decl
	}
	return false
}

// String describes the target for error messages.
func (t Target) String() string {
	switch {
	case t.byName:
		return t.name
	case t.state != nil:
		return t.state.Name
	case t.decl != nil:
		return t.decl.Name
	}
	return "<empty target>"
}

var _ fmt.Stringer = Target{}
