package statepath

// StateDeclaration is the raw, user-authored form of a hierarchy entry.
// The path layer treats everything beyond the name as opaque payload; it is
// the registry that builds states from declarations (outside this package)
// which interprets the rest.
type StateDeclaration struct {
	Name string `json:"name" yaml:"name"`

	// Config carries the declaration's remaining fields untouched.
	Config map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
}

// State is the registered, runtime form of a hierarchy entry. A State is
// built from a StateDeclaration and keeps a back-reference to it in Self,
// so callers holding either form can locate the entry within a path.
type State struct {
	// Name uniquely identifies the entry within its tree,
	// e.g. "a", "a.b", "a.b.c".
	Name string

	// Self points back to the declaration this state was built from.
	// May be nil for states constructed directly.
	Self *StateDeclaration
}

// String returns the state name.
func (s *State) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.Name
}
