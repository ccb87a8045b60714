package statepath

// Node is the constraint every path element satisfies: it exposes the state
// it is bound to and knows how to shallow-clone itself. The clone contract
// is what lets Path derive new values without sharing node wrappers; deep
// structures referenced from a node remain shared between clones.
//
// The type parameter is self-referential so Clone returns the concrete node
// type rather than an interface.
type Node[N any] interface {
	// State returns the hierarchy entry this node is bound to.
	State() *State

	// Clone returns a shallow copy of the node.
	Clone() N
}

// PathNode is the default node implementation: a state plus arbitrary
// auxiliary data attached by the consumer. Path never interprets Values.
type PathNode struct {
	state *State

	// Values holds use-case-specific payload (e.g. resolved data, params).
	Values map[string]any
}

// NewPathNode creates a node bound to the given state.
func NewPathNode(state *State) *PathNode {
	return &PathNode{
		state:  state,
		Values: make(map[string]any),
	}
}

// State returns the hierarchy entry this node is bound to.
func (n *PathNode) State() *State {
	return n.state
}

// Clone returns a shallow copy of the node. The Values map is shared with
// the original; only the wrapper is duplicated.
func (n *PathNode) Clone() *PathNode {
	if n == nil {
		return nil
	}
	copied := *n
	return &copied
}
