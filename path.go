package statepath

import (
	"fmt"
	"strings"
)

// Path is an ordered, immutable-by-convention sequence of nodes representing
// a root-to-leaf traversal through a state hierarchy. Position 0 is the
// root-most node, the last position the most specific one.
//
// A Path is never mutated in place: every derive operation returns a new
// Path over shallow clones of the selected nodes, so mutating a derived
// node's own fields never leaks into the source path. The one exception is
// Nodes, which exposes the internal node references for cheap inspection.
type Path[N Node[N]] struct {
	nodes []N
}

// New wraps the given node sequence in a Path. The slice is stored as-is,
// without a defensive copy; the caller hands over ownership.
func New[N Node[N]](nodes []N) Path[N] {
	return Path[N]{nodes: nodes}
}

// Len returns the number of nodes in the path.
func (p Path[N]) Len() int {
	return len(p.nodes)
}

// FromRootTo returns the prefix subpath from the root through the first node
// matching target, inclusive. Every node in the result is a shallow clone.
// Returns *StateNotFoundError when no node on the path matches.
func (p Path[N]) FromRootTo(target Target) (Path[N], error) {
	for i, n := range p.nodes {
		if target.Matches(n.State()) {
			return p.Slice(0, i+1), nil
		}
	}
	return Path[N]{}, &StateNotFoundError{Target: target.String()}
}

// Concat returns a new Path holding this path's nodes followed by other's,
// each shallow-cloned. No deduplication is performed: if both paths carry a
// node for the same state, both copies appear.
func (p Path[N]) Concat(other Path[N]) Path[N] {
	combined := make([]N, 0, len(p.nodes)+len(other.nodes))
	for _, n := range p.nodes {
		combined = append(combined, n.Clone())
	}
	for _, n := range other.nodes {
		combined = append(combined, n.Clone())
	}
	return Path[N]{nodes: combined}
}

// Slice returns the half-open range [start, end) as a new Path of shallow
// clones. Negative indices count from the end and out-of-range indices
// clamp, matching conventional array-slice semantics.
func (p Path[N]) Slice(start, end int) Path[N] {
	s := p.clampIndex(start)
	e := p.clampIndex(end)
	if e < s {
		e = s
	}
	selected := make([]N, 0, e-s)
	for _, n := range p.nodes[s:e] {
		selected = append(selected, n.Clone())
	}
	return Path[N]{nodes: selected}
}

// SliceFrom returns the suffix starting at start, as Slice with an omitted
// end bound.
func (p Path[N]) SliceFrom(start int) Path[N] {
	return p.Slice(start, len(p.nodes))
}

// clampIndex resolves a possibly-negative index against the node count.
func (p Path[N]) clampIndex(i int) int {
	n := len(p.nodes)
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
		return i
	}
	if i > n {
		return n
	}
	return i
}

// Reverse returns a new Path with the node order reversed, each node
// shallow-cloned. The leaf becomes root-most and vice versa; states are
// untouched.
func (p Path[N]) Reverse() Path[N] {
	reversed := make([]N, 0, len(p.nodes))
	for i := len(p.nodes) - 1; i >= 0; i-- {
		reversed = append(reversed, p.nodes[i].Clone())
	}
	return Path[N]{nodes: reversed}
}

// States returns the state of every node in path order. No deduplication.
func (p Path[N]) States() []*State {
	states := make([]*State, len(p.nodes))
	for i, n := range p.nodes {
		states[i] = n.State()
	}
	return states
}

// NodeForState returns the first node bound to exactly the given state, by
// identity. Unlike FromRootTo it does not consult the Self back-reference.
// The second return is false when no node matches.
func (p Path[N]) NodeForState(s *State) (N, bool) {
	for _, n := range p.nodes {
		if n.State() == s {
			return n, true
		}
	}
	var zero N
	return zero, false
}

// Nodes returns a new slice holding the path's node references. The nodes
// themselves are not cloned: mutating a returned node mutates the path's
// internal node. Use the derive operations when isolation is needed.
func (p Path[N]) Nodes() []N {
	out := make([]N, len(p.nodes))
	copy(out, p.nodes)
	return out
}

// Last returns the final node, or false when the path is empty.
func (p Path[N]) Last() (N, bool) {
	if len(p.nodes) == 0 {
		var zero N
		return zero, false
	}
	return p.nodes[len(p.nodes)-1], true
}

// String renders a debug representation listing the state names in order,
// e.g. Path([a, a.b, a.b.c]).
func (p Path[N]) String() string {
	names := make([]string, len(p.nodes))
	for i, n := range p.nodes {
		names[i] = n.State().Name
	}
	return fmt.Sprintf("Path([%s])", strings.Join(names, ", "))
}
