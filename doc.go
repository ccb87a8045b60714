/*
Package statepath implements an immutable path-of-nodes abstraction for
hierarchical state trees, the core value type of a state-tree navigation
system.

A Path is an ordered sequence of nodes, each bound to a state in an external
hierarchy (position 0 is the root, the last position the leaf). Paths are
never mutated: every structural operation (prefix extraction, concatenation,
slicing, reversal, mapping) derives a new Path over shallow clones of the
selected nodes. A transition engine embedding this package builds a Path for
the current and target hierarchies, diffs them to find which states to exit
and enter, and inspects the nodes to drive state-specific behavior.

# Concept

The package separates three shapes. StateDeclaration is the raw, authored
form of a hierarchy entry; State is its registered runtime form, pointing
back to the declaration via Self; a Node binds a State to arbitrary
consumer payload. Path is generic over the node type, so a plain path can
be migrated to a decorated one (extra resolution data, parameters) with
Adapt without the container changing shape.

# Key Properties

  - Immutable by convention: derive operations clone node wrappers, so a
    derived path's nodes can be mutated without touching the source.
  - Explicit absence: Last on an empty path and NodeForState on a missing
    state report absence via a comma-ok result; only FromRootTo on an
    unknown target is an error (*StateNotFoundError).
  - Pure values: no I/O, no goroutines, no hidden state. Distinct Path
    values never interfere; sharing deep structures reachable from a node
    across paths is the caller's concern.

# Usage

	a := &statepath.State{Name: "a"}
	ab := &statepath.State{Name: "a.b"}
	abc := &statepath.State{Name: "a.b.c"}

	p := statepath.New([]*statepath.PathNode{
		statepath.NewPathNode(a),
		statepath.NewPathNode(ab),
		statepath.NewPathNode(abc),
	})

	prefix, err := p.FromRootTo(statepath.ByName("a.b"))
	if err != nil {
		// target not on this path
	}
	fmt.Println(prefix) // Path([a, a.b])

	changes := statepath.Diff(p, prefix)
	// changes.Exiting holds the a.b.c node, changes.Retained the rest.
*/
package statepath
