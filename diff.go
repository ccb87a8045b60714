package statepath

// Changes describes the difference between two root-to-leaf paths: which
// states are kept, left and newly visited when moving from one to the other.
// A transition engine consumes Exiting leaf-first and Entering root-first;
// this package only computes the sets.
type Changes[N Node[N]] struct {
	// From and To are the input paths, unchanged.
	From Path[N]
	To   Path[N]

	// Retained is the longest common prefix of From and To, compared by
	// state identity.
	Retained Path[N]

	// Exiting is the remainder of From after the retained prefix.
	Exiting Path[N]

	// Entering is the remainder of To after the retained prefix.
	Entering Path[N]
}

// Diff computes the Changes between two paths. All derived fields follow the
// shallow-clone discipline of the path derive operations, so the result can
// be handed out without aliasing the inputs' node wrappers.
func Diff[N Node[N]](from, to Path[N]) Changes[N] {
	keep := 0
	limit := min(from.Len(), to.Len())
	for keep < limit && from.nodes[keep].State() == to.nodes[keep].State() {
		keep++
	}
	return Changes[N]{
		From:     from,
		To:       to,
		Retained: from.Slice(0, keep),
		Exiting:  from.SliceFrom(keep),
		Entering: to.SliceFrom(keep),
	}
}
