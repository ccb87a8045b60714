package statepath

// Adapt applies mapper to every node of p, in order, and returns a new Path
// over the mapped nodes. It is the sanctioned way to migrate a path from one
// node type to another (e.g. to decorate plain nodes with resolution data).
//
// Adapt does not clone the mapper's output; it trusts the mapper to produce
// appropriately independent values. It is a free function because Go methods
// cannot introduce a second type parameter.
func Adapt[N Node[N], M Node[M]](p Path[N], mapper func(n N, i int) M) Path[M] {
	mapped := make([]M, len(p.nodes))
	for i, n := range p.nodes {
		mapped[i] = mapper(n, i)
	}
	return Path[M]{nodes: mapped}
}
