package statepath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/statepath"
)

// resolvedNode decorates a node with resolution data, standing in for the
// enriched node shapes a transition engine layers on top of plain paths.
type resolvedNode struct {
	state   *statepath.State
	Visited bool
}

func (n *resolvedNode) State() *statepath.State { return n.state }

func (n *resolvedNode) Clone() *resolvedNode {
	copied := *n
	return &copied
}

func TestAdapt(t *testing.T) {
	states, p := chain("a", "a.b", "a.b.c")

	decorated := statepath.Adapt(p, func(n *statepath.PathNode, i int) *resolvedNode {
		return &resolvedNode{state: n.State(), Visited: true}
	})

	require.Equal(t, p.Len(), decorated.Len())
	for i, n := range decorated.Nodes() {
		assert.Same(t, states[i], n.State(), "states keep their order across node type migration")
		assert.True(t, n.Visited)
	}
}

func TestAdapt_IndexArgument(t *testing.T) {
	_, p := chain("a", "a.b")

	indices := []int{}
	statepath.Adapt(p, func(n *statepath.PathNode, i int) *statepath.PathNode {
		indices = append(indices, i)
		return n
	})
	assert.Equal(t, []int{0, 1}, indices)
}
