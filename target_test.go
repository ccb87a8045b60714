package statepath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/statepath"
)

func TestTarget_Matches(t *testing.T) {
	decl := &statepath.StateDeclaration{Name: "a"}
	state := &statepath.State{Name: "a", Self: decl}

	t.Run("By Name", func(t *testing.T) {
		assert.True(t, statepath.ByName("a").Matches(state))
		assert.False(t, statepath.ByName("b").Matches(state))
	})

	t.Run("By State Identity", func(t *testing.T) {
		assert.True(t, statepath.ByState(state).Matches(state))
		assert.False(t, statepath.ByState(&statepath.State{Name: "a"}).Matches(state))
	})

	t.Run("By Declaration", func(t *testing.T) {
		assert.True(t, statepath.ByDeclaration(decl).Matches(state))
		assert.False(t, statepath.ByDeclaration(&statepath.StateDeclaration{Name: "a"}).Matches(state))
	})

	t.Run("Nil State Never Matches", func(t *testing.T) {
		assert.False(t, statepath.ByName("a").Matches(nil))
	})

	t.Run("Zero Target Never Matches", func(t *testing.T) {
		var zero statepath.Target
		assert.False(t, zero.Matches(state))
		assert.Equal(t, "<empty target>", zero.String())
	})
}
