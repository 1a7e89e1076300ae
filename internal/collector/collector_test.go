package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectorAdd(t *testing.T) {
	t.Run("should trim and append in insertion order", func(t *testing.T) {
		c := New()
		assert.True(t, c.Add("  carrot "))
		assert.True(t, c.Add("broccoli"))
		assert.Equal(t, []string{"carrot", "broccoli"}, c.Items())
	})

	t.Run("should ignore duplicates after trimming", func(t *testing.T) {
		c := New()
		assert.True(t, c.Add("carrot"))
		assert.False(t, c.Add("  carrot  "))
		assert.Equal(t, 1, c.Len())
	})

	t.Run("duplicate check is case-sensitive", func(t *testing.T) {
		c := New()
		c.Add("carrot")
		assert.True(t, c.Add("Carrot"))
		assert.Equal(t, 2, c.Len())
	})

	t.Run("should ignore empty and whitespace-only input", func(t *testing.T) {
		c := New()
		assert.False(t, c.Add(""))
		assert.False(t, c.Add("   "))
		assert.False(t, c.Add("\t\n"))
		assert.Equal(t, 0, c.Len())
	})
}

func TestCollectorRemove(t *testing.T) {
	t.Run("should preserve relative order of remaining items", func(t *testing.T) {
		c := New()
		c.Add("a")
		c.Add("b")
		c.Add("c")
		c.Remove(1)
		assert.Equal(t, []string{"a", "c"}, c.Items())
	})

	t.Run("out-of-range index is a no-op", func(t *testing.T) {
		c := New()
		c.Add("a")
		c.Remove(-1)
		c.Remove(1)
		c.Remove(42)
		assert.Equal(t, []string{"a"}, c.Items())
	})

	t.Run("remove on empty collector does not panic", func(t *testing.T) {
		c := New()
		assert.NotPanics(t, func() { c.Remove(0) })
	})
}

func TestCollectorItemsIsACopy(t *testing.T) {
	c := New()
	c.Add("a")
	items := c.Items()
	items[0] = "mutated"
	assert.Equal(t, []string{"a"}, c.Items())
}
