package collector

import "strings"

// Collector holds an ordered set of user-entered strings (ingredients or
// menu items). Uniqueness is case-sensitive exact match after trimming,
// ordering is insertion order.
type Collector struct {
	items []string
}

// New creates an empty collector.
func New() *Collector {
	return &Collector{}
}

// Add trims raw and appends it. Empty-after-trim input and exact duplicates
// are ignored. Returns true when the collection changed.
func (c *Collector) Add(raw string) bool {
	item := strings.TrimSpace(raw)
	if item == "" {
		return false
	}
	for _, existing := range c.items {
		if existing == item {
			return false
		}
	}
	c.items = append(c.items, item)
	return true
}

// Remove deletes the item at index i, shifting subsequent items down.
// Out-of-range indexes are a no-op.
func (c *Collector) Remove(i int) {
	if i < 0 || i >= len(c.items) {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// Items returns the current ordered sequence. The returned slice is a copy;
// callers may not mutate collector state through it.
func (c *Collector) Items() []string {
	out := make([]string, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of collected items.
func (c *Collector) Len() int {
	return len(c.items)
}
