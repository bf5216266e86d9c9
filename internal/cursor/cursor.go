// Package cursor provides a saturating index over a fixed range.
package cursor

// Cursor is an index that always stays within [0, Max()].
type Cursor struct {
	value int
	max   int
}

// New returns a cursor at 0. A negative max is treated as 0.
func New(max int) Cursor {
	if max < 0 {
		max = 0
	}
	return Cursor{max: max}
}

func (c Cursor) Value() int { return c.value }

func (c Cursor) Max() int { return c.max }

func (c Cursor) AtEnd() bool { return c.value == c.max }

// Advance moves forward by n, stopping at max. A negative n moves back,
// stopping at 0.
func (c *Cursor) Advance(n int) {
	switch {
	case n < 0 && n <= -c.value:
		c.value = 0
	case n >= c.max-c.value:
		c.value = c.max
	default:
		c.value += n
	}
}

// Retreat moves back by n, stopping at 0. A negative n moves forward,
// stopping at max.
func (c *Cursor) Retreat(n int) {
	switch {
	case n < 0 && n <= c.value-c.max:
		c.value = c.max
	case n >= c.value:
		c.value = 0
	default:
		c.value -= n
	}
}

func (c *Cursor) Home() { c.value = 0 }

func (c *Cursor) End() { c.value = c.max }
