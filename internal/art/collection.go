package art

import "github.com/iburimskiy/proximity-art/internal/canvas"

// Collection owns the live elements. Insertion order is draw order, so
// later batches are rendered on top of earlier ones. The frame loop is the
// only mutator.
type Collection struct {
	elems []Element
}

func NewCollection() *Collection {
	return &Collection{}
}

// Append adds a generation batch behind everything already on screen.
func (c *Collection) Append(batch ...Element) {
	c.elems = append(c.elems, batch...)
}

func (c *Collection) Len() int {
	return len(c.elems)
}

// Clear empties the collection immediately, independent of frame cadence.
func (c *Collection) Clear() {
	c.elems = c.elems[:0]
}

// Update advances every element one tick and prunes the expired ones in the
// same pass. The traversal runs newest to oldest so removal by index is
// safe mid-loop.
func (c *Collection) Update() {
	for i := len(c.elems) - 1; i >= 0; i-- {
		e := c.elems[i]
		e.Update()
		if e.Expired() {
			c.elems = append(c.elems[:i], c.elems[i+1:]...)
		}
	}
}

// Render draws the elements in insertion order.
func (c *Collection) Render(s canvas.Surface) {
	for _, e := range c.elems {
		e.Draw(s)
	}
}
