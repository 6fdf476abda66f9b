package cart

import "sync"

// Cart holds the lines of one user session, in insertion order. The
// same user can hit the API from two clients at once, so every method
// takes the cart's own lock; the Store only guards its user map.
//
// Invariants: every line has Quantity >= 1, line keys are unique, and
// totals are always recomputed from the lines rather than cached.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add merges the line into the cart. A line whose key is already
// present just gains quantity; its incoming prices and addons are
// ignored, because an equal key guarantees they match. New lines keep
// their supplied quantity, defaulting to 1.
func (c *Cart) Add(line Line) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].LineKey == line.LineKey {
			c.lines[i].Quantity++
			return
		}
	}
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	c.lines = append(c.lines, line)
}

// Remove deletes the line. Removing an absent key is a no-op.
func (c *Cart) Remove(lineKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].LineKey == lineKey {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// AdjustQuantity adds delta to the line's quantity, clamping at zero.
// A line at zero is removed, never kept. Absent keys are a no-op.
func (c *Cart) AdjustQuantity(lineKey string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].LineKey != lineKey {
			continue
		}
		q := c.lines[i].Quantity + delta
		if q <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = q
		}
		return
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

func (c *Cart) TotalPrice() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPrice()
}

func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalItems()
}

func (c *Cart) totalPrice() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.UnitPrice * int64(line.Quantity)
	}
	return total
}

func (c *Cart) totalItems() int {
	var total int
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Snapshot copies the current state under one lock hold, so the lines
// and both totals are consistent with each other and callers can't
// mutate the cart behind its back.
func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return Snapshot{
		Lines:      lines,
		TotalPrice: c.totalPrice(),
		TotalItems: c.totalItems(),
	}
}
