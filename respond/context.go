package respond

import "sync"

// DefaultCapacity is the number of conversation turns kept per session.
const DefaultCapacity = 5

// Turn is a single user/bot exchange.
type Turn struct {
	Input  string
	Output string
}

// Context is a bounded, per-session conversation history. It serializes
// its own access, so a single Context may be shared by concurrent
// callers handling the same session.
type Context struct {
	mu       sync.Mutex
	turns    []Turn
	capacity int
}

// NewContext creates a conversation context holding up to capacity
// turns. A non-positive capacity uses DefaultCapacity.
func NewContext(capacity int) *Context {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Context{capacity: capacity}
}

// Append records a turn, evicting the oldest once the capacity is
// reached.
func (c *Context) Append(input, output string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = append(c.turns, Turn{Input: input, Output: output})
	if len(c.turns) > c.capacity {
		c.turns = c.turns[len(c.turns)-c.capacity:]
	}
}

// Turns returns a copy of the retained turns, oldest first.
func (c *Context) Turns() []Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Len returns the number of retained turns.
func (c *Context) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.turns)
}

// Clear drops all retained turns.
func (c *Context) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = nil
}
