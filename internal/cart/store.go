package cart

import (
	"sync"

	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/money"
)

// Store holds the configured lines of one shopper session. It has an
// explicit lifecycle: constructed empty, mutated through its operations,
// disposed with the session. It is never shared across sessions.
//
// Mutations are serialized with a mutex because HTTP handlers can race on
// the same session token; each operation is still synchronous and
// instantaneous, there is no background work.
type Store struct {
	mu    sync.Mutex
	lines []Line
}

// NewStore creates an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Add merges the line into the cart. A line with the same identity as an
// existing one accumulates quantity; otherwise it is appended, preserving
// the insertion order of everything else.
func (s *Store) Add(line Line) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].LineID == line.LineID {
			s.lines[i].Quantity += line.Quantity
			return
		}
	}
	s.lines = append(s.lines, line)
}

// Remove deletes the line. Removing an absent line is a no-op.
func (s *Store) Remove(lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].LineID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity updates a line's quantity. A quantity of zero or less is a
// removal request, never stored.
func (s *Store) SetQuantity(lineID string, quantity int) {
	if quantity <= 0 {
		s.Remove(lineID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].LineID == lineID {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

// Find returns the line with the given id.
func (s *Store) Find(lineID string) (Line, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range s.lines {
		if line.LineID == lineID {
			return line, true
		}
	}
	return Line{}, false
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len returns the number of distinct lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Total sums unit price times quantity over all lines, in exact cents.
// Rounding to a display amount happens at the presentation boundary only.
func (s *Store) Total() money.Cents {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total money.Cents
	for _, line := range s.lines {
		total += line.UnitPrice().Mul(line.Quantity)
	}
	return total
}

// Grouped is the checkout-summary projection of a cart.
type Grouped struct {
	Configured []Line
	Simple     []Line
}

// GroupBySteps partitions lines into those whose category exposes
// configuration steps and simple ones. Pure read; the cart is untouched.
func (s *Store) GroupBySteps() Grouped {
	s.mu.Lock()
	defer s.mu.Unlock()

	var grouped Grouped
	for _, line := range s.lines {
		if line.HasSteps {
			grouped.Configured = append(grouped.Configured, line)
		} else {
			grouped.Simple = append(grouped.Simple, line)
		}
	}
	return grouped
}
