package history

import "github.com/bethropolis/undobuf/internal/logger"

// Stack is a last-in-first-out list of operations. A positive max caps its
// size by evicting the oldest entry.
type Stack struct {
	ops []Operation
	max int
}

// NewStack creates a stack. max <= 0 means unlimited.
func NewStack(max int) *Stack {
	if max < 0 {
		max = 0
	}
	return &Stack{max: max}
}

// Push adds op on top.
func (s *Stack) Push(op Operation) {
	s.ops = append(s.ops, op)
	if s.max > 0 && len(s.ops) > s.max {
		// Drop the oldest entry
		s.ops = s.ops[len(s.ops)-s.max:]
		logger.DebugTagf("history", "History: Evicted oldest entry, cap %d", s.max)
	}
	logger.DebugTagf("history", "History: Pushed %v. Depth: %d", op, len(s.ops))
}

// Pop removes and returns the top entry. ok is false when empty.
func (s *Stack) Pop() (op Operation, ok bool) {
	if len(s.ops) == 0 {
		return Operation{}, false
	}
	last := len(s.ops) - 1
	op = s.ops[last]
	s.ops[last] = Operation{}
	s.ops = s.ops[:last]
	return op, true
}

// Peek returns the top entry without removing it.
func (s *Stack) Peek() (Operation, bool) {
	if len(s.ops) == 0 {
		return Operation{}, false
	}
	return s.ops[len(s.ops)-1], true
}

// Len returns the number of entries.
func (s *Stack) Len() int { return len(s.ops) }

// Max returns the cap, 0 if unlimited.
func (s *Stack) Max() int { return s.max }

// Clear empties the stack, keeping allocated capacity.
func (s *Stack) Clear() {
	clear(s.ops)
	s.ops = s.ops[:0]
	logger.DebugTagf("history", "History: Cleared.")
}

// Entries returns a copy of the entries, oldest first.
func (s *Stack) Entries() []Operation {
	out := make([]Operation, len(s.ops))
	copy(out, s.ops)
	return out
}
