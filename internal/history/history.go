// Package history implements a linear undo/redo log of canvas snapshots.
//
// The stack never mutates the surface itself: Undo and Redo return the
// snapshot to apply and the caller is responsible for restoring it
// immediately, keeping the two decoupled.
package history

import "github.com/ritvikjaiswal02/A-Loving-Lunch/internal/canvas"

// Stack is an ordered sequence of snapshots with a cursor pointing at the
// currently-applied one. Recording after an undo discards the redo branch
// (standard linear-undo semantics, not a tree).
type Stack struct {
	snaps []canvas.Snapshot
	step  int
}

// New returns an empty stack. The cursor starts before the first slot, so
// the first Record establishes step 0.
func New() *Stack {
	return &Stack{step: -1}
}

// Record truncates the sequence to [0..step], appends snap, and advances
// the cursor to the new last index.
func (s *Stack) Record(snap canvas.Snapshot) {
	s.snaps = append(s.snaps[:s.step+1], snap)
	s.step = len(s.snaps) - 1
}

// Undo moves the cursor back one step and returns the snapshot there for
// the caller to restore. Returns false without moving at step 0 (or on an
// empty stack).
func (s *Stack) Undo() (canvas.Snapshot, bool) {
	if s.step <= 0 {
		return nil, false
	}
	s.step--
	return s.snaps[s.step], true
}

// Redo moves the cursor forward one step and returns the snapshot there.
// Returns false without moving at the end of the sequence.
func (s *Stack) Redo() (canvas.Snapshot, bool) {
	if s.step >= len(s.snaps)-1 {
		return nil, false
	}
	s.step++
	return s.snaps[s.step], true
}

// CanUndo reports whether Undo would move the cursor.
func (s *Stack) CanUndo() bool { return s.step > 0 }

// CanRedo reports whether Redo would move the cursor.
func (s *Stack) CanRedo() bool { return s.step < len(s.snaps)-1 }

// Step returns the cursor position.
func (s *Stack) Step() int { return s.step }

// Len returns the number of recorded snapshots.
func (s *Stack) Len() int { return len(s.snaps) }
