// Package debug holds the debugger-facing state the editor renders:
// breakpoints, grouped by source file. Talking to a debug adapter is the
// job of the host integration; this package is only the store the gutter
// reads from.
package debug

import (
	"sync"
)

// Breakpoint is a user-set line breakpoint.
type Breakpoint struct {
	// Line is the 0-based line the breakpoint is set on.
	Line int

	// Verified reports whether the debug adapter confirmed the
	// breakpoint. Unverified breakpoints render faded.
	Verified bool

	// Condition is an optional expression; the adapter stops only
	// when it evaluates true. Opaque to the editor.
	Condition string

	// LogMessage, when set, makes this a log point: the adapter logs
	// the message instead of stopping.
	LogMessage string
}

// Store keeps breakpoints indexed by absolute file path.
//
// Mutation and reads are safe for concurrent use, but renderers must not
// see changes mid draw cycle: ForPath returns a copied slice, so a
// snapshot taken at bind time stays stable for the whole cycle.
type Store struct {
	mu     sync.RWMutex
	byPath map[string][]Breakpoint
}

// NewStore creates an empty breakpoint store.
func NewStore() *Store {
	return &Store{byPath: make(map[string][]Breakpoint)}
}

// Add appends a breakpoint for the given file.
// Duplicates on one line are kept in insertion order; rendering uses the
// first match.
func (s *Store) Add(path string, bp Breakpoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byPath[path] = append(s.byPath[path], bp)
}

// Remove deletes all breakpoints at the given line.
// Returns true if anything was removed.
func (s *Store) Remove(path string, line int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	bps := s.byPath[path]
	kept := bps[:0]
	for _, bp := range bps {
		if bp.Line != line {
			kept = append(kept, bp)
		}
	}
	if len(kept) == len(bps) {
		return false
	}
	if len(kept) == 0 {
		delete(s.byPath, path)
	} else {
		s.byPath[path] = kept
	}
	return true
}

// Toggle removes the breakpoints at line if any exist, otherwise sets a
// plain unverified breakpoint there.
func (s *Store) Toggle(path string, line int) {
	if !s.Remove(path, line) {
		s.Add(path, Breakpoint{Line: line})
	}
}

// SetVerified marks the first breakpoint at the given line as verified or
// not, typically from a debug adapter response.
// Returns false if no breakpoint exists there.
func (s *Store) SetVerified(path string, line int, verified bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	bps := s.byPath[path]
	for i := range bps {
		if bps[i].Line == line {
			bps[i].Verified = verified
			return true
		}
	}
	return false
}

// ForPath returns a copy of the breakpoints recorded for the file.
// The copy is safe to hold for a full draw cycle. A file with no
// breakpoints yields an empty slice, not an error.
func (s *Store) ForPath(path string) []Breakpoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bps := s.byPath[path]
	out := make([]Breakpoint, len(bps))
	copy(out, bps)
	return out
}

// Clear removes all breakpoints for the file.
func (s *Store) Clear(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byPath, path)
}

// Paths returns the files that currently have breakpoints.
func (s *Store) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.byPath))
	for p := range s.byPath {
		paths = append(paths, p)
	}
	return paths
}
