// Package history keeps the session's bounded record of recent commands and
// answers prefix completion queries against it.
package history

import "github.com/doeshing/xterm-go/internal/domain"

// Store is a fixed-capacity FIFO ring of accepted commands. When full, each
// Append evicts the oldest entry. Re-entering an existing command does not
// move it; duplicates are kept.
type Store struct {
	buf   []string
	start int
	n     int
}

// NewStore builds a store holding at most capacity entries. Non-positive
// capacities fall back to domain.DefaultHistorySize.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = domain.DefaultHistorySize
	}
	return &Store{buf: make([]string, capacity)}
}

// Append adds command as the most recent entry.
func (s *Store) Append(command string) {
	if s.n < len(s.buf) {
		s.buf[(s.start+s.n)%len(s.buf)] = command
		s.n++
		return
	}
	s.buf[s.start] = command
	s.start = (s.start + 1) % len(s.buf)
}

// Entries returns a copy of the history, oldest first.
func (s *Store) Entries() []string {
	out := make([]string, s.n)
	for i := 0; i < s.n; i++ {
		out[i] = s.buf[(s.start+i)%len(s.buf)]
	}
	return out
}

// Previous returns every entry except the most recent one, oldest first.
func (s *Store) Previous() []string {
	entries := s.Entries()
	if len(entries) == 0 {
		return entries
	}
	return entries[:len(entries)-1]
}

// Len is the number of entries currently held.
func (s *Store) Len() int {
	return s.n
}

// Cap is the maximum number of entries the store retains.
func (s *Store) Cap() int {
	return len(s.buf)
}

// Complete returns the entries starting with prefix.
func (s *Store) Complete(prefix string) []string {
	return Complete(s.Entries(), prefix)
}
