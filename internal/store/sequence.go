package store

import "sync"

// Sequence generates the IDs for one kind of resource.
//
// IDs start at 1 and strictly increase. An ID is never handed out twice,
// even after the resource it was assigned to has been deleted.
type Sequence struct {
	mu   sync.Mutex
	last uint
}

// Next returns the next ID.
func (s *Sequence) Next() uint {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last++
	return s.last
}

// Last returns the most recently generated ID, 0 if none was generated yet.
func (s *Sequence) Last() uint {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last
}
