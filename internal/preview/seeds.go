package preview

import "sync"

// SeedSource hands out consecutive seeds. It is safe for concurrent use so
// one source can feed every SSH session.
type SeedSource struct {
	mu   sync.Mutex
	next int64
}

// NewSeedSource returns a source whose first seed is start.
func NewSeedSource(start int64) *SeedSource {
	return &SeedSource{next: start}
}

// Next returns the current seed and advances the source.
func (s *SeedSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	seed := s.next
	s.next++
	return seed
}
