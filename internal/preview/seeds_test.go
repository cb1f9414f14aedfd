package preview

import (
	"sync"
	"testing"
)

func TestSeedSourceSequential(t *testing.T) {
	s := NewSeedSource(40)
	for want := int64(40); want < 45; want++ {
		if got := s.Next(); got != want {
			t.Fatalf("Next = %d; want %d", got, want)
		}
	}
}

func TestSeedSourceConcurrentUnique(t *testing.T) {
	s := NewSeedSource(0)
	const workers, each = 8, 100

	var mu sync.Mutex
	seen := make(map[int64]bool)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range each {
				seed := s.Next()
				mu.Lock()
				seen[seed] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*each {
		t.Errorf("got %d distinct seeds; want %d", len(seen), workers*each)
	}
}
