package scrape

import (
	"sort"
	"sync"
	"testing"
	"time"
)

func TestReserveSpacesSlots(t *testing.T) {
	c := &Client{interval: 3 * time.Second}
	now := time.Now()

	if got := c.reserve(now); !got.Equal(now) {
		t.Fatalf("first slot = %v, want %v", got, now)
	}
	if got, want := c.reserve(now), now.Add(3*time.Second); !got.Equal(want) {
		t.Fatalf("second slot = %v, want %v", got, want)
	}
	if got, want := c.reserve(now), now.Add(6*time.Second); !got.Equal(want) {
		t.Fatalf("third slot = %v, want %v", got, want)
	}
}

func TestReserveAfterLongIdle(t *testing.T) {
	c := &Client{interval: 3 * time.Second}
	c.reserve(time.Now().Add(-time.Minute))

	now := time.Now()
	if got := c.reserve(now); !got.Equal(now) {
		t.Fatalf("slot after idle = %v, want %v", got, now)
	}
}

// Concurrent callers must each get their own slot, one interval apart.
func TestReserveConcurrentDistinctSlots(t *testing.T) {
	c := &Client{interval: 3 * time.Second}
	now := time.Now()

	const n = 8
	slots := make([]time.Time, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			slots[i] = c.reserve(now)
		}(i)
	}
	wg.Wait()

	sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })
	for i := 1; i < n; i++ {
		if got := slots[i].Sub(slots[i-1]); got != 3*time.Second {
			t.Fatalf("gap %d = %v, want 3s", i, got)
		}
	}
}
