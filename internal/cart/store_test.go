package cart

import (
	"sync"
	"testing"
	"time"
)

func TestAddIncrementsExistingEntry(t *testing.T) {
	s := NewStore()

	if count := s.Add("sid", 1); count != 1 {
		t.Errorf("first add count = %d, want 1", count)
	}
	if count := s.Add("sid", 1); count != 1 {
		t.Errorf("repeat add count = %d, want 1", count)
	}

	entries := s.Entries("sid")
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", entries[0].Quantity)
	}
}

func TestAddDistinctProducts(t *testing.T) {
	s := NewStore()
	s.Add("sid", 1)
	if count := s.Add("sid", 2); count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s := NewStore()
	s.Add("sid", 1)

	if count := s.Remove("sid", 99); count != 1 {
		t.Errorf("count after removing absent product = %d, want 1", count)
	}
	if count := s.Remove("sid", 1); count != 0 {
		t.Errorf("count after removing present product = %d, want 0", count)
	}
}

func TestCartsAreSessionScoped(t *testing.T) {
	s := NewStore()
	s.Add("a", 1)
	s.Add("b", 2)

	if entries := s.Entries("a"); len(entries) != 1 || entries[0].ProductID != 1 {
		t.Errorf("session a entries = %v", entries)
	}
	if entries := s.Entries("b"); len(entries) != 1 || entries[0].ProductID != 2 {
		t.Errorf("session b entries = %v", entries)
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Add("sid", 1)
	s.Add("sid", 2)
	s.Clear("sid")

	if entries := s.Entries("sid"); len(entries) != 0 {
		t.Errorf("entries after clear = %v, want none", entries)
	}
	if !s.Exists("sid") {
		t.Error("session should survive a clear")
	}
}

func TestExists(t *testing.T) {
	s := NewStore()
	if s.Exists("sid") {
		t.Error("Exists() true before first add")
	}
	s.Add("sid", 1)
	if !s.Exists("sid") {
		t.Error("Exists() false after add")
	}
}

func TestConcurrentAddsDoNotLoseIncrements(t *testing.T) {
	s := NewStore()
	const n = 100

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add("sid", 1)
		}()
	}
	wg.Wait()

	entries := s.Entries("sid")
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Quantity != n {
		t.Errorf("quantity = %d, want %d", entries[0].Quantity, n)
	}
}

func TestPrune(t *testing.T) {
	s := NewStore()
	s.Add("old", 1)
	s.Add("fresh", 2)

	// age the first cart past the cutoff
	s.carts["old"].touched = time.Now().Add(-2 * time.Hour)

	if n := s.Prune(time.Hour); n != 1 {
		t.Errorf("Prune() = %d, want 1", n)
	}
	if s.Exists("old") {
		t.Error("idle cart should be gone")
	}
	if !s.Exists("fresh") {
		t.Error("active cart should survive")
	}
}
