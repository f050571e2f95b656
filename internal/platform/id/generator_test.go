package id

import (
	"sync"
	"testing"
)

func TestSequence_NewID(t *testing.T) {
	seq := NewSequence("TM", 5)

	first, _ := seq.NewID()
	second, _ := seq.NewID()
	if first != "TM-00001" || second != "TM-00002" {
		t.Fatalf("unexpected ids: %s %s", first, second)
	}
}

func TestSequence_ConcurrentIDsAreUnique(t *testing.T) {
	t.Parallel()

	seq := NewSequence("TM", 5)
	const workers = 64

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers)
		wg   sync.WaitGroup
	)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			v, _ := seq.NewID()
			mu.Lock()
			seen[v] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != workers {
		t.Fatalf("expected %d unique ids, got %d", workers, len(seen))
	}
}

func TestFormat(t *testing.T) {
	if got := Format("TM", 5, 123456); got != "TM-123456" {
		t.Fatalf("unexpected overflow format: %s", got)
	}
	if got := Format("", 3, 7); got != "007" {
		t.Fatalf("unexpected bare format: %s", got)
	}
}

func TestUUIDGenerator_NewID(t *testing.T) {
	a, err := NewUUIDGenerator().NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	b, _ := NewUUIDGenerator().NewID()
	if a == b || len(a) != 36 {
		t.Fatalf("unexpected uuid values: %q %q", a, b)
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"TM-00001", "TM-00002", -1},
		{"TM-99999", "TM-100000", -1},
		{"TM-100000", "TM-20000", 1},
		{"TM-00007", "TM-00007", 0},
		{"TM-7", "TM-00007", 1},
		{"AB-00009", "TM-00001", -1},
		{"x", "TM-00001", 1},
	}
	for _, tc := range cases {
		if got := Compare(tc.a, tc.b); got != tc.want {
			t.Fatalf("Compare(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
