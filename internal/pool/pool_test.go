package pool

import (
	"sort"
	"testing"
)

func TestWorkerPoolProcessesAllJobs(t *testing.T) {
	p := New[int, int](4, 10)
	p.Start(func(n int) int { return n * n })

	for i := 1; i <= 10; i++ {
		p.Submit(i)
	}
	p.Close()

	var got []int
	for r := range p.Results() {
		got = append(got, r)
	}
	sort.Ints(got)

	want := []int{1, 4, 9, 16, 25, 36, 49, 64, 81, 100}
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestWorkerPoolDefaultsWorkers(t *testing.T) {
	p := New[int, int](0, 2)
	if p.numWorkers < 1 {
		t.Errorf("numWorkers = %d, want at least 1", p.numWorkers)
	}
	// Pool never runs more workers than there are jobs.
	if p.numWorkers > 2 {
		t.Errorf("numWorkers = %d, want at most 2", p.numWorkers)
	}
}

func TestWorkerPoolNoJobs(t *testing.T) {
	p := New[int, int](2, 0)
	p.Start(func(n int) int { return n })
	p.Close()

	count := 0
	for range p.Results() {
		count++
	}
	if count != 0 {
		t.Errorf("got %d results from empty pool, want 0", count)
	}
}
