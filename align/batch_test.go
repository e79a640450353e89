package align

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestComputeBatchMatchesSequential checks batched heterogeneous-length
// scoring matches calling Compute one pair at a time, regardless of order.
func TestComputeBatchMatchesSequential(t *testing.T) {
	e := buildEngineForTest(t, MethodGlobal)

	pairs := []Pair{
		{S1: []byte("GATTACA"), S2: []byte("GATTACA")},
		{S1: []byte("AAAA"), S2: []byte("TTTT")},
		{S1: []byte("ACGT"), S2: []byte("")},
		{S1: []byte("GATTACA"), S2: []byte("GACTACA")},
		{S1: []byte("GG"), S2: []byte("GG")},
		{S1: []byte("AAAA"), S2: []byte("TTTT")},
	}

	batched, err := e.ComputeBatch(pairs)
	if err != nil {
		t.Fatalf("ComputeBatch: %v", err)
	}
	if len(batched) != len(pairs) {
		t.Fatalf("ComputeBatch returned %d scores, want %d", len(batched), len(pairs))
	}

	want := make([]int64, len(pairs))
	for i, p := range pairs {
		s, err := e.Compute(p.S1, p.S2)
		if err != nil {
			t.Fatalf("Compute(%d): %v", i, err)
		}
		want[i] = s
	}
	if diff := cmp.Diff(want, batched); diff != "" {
		t.Errorf("ComputeBatch scores differ from sequential Compute (-want +got):\n%s", diff)
	}
}

func TestComputeBatchEmptyInput(t *testing.T) {
	e := buildEngineForTest(t, MethodGlobal)
	got, err := e.ComputeBatch(nil)
	if err != nil {
		t.Fatalf("ComputeBatch(nil): %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ComputeBatch(nil) = %v, want empty", got)
	}
}

func TestComputeBatchSingleLaneFallback(t *testing.T) {
	e := buildEngineForTest(t, MethodGlobal)
	got, err := e.ComputeBatch([]Pair{{S1: []byte("GATTACA"), S2: []byte("GATTACA")}})
	if err != nil {
		t.Fatalf("ComputeBatch: %v", err)
	}
	if len(got) != 1 || got[0] != 28 {
		t.Errorf("ComputeBatch(single) = %v, want [28]", got)
	}
}
