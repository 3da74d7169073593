package stego

import "testing"

// TestPCG64Deterministic pins the property the codec actually depends on:
// the same 64-bit seed always produces the same output stream. It compares
// two generators against each other rather than against fixed output values,
// so it checks Go-to-Go reproducibility only, not bit-for-bit parity with
// any other language's PCG64.
func TestPCG64Deterministic(t *testing.T) {
	const seed = 0x1234_5678_9abc_def0

	a := NewPCG64(seed)
	b := NewPCG64(seed)

	for i := 0; i < 100; i++ {
		av, bv := a.Uint64(), b.Uint64()
		if av != bv {
			t.Fatalf("draw %d: generators seeded identically diverged: %#x != %#x", i, av, bv)
		}
	}
}

func TestPCG64DifferentSeedsDiverge(t *testing.T) {
	a := NewPCG64(1)
	b := NewPCG64(2)

	same := true
	for i := 0; i < 8; i++ {
		if a.Uint64() != b.Uint64() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("two different seeds produced identical first 8 draws")
	}
}

func TestBoundedUint64Range(t *testing.T) {
	g := NewPCG64(42)
	for i := 0; i < 1000; i++ {
		v := g.boundedUint64(7)
		if v >= 7 {
			t.Fatalf("boundedUint64(7) = %d, out of range", v)
		}
	}
}

func TestBoundedUint64ZeroIsZero(t *testing.T) {
	g := NewPCG64(1)
	if got := g.boundedUint64(0); got != 0 {
		t.Errorf("boundedUint64(0) = %d, want 0", got)
	}
}

func TestSampleWithoutReplacementNoDuplicates(t *testing.T) {
	pool := make([]int, 50)
	for i := range pool {
		pool[i] = i
	}

	out := sampleWithoutReplacement(pool, len(pool), 777)
	if len(out) != len(pool) {
		t.Fatalf("got %d draws, want %d", len(out), len(pool))
	}

	seen := make(map[int]bool, len(out))
	for _, v := range out {
		if seen[v] {
			t.Fatalf("value %d drawn more than once", v)
		}
		seen[v] = true
	}
}

// TestSampleWithoutReplacementPrefixInvariant is the property Extract relies
// on: a partial draw of k items matches the first k items of a full-length
// draw with the same seed, so extraction can regenerate the whole
// permutation without knowing the payload length in advance.
func TestSampleWithoutReplacementPrefixInvariant(t *testing.T) {
	pool := make([]int, 200)
	for i := range pool {
		pool[i] = i + 1000
	}

	const seed = 0xdead_beef_cafe_f00d
	full := sampleWithoutReplacement(pool, len(pool), seed)
	partial := sampleWithoutReplacement(pool, 37, seed)

	if len(partial) != 37 {
		t.Fatalf("partial draw length = %d, want 37", len(partial))
	}
	for i, v := range partial {
		if full[i] != v {
			t.Fatalf("prefix mismatch at %d: full=%d partial=%d", i, full[i], v)
		}
	}
}

func TestSampleWithoutReplacementSeedChangesOrder(t *testing.T) {
	pool := make([]int, 30)
	for i := range pool {
		pool[i] = i
	}

	a := sampleWithoutReplacement(pool, len(pool), 1)
	b := sampleWithoutReplacement(pool, len(pool), 2)

	identical := true
	for i := range a {
		if a[i] != b[i] {
			identical = false
			break
		}
	}
	if identical {
		t.Fatal("two different seeds produced the identical permutation")
	}
}
