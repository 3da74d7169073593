package stego

import "math/bits"

// PCG64 is the counter-based PCG family generator (128-bit LCG state,
// XSL-RR output permutation).
type PCG64 struct {
	hi, lo uint64 // 128-bit LCG state, hi:lo
}

// reference PCG64 multiplier 0x2360ed051fc65da44385df649fccf645
const (
	pcgMultHi = 0x2360ed051fc65da4
	pcgMultLo = 0x4385df649fccf645
)

// reference PCG64 default stream increment 0x5851f42d4c957f2d14057b7ef767814f
const (
	pcgIncHi = 0x5851f42d4c957f2d
	pcgIncLo = 0x14057b7ef767814f
)

func NewPCG64(seed uint64) *PCG64 {
	g := &PCG64{}
	g.step()
	var carry uint64
	g.lo, carry = bits.Add64(g.lo, seed, 0)
	g.hi, _ = bits.Add64(g.hi, 0, carry)
	g.step()
	return g
}

// state = state*MULT + INC (mod 2^128), in 64-bit halves.
func (g *PCG64) step() {
	prodHi, prodLo := bits.Mul64(g.lo, pcgMultLo)
	prodHi += g.lo * pcgMultHi
	prodHi += g.hi * pcgMultLo

	sumLo, carry := bits.Add64(prodLo, pcgIncLo, 0)
	sumHi, _ := bits.Add64(prodHi, pcgIncHi, carry)

	g.lo, g.hi = sumLo, sumHi
}

func (g *PCG64) Uint64() uint64 {
	g.step()
	xored := g.hi ^ g.lo
	rot := uint(g.hi >> 58)
	return bits.RotateLeft64(xored, -int(rot))
}

// boundedUint64 returns a uniform value in [0, n) via rejection sampling.
func (g *PCG64) boundedUint64(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	thresh := -n % n
	for {
		r := g.Uint64()
		if r >= thresh {
			return r % n
		}
	}
}

// sampleWithoutReplacement performs a partial Fisher-Yates shuffle over a
// copy of pool, drawing k items without replacement in draw order. The
// first k items of a full-length draw match a partial draw's k items
// exactly, given the same seed.
func sampleWithoutReplacement(pool []int, k int, seed uint64) []int {
	a := make([]int, len(pool))
	copy(a, pool)
	rng := NewPCG64(seed)

	out := make([]int, k)
	for i := 0; i < k; i++ {
		j := i + int(rng.boundedUint64(uint64(len(a)-i)))
		a[i], a[j] = a[j], a[i]
		out[i] = a[i]
	}
	return out
}
