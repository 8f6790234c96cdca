package random

// Philox implements the philox4x32-10 counter-based generator.
//
// Unlike a sequential stream, a counter-based generator produces the value at
// any position directly from (key, counter), so GPU threads can each compute
// their own block without coordination. The WGSL random shaders run the same
// rounds with the same constants; this Go version seeds them and doubles as
// the reference implementation in tests.
type Philox struct {
	key     [2]uint32
	counter uint64
}

// philox4x32-10 round constants.
const (
	philoxM0 = 0xD2511F53
	philoxM1 = 0xCD9E8D57
	philoxW0 = 0x9E3779B9 // Weyl sequence increment (golden ratio)
	philoxW1 = 0xBB67AE85 // sqrt(3) - 1
)

// NewPhilox returns a generator keyed by seed.
// A seed of 0 draws the key from the OS entropy source.
func NewPhilox(seed int64) *Philox {
	if seed == 0 {
		seed = SecureSeed()
	}
	return &Philox{
		key: [2]uint32{uint32(seed), uint32(uint64(seed) >> 32)},
	}
}

// Key returns the generator key, for handing off to a GPU dispatch.
func (p *Philox) Key() [2]uint32 {
	return p.key
}

// Counter returns the current block counter.
func (p *Philox) Counter() uint64 {
	return p.counter
}

// Skip advances the counter by n blocks without generating values.
// Used to reserve a counter range for a GPU dispatch.
func (p *Philox) Skip(n uint64) {
	p.counter += n
}

// Split returns an independent generator derived from this one.
// The child's key is a block generated by the parent, so parent and child
// streams do not overlap.
func (p *Philox) Split() *Philox {
	block := p.Next()
	return &Philox{key: [2]uint32{block[0], block[1]}}
}

// Next generates the next block of four 32-bit values and advances the counter.
func (p *Philox) Next() [4]uint32 {
	block := p.At(p.counter)
	p.counter++
	return block
}

// At computes the block at the given counter position without changing state.
func (p *Philox) At(counter uint64) [4]uint32 {
	ctr := [4]uint32{uint32(counter), uint32(counter >> 32), 0, 0}
	key := p.key
	for round := 0; round < 10; round++ {
		ctr = philoxRound(ctr, key)
		key[0] += philoxW0
		key[1] += philoxW1
	}
	return ctr
}

// philoxRound applies one philox4x32 round.
func philoxRound(ctr [4]uint32, key [2]uint32) [4]uint32 {
	p0 := uint64(philoxM0) * uint64(ctr[0])
	p1 := uint64(philoxM1) * uint64(ctr[2])
	hi0, lo0 := uint32(p0>>32), uint32(p0)
	hi1, lo1 := uint32(p1>>32), uint32(p1)
	return [4]uint32{
		hi1 ^ ctr[1] ^ key[0],
		lo1,
		hi0 ^ ctr[3] ^ key[1],
		lo0,
	}
}

// Uniform converts a 32-bit value to a float32 in [0, 1).
// Uses the top 24 bits, matching the GPU shader's conversion.
func Uniform(bits uint32) float32 {
	return float32(bits>>8) * (1.0 / (1 << 24))
}
