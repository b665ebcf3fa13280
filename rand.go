package p256ff

import "math/bits"

const splitmix64Gamma = 0x9E3779B97F4A7C15

// splitmix64 expands a single 64-bit state word into a stream of 64-bit
// outputs, used only to seed the xoroshiro128+ generator below.
type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += splitmix64Gamma
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Rand is a deterministic, non-cryptographic pseudorandom generator used
// only to draw scalars for testing. It is xoroshiro128+ over four 32-bit
// words of state, seeded by a SplitMix64 expansion of a fixed 64-bit seed.
// Rand is process-confined: a single instance must not be shared across
// goroutines without external synchronization.
type Rand struct {
	s [4]uint32
}

// NewRand returns a Rand whose state is deterministically derived from
// seed. Passing the library's documented fixed seed (0xbad5eed) reproduces
// the vector stream used by the known-answer tests; any other seed value
// produces an equally deterministic but independent stream.
func NewRand(seed uint64) *Rand {
	r := &Rand{}
	r.Reseed(seed)
	return r
}

// Reseed resets r's state to the SplitMix64 expansion of seed, discarding
// whatever stream position r was previously at.
func (r *Rand) Reseed(seed uint64) {
	sm := splitmix64{state: seed}
	for i := 0; i < 4; i++ {
		r.s[i] = uint32(sm.next())
	}
}

func rotl32(x uint32, k uint) uint32 {
	return bits.RotateLeft32(x, int(k))
}

// Uint32 returns the next 32-bit output of the xoroshiro128+ stream and
// advances r's state.
func (r *Rand) Uint32() uint32 {
	result := r.s[0] + r.s[3]

	t := r.s[1] << 9
	r.s[2] ^= r.s[0]
	r.s[3] ^= r.s[1]
	r.s[1] ^= r.s[2]
	r.s[0] ^= r.s[3]
	r.s[2] ^= t
	r.s[3] = rotl32(r.s[3], 11)

	return result
}

// Scalar draws eight 32-bit words from the stream into a FieldElement and
// reduces it modulo the group order N, writing the result into dst. It
// never rejects zero; callers that require a non-zero scalar should use
// NonZeroScalar or check the result themselves (see spec §4.2's
// random_k: "the library does not loop on rejection").
func (r *Rand) Scalar(dst *FieldElement) *FieldElement {
	var raw FieldElement
	for i := 0; i < 8; i++ {
		raw.w[i] = r.Uint32()
	}
	return dst.Mod(&raw, &N)
}

// NonZeroScalar draws scalars via Scalar until a non-zero result appears,
// writing it into dst. This is a convenience built on top of Scalar's
// documented non-rejecting behavior, not a replacement for it.
func (r *Rand) NonZeroScalar(dst *FieldElement) *FieldElement {
	for {
		r.Scalar(dst)
		if !dst.IsZero() {
			return dst
		}
	}
}
