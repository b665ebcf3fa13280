package p256ff

import "math/bits"

// FieldElement is an unsigned 256-bit integer stored as eight 32-bit limbs
// in little-endian order: w[0] is the least significant limb. The value
// represented is sum(w[i] << (32*i)). Every FieldElement is fully valid;
// there is no uninitialized state, and the zero value is the integer 0.
//
// ModInverse interprets the top bit of w[7] as a two's-complement sign
// bit; every other operation treats a FieldElement as an unsigned integer.
type FieldElement struct {
	w [8]uint32
}

var allOnesWords = [8]uint32{
	0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF,
	0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF,
}

// P is the NIST P-256 field prime. ModInverse is hard-wired to reduce and
// invert modulo this value; every other modular operation takes its
// modulus as an explicit argument.
var P FieldElement

func init() {
	P.SetHex("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff")
}

const hexDigits = "0123456789abcdef"

// SetZero sets e to 0 and returns e.
func (e *FieldElement) SetZero() *FieldElement {
	e.w = [8]uint32{}
	return e
}

// SetUint32 sets e to v, zeroing the remaining limbs, and returns e.
func (e *FieldElement) SetUint32(v uint32) *FieldElement {
	e.w = [8]uint32{v}
	return e
}

// SetHex parses s as hex (either case), right-aligning it into the 256-bit
// value. Non-hex bytes are silently skipped. Input with more than 64 hex
// digits has its excess high nibbles discarded: only the low 64 parsed
// nibbles are kept. The result is zero-extended. SetHex never fails.
func (e *FieldElement) SetHex(s string) *FieldElement {
	var w [8]uint32
	nibble := 0
	for i := len(s) - 1; i >= 0 && nibble < 64; i-- {
		c := s[i]
		var v uint32
		switch {
		case c >= '0' && c <= '9':
			v = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			v = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v = uint32(c-'A') + 10
		default:
			continue
		}
		word := nibble / 8
		shift := uint(nibble%8) * 4
		w[word] |= v << shift
		nibble++
	}
	e.w = w
	return e
}

// PutHex writes exactly 64 lowercase hex characters into buf, most
// significant nibble first, with no prefix or terminator. buf must have
// length at least 64; PutHex panics otherwise, since a too-small buffer is
// a caller bug rather than a data condition.
func (e *FieldElement) PutHex(buf []byte) {
	if len(buf) < 64 {
		panic("p256ff: hex buffer must be at least 64 bytes")
	}
	for i := 0; i < 8; i++ {
		word := e.w[7-i]
		base := i * 8
		for j := 0; j < 8; j++ {
			shift := uint(28 - j*4)
			buf[base+j] = hexDigits[(word>>shift)&0xF]
		}
	}
}

// Hex returns e as a 64-character lowercase hex string.
func (e *FieldElement) Hex() string {
	var buf [64]byte
	e.PutHex(buf[:])
	return string(buf[:])
}

// Equal reports whether e and a represent the same unsigned integer.
func (e *FieldElement) Equal(a *FieldElement) bool {
	return e.w == a.w
}

// IsZero reports whether e is 0.
func (e *FieldElement) IsZero() bool {
	return e.w == [8]uint32{}
}

// Cmp compares e and a as unsigned 256-bit integers, returning -1, 0, or 1.
func (e *FieldElement) Cmp(a *FieldElement) int {
	for i := 7; i >= 0; i-- {
		if e.w[i] > a.w[i] {
			return 1
		}
		if e.w[i] < a.w[i] {
			return -1
		}
	}
	return 0
}

// IsNegative reports the value of bit 255, the two's-complement sign bit.
// Only ModInverse's extended-Euclid iteration relies on this
// interpretation; every other operation treats e as unsigned.
func (e *FieldElement) IsNegative() bool {
	return e.w[7]>>31 == 1
}

// LeadingZeros returns the number of leading zero bits over the full
// 256-bit width. LeadingZeros of 0 is 256.
func (e *FieldElement) LeadingZeros() int {
	total := 0
	i := 7
	for ; i >= 0 && e.w[i] == 0; i-- {
		total += 32
	}
	if i < 0 {
		return 256
	}
	return total + bits.LeadingZeros32(e.w[i])
}

// Shl sets e = a << n, a logical shift. n < 0 or n >= 256 yields 0.
func (e *FieldElement) Shl(a *FieldElement, n int) *FieldElement {
	aa := *a
	if n < 0 || n >= 256 {
		return e.SetZero()
	}
	if n == 0 {
		*e = aa
		return e
	}
	wordShift := n / 32
	bitShift := uint(n % 32)
	var r [8]uint32
	if bitShift == 0 {
		for i := 7; i >= wordShift; i-- {
			r[i] = aa.w[i-wordShift]
		}
	} else {
		for i := 7; i >= wordShift+1; i-- {
			r[i] = (aa.w[i-wordShift] << bitShift) | (aa.w[i-wordShift-1] >> (32 - bitShift))
		}
		r[wordShift] = aa.w[0] << bitShift
	}
	e.w = r
	return e
}

// Shr sets e = a >> n, a logical shift. n < 0 or n >= 256 yields 0.
func (e *FieldElement) Shr(a *FieldElement, n int) *FieldElement {
	aa := *a
	if n < 0 || n >= 256 {
		return e.SetZero()
	}
	if n == 0 {
		*e = aa
		return e
	}
	wordShift := n / 32
	bitShift := uint(n % 32)
	var r [8]uint32
	if bitShift == 0 {
		for i := 0; i < 8-wordShift; i++ {
			r[i] = aa.w[i+wordShift]
		}
	} else {
		for i := 0; i < 7-wordShift; i++ {
			r[i] = (aa.w[i+wordShift] >> bitShift) | (aa.w[i+wordShift+1] << (32 - bitShift))
		}
		r[7-wordShift] = aa.w[7] >> bitShift
	}
	e.w = r
	return e
}

// Add sets e = a + b, wrapping modulo 2^256; overflow beyond the top limb
// is discarded.
func (e *FieldElement) Add(a, b *FieldElement) *FieldElement {
	aa, bb := *a, *b
	var r [8]uint32
	var carry uint32
	for i := 0; i < 8; i++ {
		sum := aa.w[i] + bb.w[i] + carry
		if sum < aa.w[i] || (sum == aa.w[i] && bb.w[i] > 0) {
			carry = 1
		} else {
			carry = 0
		}
		r[i] = sum
	}
	e.w = r
	return e
}

// Sub sets e = a - b, wrapping modulo 2^256; borrow out of the top limb is
// discarded.
func (e *FieldElement) Sub(a, b *FieldElement) *FieldElement {
	aa, bb := *a, *b
	var r [8]uint32
	var borrow uint32
	for i := 0; i < 8; i++ {
		diff := aa.w[i] - bb.w[i] - borrow
		if diff > aa.w[i] || (diff == aa.w[i] && bb.w[i] > 0) {
			borrow = 1
		} else {
			borrow = 0
		}
		r[i] = diff
	}
	e.w = r
	return e
}

// Mul sets e to the low 256 bits of a*b via schoolbook multiplication; the
// high 256 bits of the 512-bit product are discarded.
func (e *FieldElement) Mul(a, b *FieldElement) *FieldElement {
	aa, bb := *a, *b
	var acc [8]uint32
	for i := 0; i < 8; i++ {
		var carry uint32
		for j := 0; j < 8-i; j++ {
			prod := uint64(aa.w[i])*uint64(bb.w[j]) + uint64(acc[i+j]) + uint64(carry)
			acc[i+j] = uint32(prod)
			carry = uint32(prod >> 32)
		}
	}
	e.w = acc
	return e
}

// mulWide computes the full, untruncated 512-bit product a*b as sixteen
// 32-bit limbs, least significant first. Unlike Mul, no bits are
// discarded; this feeds ModMul so that modular multiplication stays
// correct even for operands close to 2^256 (see DESIGN.md's Open
// Questions entry on mod_mul).
func mulWide(a, b *FieldElement) [16]uint32 {
	aa, bb := *a, *b
	var acc [16]uint32
	for i := 0; i < 8; i++ {
		var carry uint64
		for j := 0; j < 8; j++ {
			prod := uint64(aa.w[i])*uint64(bb.w[j]) + uint64(acc[i+j]) + carry
			acc[i+j] = uint32(prod)
			carry = prod >> 32
		}
		for k := i + 8; carry != 0; k++ {
			sum := uint64(acc[k]) + carry
			acc[k] = uint32(sum)
			carry = sum >> 32
		}
	}
	return acc
}

// wideElem is a 512-bit unsigned integer used only to reduce mulWide's
// output modulo a 256-bit modulus without first truncating it.
type wideElem struct {
	w [16]uint32
}

func wideFromFieldElement(a *FieldElement) wideElem {
	var w wideElem
	copy(w.w[:8], a.w[:])
	return w
}

func (w *wideElem) cmp(o *wideElem) int {
	for i := 15; i >= 0; i-- {
		if w.w[i] > o.w[i] {
			return 1
		}
		if w.w[i] < o.w[i] {
			return -1
		}
	}
	return 0
}

func (w *wideElem) clz() int {
	total := 0
	i := 15
	for ; i >= 0 && w.w[i] == 0; i-- {
		total += 32
	}
	if i < 0 {
		return 512
	}
	return total + bits.LeadingZeros32(w.w[i])
}

func (w *wideElem) shl(a *wideElem, n int) {
	aa := *a
	if n < 0 || n >= 512 {
		*w = wideElem{}
		return
	}
	if n == 0 {
		*w = aa
		return
	}
	wordShift := n / 32
	bitShift := uint(n % 32)
	var r [16]uint32
	if bitShift == 0 {
		for i := 15; i >= wordShift; i-- {
			r[i] = aa.w[i-wordShift]
		}
	} else {
		for i := 15; i >= wordShift+1; i-- {
			r[i] = (aa.w[i-wordShift] << bitShift) | (aa.w[i-wordShift-1] >> (32 - bitShift))
		}
		r[wordShift] = aa.w[0] << bitShift
	}
	w.w = r
}

func (w *wideElem) shr(a *wideElem, n int) {
	aa := *a
	if n < 0 || n >= 512 {
		*w = wideElem{}
		return
	}
	if n == 0 {
		*w = aa
		return
	}
	wordShift := n / 32
	bitShift := uint(n % 32)
	var r [16]uint32
	if bitShift == 0 {
		for i := 0; i < 16-wordShift; i++ {
			r[i] = aa.w[i+wordShift]
		}
	} else {
		for i := 0; i < 15-wordShift; i++ {
			r[i] = (aa.w[i+wordShift] >> bitShift) | (aa.w[i+wordShift+1] << (32 - bitShift))
		}
		r[15-wordShift] = aa.w[15] >> bitShift
	}
	w.w = r
}

func (w *wideElem) sub(a, b *wideElem) {
	aa, bb := *a, *b
	var r [16]uint32
	var borrow uint32
	for i := 0; i < 16; i++ {
		diff := aa.w[i] - bb.w[i] - borrow
		if diff > aa.w[i] || (diff == aa.w[i] && bb.w[i] > 0) {
			borrow = 1
		} else {
			borrow = 0
		}
		r[i] = diff
	}
	w.w = r
}

// reduceWide reduces a 512-bit numerator modulo m using the same
// shift-and-subtract technique Mod uses on 256-bit values, generalized to
// double width. m must be non-zero and less than 2^256 (always true for a
// FieldElement).
func reduceWide(numerator [16]uint32, m *FieldElement) FieldElement {
	num := wideElem{w: numerator}
	mod := wideFromFieldElement(m)
	if num.cmp(&mod) < 0 {
		var out FieldElement
		copy(out.w[:], num.w[:8])
		return out
	}
	shift := mod.clz() - num.clz()
	var shifted wideElem
	shifted.shl(&mod, shift)
	for shift >= 0 {
		if num.cmp(&shifted) >= 0 {
			num.sub(&num, &shifted)
		}
		shifted.shr(&shifted, 1)
		shift--
	}
	var out FieldElement
	copy(out.w[:], num.w[:8])
	return out
}

// Div performs shift-and-subtract long division: q, r = n / d, n % d. If
// d is 0, both q and r are set to the all-ones sentinel (the library has
// no other error signal for division by zero). If n < d, q = 0 and r = n.
func Div(q, r, n, d *FieldElement) {
	dd := *d
	if dd.IsZero() {
		q.w = allOnesWords
		r.w = allOnesWords
		return
	}
	nn := *n
	if nn.Cmp(&dd) < 0 {
		q.SetZero()
		*r = nn
		return
	}
	rem := nn
	var quot FieldElement
	shift := dd.LeadingZeros() - rem.LeadingZeros()
	var shiftedD FieldElement
	shiftedD.Shl(&dd, shift)
	for shift >= 0 {
		if rem.Cmp(&shiftedD) >= 0 {
			rem.Sub(&rem, &shiftedD)
			word := shift / 32
			bit := uint(shift % 32)
			quot.w[word] |= 1 << bit
		}
		shiftedD.Shr(&shiftedD, 1)
		shift--
	}
	*q = quot
	*r = rem
}

// Mod sets e = a mod m. m must be non-zero; a is treated as unsigned.
func (e *FieldElement) Mod(a, m *FieldElement) *FieldElement {
	aa, mm := *a, *m
	if aa.Cmp(&mm) < 0 {
		*e = aa
		return e
	}
	shift := 0
	shiftedMod := mm
	for shiftedMod.LeadingZeros() > 0 {
		var next FieldElement
		next.Shl(&shiftedMod, 1)
		if next.Cmp(&aa) > 0 {
			break
		}
		shiftedMod = next
		shift++
	}
	for shift >= 0 {
		if aa.Cmp(&shiftedMod) >= 0 {
			aa.Sub(&aa, &shiftedMod)
		}
		shiftedMod.Shr(&shiftedMod, 1)
		shift--
	}
	*e = aa
	return e
}

// ModAdd sets e = (a + b) mod m.
func (e *FieldElement) ModAdd(a, b, m *FieldElement) *FieldElement {
	var ra, rb, t FieldElement
	ra.Mod(a, m)
	rb.Mod(b, m)
	t.Add(&ra, &rb)
	// ra, rb < m, so one subtraction of m suffices, also when the sum
	// carried out of the top limb.
	if t.Cmp(&ra) < 0 || t.Cmp(m) >= 0 {
		t.Sub(&t, m)
	}
	*e = t
	return e
}

// ModSub sets e = (a - b) mod m.
func (e *FieldElement) ModSub(a, b, m *FieldElement) *FieldElement {
	var ra, rb, t FieldElement
	ra.Mod(a, m)
	rb.Mod(b, m)
	if ra.Cmp(&rb) >= 0 {
		return e.Sub(&ra, &rb)
	}
	t.Sub(&rb, &ra)
	return e.Sub(m, &t)
}

// ModMul sets e = (a * b) mod m. Unlike a bare Mul-then-Mod, this carries
// the full 512-bit product into the reduction, so it stays correct for
// any a, b < m rather than only for operands below 2^255.
func (e *FieldElement) ModMul(a, b, m *FieldElement) *FieldElement {
	wide := mulWide(a, b)
	*e = reduceWide(wide, m)
	return e
}

// ModPow runs a 4-bit fixed-window square-and-multiply over exp modulo m:
// starting from 1, for each nibble of exp, most significant first, it
// squares four times, then multiplies by base (not by base raised to the
// nibble's value) if the nibble is non-zero. The result therefore equals
// base^exp mod m only when every non-zero nibble of exp is 1; for example
// base 2 with exp 0xa gives 2. This is not a sliding window, so zero
// nibbles still cost four squarings. The curve layer never calls ModPow;
// it is exposed as a standalone utility.
func (e *FieldElement) ModPow(base, exp, m *FieldElement) *FieldElement {
	bb, ee, mm := *base, *exp, *m
	var acc FieldElement
	acc.SetUint32(1)
	for i := 7; i >= 0; i-- {
		word := ee.w[i]
		for j := 28; j >= 0; j -= 4 {
			for k := 0; k < 4; k++ {
				acc.ModMul(&acc, &acc, &mm)
			}
			if window := (word >> uint(j)) & 0xF; window != 0 {
				acc.ModMul(&acc, &bb, &mm)
			}
		}
	}
	*e = acc
	return e
}

// ModInverse sets e to the multiplicative inverse of a modulo the curve
// prime P, via the extended Euclidean algorithm over the classical
// (r, old_r, s, old_s, t, old_t) recurrence. If a is 0, e is set to 0.
// This routine is the one place a FieldElement is interpreted as a
// signed two's-complement value: it relies on IsNegative and on Sub
// producing a representable negative on underflow.
func (e *FieldElement) ModInverse(a *FieldElement) *FieldElement {
	if a.IsZero() {
		return e.SetZero()
	}
	var reducedA FieldElement
	reducedA.Mod(a, &P)
	if reducedA.IsZero() {
		return e.SetZero()
	}

	r := P
	oldR := reducedA
	var s, oldS, t, oldT FieldElement
	oldS.SetUint32(1)

	for !r.IsZero() {
		tempR, tempS, tempT := r, s, t

		var quotient, remainder FieldElement
		Div(&quotient, &remainder, &oldR, &r)

		r = remainder
		oldR = tempR

		var tmp FieldElement
		tmp.Mul(&quotient, &s)
		s.Sub(&oldS, &tmp)
		oldS = tempS

		tmp.Mul(&quotient, &t)
		t.Sub(&oldT, &tmp)
		oldT = tempT
	}

	// |oldS| <= P/2 < 2^255 here, so bit 255 marks a negative value and a
	// single addition of P brings it into [0, P).
	if oldS.IsNegative() {
		oldS.Add(&oldS, &P)
	}
	for oldS.Cmp(&P) >= 0 {
		oldS.Sub(&oldS, &P)
	}

	var check, one FieldElement
	check.ModMul(&reducedA, &oldS, &P)
	one.SetUint32(1)
	if !check.Equal(&one) {
		return e.SetZero()
	}
	*e = oldS
	return e
}
