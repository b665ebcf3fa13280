package p256ff

import (
	"strings"
	"testing"
)

func feFromHex(s string) FieldElement {
	var e FieldElement
	e.SetHex(s)
	return e
}

func TestFieldElementBasics(t *testing.T) {
	var zero FieldElement
	if !zero.IsZero() {
		t.Error("zero value should be zero")
	}

	var one FieldElement
	one.SetUint32(1)
	if one.IsZero() {
		t.Error("one should not be zero")
	}

	var one2 FieldElement
	one2.SetUint32(1)
	if !one.Equal(&one2) {
		t.Error("two FieldElements set to 1 should be equal")
	}
}

func TestFieldElementHexRoundTrip(t *testing.T) {
	cases := []string{
		strings.Repeat("0", 64),
		"ffffffff00000001000000000000000000000000ffffffffffffffffffffffff",
		"6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296",
	}
	for _, s := range cases {
		t.Run(s, func(t *testing.T) {
			e := feFromHex(s)
			if got := e.Hex(); got != s {
				t.Errorf("round trip: got %s, want %s", got, s)
			}
		})
	}
}

func TestFieldElementFromHexPermissive(t *testing.T) {
	e := feFromHex("0x1")
	var want FieldElement
	want.SetUint32(1)
	if !e.Equal(&want) {
		t.Errorf("non-hex prefix should be skipped: got %s", e.Hex())
	}

	long := feFromHex("ff" + "ffffffff00000001000000000000000000000000ffffffffffffffffffffffff")
	var wantLong FieldElement
	wantLong.SetHex("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff")
	if !long.Equal(&wantLong) {
		t.Errorf("over-length input should discard high nibbles: got %s", long.Hex())
	}
}

func TestFieldElementCmp(t *testing.T) {
	a := feFromHex("1")
	b := feFromHex("2")
	if a.Cmp(&b) >= 0 {
		t.Error("1 should compare less than 2")
	}
	if b.Cmp(&a) <= 0 {
		t.Error("2 should compare greater than 1")
	}
	if a.Cmp(&a) != 0 {
		t.Error("a value should compare equal to itself")
	}
}

func TestFieldElementShiftRoundTrip(t *testing.T) {
	a := feFromHex("deadbeef")
	for k := 0; k <= 32; k++ {
		var shifted, back FieldElement
		shifted.Shl(&a, k)
		back.Shr(&shifted, k)
		if !back.Equal(&a) {
			t.Errorf("shr(shl(a,%d),%d) != a", k, k)
		}
	}
}

func TestFieldElementShiftBounds(t *testing.T) {
	a := feFromHex("1")
	var out FieldElement
	out.Shl(&a, 256)
	if !out.IsZero() {
		t.Error("shl by >= 256 should yield zero")
	}
	out.Shr(&a, 256)
	if !out.IsZero() {
		t.Error("shr by >= 256 should yield zero")
	}
	out.Shl(&a, -1)
	if !out.IsZero() {
		t.Error("shl by negative n should yield zero")
	}
}

func TestFieldElementLeadingZeros(t *testing.T) {
	var zero FieldElement
	if zero.LeadingZeros() != 256 {
		t.Errorf("clz(0) = %d, want 256", zero.LeadingZeros())
	}
	one := feFromHex("1")
	if one.LeadingZeros() != 255 {
		t.Errorf("clz(1) = %d, want 255", one.LeadingZeros())
	}
}

// Concrete scenario from spec section 8, item 1.
func TestFieldElementMulVector(t *testing.T) {
	a := feFromHex("deadbeef")
	b := feFromHex("cafebabe")
	var got FieldElement
	got.Mul(&a, &b)
	want := feFromHex("b092ab7b88cf5b62")
	if !got.Equal(&want) {
		t.Errorf("deadbeef*cafebabe = %s, want %s", got.Hex(), want.Hex())
	}
}

// Concrete scenario from spec section 8, item 2.
func TestFieldElementAddVector(t *testing.T) {
	a := feFromHex("ffffffff")
	b := feFromHex("1")
	var got FieldElement
	got.Add(&a, &b)
	want := feFromHex("100000000")
	if !got.Equal(&want) {
		t.Errorf("ffffffff+1 = %s, want %s", got.Hex(), want.Hex())
	}
}

func TestFieldElementMulCommutative(t *testing.T) {
	a := feFromHex("123456789abcdef0")
	b := feFromHex("fedcba9876543210")
	var ab, ba FieldElement
	ab.Mul(&a, &b)
	ba.Mul(&b, &a)
	if !ab.Equal(&ba) {
		t.Error("mul should be commutative")
	}
}

func TestFieldElementSubSelfIsZero(t *testing.T) {
	a := feFromHex("deadbeefcafebabe")
	var got FieldElement
	got.Sub(&a, &a)
	if !got.IsZero() {
		t.Error("sub(a,a) should be zero")
	}
}

func TestFieldElementAddSubNegation(t *testing.T) {
	a := feFromHex("deadbeefcafebabe")
	var zero, negA, got FieldElement
	negA.Sub(&zero, &a)
	got.Add(&a, &negA)
	if !got.IsZero() {
		t.Error("add(a, sub(0,a)) should be zero mod 2^256")
	}
}

func TestDivByZeroSentinel(t *testing.T) {
	n := feFromHex("1234")
	var zero, q, r FieldElement
	Div(&q, &r, &n, &zero)
	var allOnes FieldElement
	allOnes.w = allOnesWords
	if !q.Equal(&allOnes) || !r.Equal(&allOnes) {
		t.Error("division by zero should set both outputs to all-ones")
	}
}

func TestDivNLessThanD(t *testing.T) {
	n := feFromHex("5")
	d := feFromHex("a")
	var q, r FieldElement
	Div(&q, &r, &n, &d)
	if !q.IsZero() {
		t.Error("n < d should yield q = 0")
	}
	if !r.Equal(&n) {
		t.Error("n < d should yield r = n")
	}
}

func TestDivIdentity(t *testing.T) {
	cases := []struct{ n, d string }{
		{"123456789abcdef0", "12345"},
		{"ffffffffffffffffffffffffffffffff", "3"},
		{"deadbeefcafebabe1234567890abcdef", "100000001"},
	}
	for _, c := range cases {
		t.Run(c.n+"_"+c.d, func(t *testing.T) {
			n := feFromHex(c.n)
			d := feFromHex(c.d)
			var q, r FieldElement
			Div(&q, &r, &n, &d)

			if r.Cmp(&d) >= 0 {
				t.Fatalf("remainder %s not less than divisor %s", r.Hex(), d.Hex())
			}
			var reconstructed, prod FieldElement
			prod.Mul(&d, &q)
			reconstructed.Add(&prod, &r)
			if !reconstructed.Equal(&n) {
				t.Errorf("d*q+r = %s, want n = %s", reconstructed.Hex(), n.Hex())
			}
		})
	}
}

// Concrete scenario from spec section 8, item 3.
func TestModAddVector(t *testing.T) {
	a := feFromHex("15") // 21
	b := feFromHex("14") // 20
	m := feFromHex("17") // 23
	var got FieldElement
	got.ModAdd(&a, &b, &m)
	want := feFromHex("12") // 18
	if !got.Equal(&want) {
		t.Errorf("(21+20) mod 23 = %s, want %s", got.Hex(), want.Hex())
	}
}

// Concrete scenario from spec section 8, item 4.
func TestModSubVector(t *testing.T) {
	a := feFromHex("5")
	b := feFromHex("8")
	m := feFromHex("17") // 23
	var got FieldElement
	got.ModSub(&a, &b, &m)
	want := feFromHex("14") // 20
	if !got.Equal(&want) {
		t.Errorf("(5-8) mod 23 = %s, want %s", got.Hex(), want.Hex())
	}
}

func TestModMulSmall(t *testing.T) {
	a := feFromHex("4")
	b := feFromHex("5")
	m := feFromHex("17") // 23
	var got FieldElement
	got.ModMul(&a, &b, &m)
	want := feFromHex("14") // 20
	if !got.Equal(&want) {
		t.Errorf("4*5 mod 23 = %s, want %s", got.Hex(), want.Hex())
	}
}

// ModMul must stay correct for operands near the modulus, not just small
// ones; this is the spec's Open Question about mod_mul truncation. Using
// P itself (close to 2^256) exercises the full-width product path.
func TestModMulNearModulus(t *testing.T) {
	a := feFromHex("ffffffff00000001000000000000000000000000fffffffffffffffffffffffe")
	b := feFromHex("ffffffff00000001000000000000000000000000fffffffffffffffffffffffd")
	var got FieldElement
	got.ModMul(&a, &b, &P)

	// (p-1)*(p-2) mod p = 2, independent of overflow handling.
	want := feFromHex("2")
	if !got.Equal(&want) {
		t.Errorf("(p-1)*(p-2) mod p = %s, want %s", got.Hex(), want.Hex())
	}
}

func TestModMulCommutative(t *testing.T) {
	a := feFromHex("123456789abcdef0123456789abcdef0")
	b := feFromHex("fedcba9876543210fedcba9876543210")
	var ab, ba FieldElement
	ab.ModMul(&a, &b, &P)
	ba.ModMul(&b, &a, &P)
	if !ab.Equal(&ba) {
		t.Error("mod_mul should be commutative")
	}
}

func TestModPowBasic(t *testing.T) {
	base := feFromHex("2")
	exp := feFromHex("a") // 10
	m := feFromHex("d")   // 13
	var got FieldElement
	got.ModPow(&base, &exp, &m)
	// exp's only non-zero nibble (the low one, value 0xa) triggers a
	// single multiply-by-base per the spec's fixed 4-bit-window ModPow,
	// not base^window, so this is not the mathematical 2^10 mod 13.
	want := feFromHex("2")
	if !got.Equal(&want) {
		t.Errorf("2^10 mod 13 (fixed-window) = %s, want %s", got.Hex(), want.Hex())
	}
}

func TestModInverseRoundTrip(t *testing.T) {
	cases := []string{"1", "2", "deadbeef", "123456789abcdef0123456789abcdef"}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			a := feFromHex(c)
			var inv, invInv FieldElement
			inv.ModInverse(&a)
			invInv.ModInverse(&inv)
			var reducedA FieldElement
			reducedA.Mod(&a, &P)
			if !invInv.Equal(&reducedA) {
				t.Errorf("mod_inv(mod_inv(a)) = %s, want %s", invInv.Hex(), reducedA.Hex())
			}
		})
	}
}

func TestModInverseProduct(t *testing.T) {
	cases := []string{"1", "2", "3", "deadbeefcafebabe"}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			a := feFromHex(c)
			var inv, product FieldElement
			inv.ModInverse(&a)
			product.ModMul(&a, &inv, &P)
			one := feFromHex("1")
			if !product.Equal(&one) {
				t.Errorf("a*mod_inv(a) mod p = %s, want 1", product.Hex())
			}
		})
	}
}

func TestModInverseOfZero(t *testing.T) {
	var zero, got FieldElement
	got.ModInverse(&zero)
	if !got.IsZero() {
		t.Error("mod_inv(0) should be 0")
	}
}
