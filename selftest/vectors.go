// Package selftest runs the known-answer vectors from the core library's
// specification against p256ff.dev and reports on the run. It is the
// "external collaborator" the core's test-driver contract describes: the
// core itself has no CLI, no logging, and no notion of a report.
package selftest

import (
	"errors"
	"fmt"

	"p256ff.dev"
)

// Vector is a single named assertion run by Run. Name identifies the
// vector in a report; Check performs the assertion and returns an error
// describing the failure, or nil on success.
type Vector struct {
	Name  string
	Check func() error
}

func hex(s string) p256ff.FieldElement {
	var e p256ff.FieldElement
	e.SetHex(s)
	return e
}

// Vectors returns the fixed set of known-answer vectors drawn from the
// core specification's testable-properties and concrete-scenario lists.
func Vectors() []Vector {
	return []Vector{
		{"mul_deadbeef_cafebabe", func() error {
			a, b := hex("deadbeef"), hex("cafebabe")
			want := hex("b092ab7b88cf5b62")
			var got p256ff.FieldElement
			got.Mul(&a, &b)
			if !got.Equal(&want) {
				return fmt.Errorf("deadbeef*cafebabe = %s, want %s", got.Hex(), want.Hex())
			}
			return nil
		}},
		{"add_overflow_limb", func() error {
			a, b := hex("ffffffff"), hex("1")
			want := hex("100000000")
			var got p256ff.FieldElement
			got.Add(&a, &b)
			if !got.Equal(&want) {
				return fmt.Errorf("ffffffff+1 = %s, want %s", got.Hex(), want.Hex())
			}
			return nil
		}},
		{"mod_add_21_20_mod_23", func() error {
			a, b, m := hex("15"), hex("14"), hex("17")
			want := hex("12")
			var got p256ff.FieldElement
			got.ModAdd(&a, &b, &m)
			if !got.Equal(&want) {
				return fmt.Errorf("(21+20) mod 23 = %s, want %s", got.Hex(), want.Hex())
			}
			return nil
		}},
		{"mod_sub_5_8_mod_23", func() error {
			a, b, m := hex("5"), hex("8"), hex("17")
			want := hex("14")
			var got p256ff.FieldElement
			got.ModSub(&a, &b, &m)
			if !got.Equal(&want) {
				return fmt.Errorf("(5-8) mod 23 = %s, want %s", got.Hex(), want.Hex())
			}
			return nil
		}},
		{"scalar_mul_2G", func() error {
			two := hex("2")
			wantX := hex("7cf27b188d034f7e8a52380304b51ac3c08969e277f21b35a60b48fc47669978")
			wantY := hex("07775510db8ed040293d9ac69f7430dbba7dade63ce982299e04b79d227873d1")
			var got p256ff.Point
			got.ScalarMul(&p256ff.G, &two)
			gotX, gotY := got.X(), got.Y()
			if !gotX.Equal(&wantX) || !gotY.Equal(&wantY) {
				return fmt.Errorf("2G = (%s, %s), want (%s, %s)", gotX.Hex(), gotY.Hex(), wantX.Hex(), wantY.Hex())
			}
			return nil
		}},
		{"scalar_mul_nG_is_infinity", func() error {
			var got p256ff.Point
			got.ScalarMul(&p256ff.G, &p256ff.N)
			if !got.IsInfinity() {
				return errors.New("n*G should be infinity")
			}
			return nil
		}},
		{"generator_on_curve", func() error {
			if !p256ff.G.IsOnCurve() {
				return errors.New("generator does not satisfy the curve equation")
			}
			return nil
		}},
		{"mod_inv_roundtrip", func() error {
			a := hex("deadbeefcafebabe")
			var inv, invInv p256ff.FieldElement
			inv.ModInverse(&a)
			invInv.ModInverse(&inv)
			var reducedA p256ff.FieldElement
			reducedA.Mod(&a, &p256ff.P)
			if !invInv.Equal(&reducedA) {
				return fmt.Errorf("mod_inv(mod_inv(a)) = %s, want %s", invInv.Hex(), reducedA.Hex())
			}
			return nil
		}},
		{"random_scalar_determinism", func() error {
			r1 := p256ff.NewRand(0xbad5eed)
			r2 := p256ff.NewRand(0xbad5eed)
			var s1, s2 p256ff.FieldElement
			r1.Scalar(&s1)
			r2.Scalar(&s2)
			if !s1.Equal(&s2) {
				return errors.New("fixed-seed PRNG streams diverged")
			}
			return nil
		}},
	}
}

// Result is the outcome of running one Vector.
type Result struct {
	Name string
	Err  error
}

// Run executes every vector and returns one Result per vector, in order.
func Run() []Result {
	vectors := Vectors()
	results := make([]Result, len(vectors))
	for i, v := range vectors {
		results[i] = Result{Name: v.Name, Err: v.Check()}
	}
	return results
}
