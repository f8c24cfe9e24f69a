// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package gen

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-ireal/pkg/ireal"
)

func Test_Gen_Expand(t *testing.T) {
	stream := streamOf(ireal.Plus, ireal.Minus, ireal.Zero, ireal.Plus)
	// 2 -> 5 -> 9 -> 18 -> 37
	val := Expand(stream, big.NewInt(2), 4)
	//
	if val.Cmp(big.NewInt(37)) != 0 {
		t.Errorf("expansion == %s, expected 37", val.String())
	}
}

func Test_Gen_Fraction_Restartable(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	stream := Fraction(rng)
	//
	var first [32]ireal.Digit
	//
	for i := uint(0); i < 32; i++ {
		first[i] = stream(i)
	}
	// re-reading must reproduce the same digits
	for i := uint(0); i < 32; i++ {
		if stream(i) != first[i] {
			t.Fatalf("digit %d changed on re-read", i)
		}
	}
}

func Test_Gen_Fraction_Range(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 0))
	//
	for n := 0; n < 10; n++ {
		x := ireal.FromDigits(0, Fraction(rng))
		a := x.Appr(6)
		// a fraction lies in [-1, 1], so bounds stay within one ulp of that
		l, u := a.LowerBound(), a.UpperBound()
		//
		if l.Cmp(big.NewInt(-65)) < 0 || u.Cmp(big.NewInt(65)) > 0 {
			t.Errorf("fraction out of range: %s", a.String())
		}
	}
}

func Test_Gen_PosFraction(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	//
	for n := 0; n < 10; n++ {
		stream := PosFraction(rng)
		k := leadingZeros(stream)
		// folding 50 digits of 0^k 1^... yields 2^(50-k) - 1
		var expected big.Int
		//
		expected.Lsh(big.NewInt(1), 50-k)
		expected.Sub(&expected, big.NewInt(1))
		//
		if val := Expand(stream, big.NewInt(0), 50); val.Cmp(&expected) != 0 {
			t.Errorf("expansion == %s, expected %s", val.String(), expected.String())
		}
	}
}

func Test_Gen_NegFraction(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	stream := NegFraction(rng)
	k := leadingZeros(stream)
	//
	var expected big.Int
	//
	expected.Lsh(big.NewInt(1), 50-k)
	expected.Sub(&expected, big.NewInt(1))
	expected.Neg(&expected)
	//
	if val := Expand(stream, big.NewInt(0), 50); val.Cmp(&expected) != 0 {
		t.Errorf("expansion == %s, expected %s", val.String(), expected.String())
	}
}

func Test_Gen_UniformReal_1(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 0))
	// a degenerate range always yields its sole member, exactly
	x := UniformReal(rng, 5, 5)
	a := x.Appr(10)
	//
	l, u := a.LowerBound(), a.UpperBound()
	//
	if l.Cmp(big.NewInt(5<<10)) != 0 || u.Cmp(big.NewInt(5<<10)) != 0 {
		t.Errorf("degenerate range produced %s", a.String())
	}
}

func Test_Gen_UniformReal_2(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 0))
	//
	for n := 0; n < 20; n++ {
		x := UniformReal(rng, -3, 7)
		a := x.Appr(8)
		// bounds stay within one ulp of the requested range
		l, u := a.LowerBound(), a.UpperBound()
		//
		if l.Cmp(big.NewInt(-3<<8-2)) < 0 || u.Cmp(big.NewInt(7<<8+2)) > 0 {
			t.Errorf("value out of range: %s", a.String())
		}
	}
}

func Test_Gen_UniformReal_3(t *testing.T) {
	checkGenPanics(t, func() {
		rng := rand.New(rand.NewPCG(5, 0))
		UniformReal(rng, 1, 0)
	})
}

func Test_Gen_UniformInterval(t *testing.T) {
	rng := rand.New(rand.NewPCG(6, 0))
	//
	for n := 0; n < 10; n++ {
		x := UniformInterval(rng, -8, 8)
		a := x.Appr(8)
		// midpoint in [-8, 8] and radius at most one, plus enclosure slack
		l, u := a.LowerBound(), a.UpperBound()
		//
		if l.Cmp(big.NewInt(-10<<8)) < 0 || u.Cmp(big.NewInt(10<<8)) > 0 {
			t.Errorf("interval out of range: %s", a.String())
		}
		// endpoints must be correctly ordered
		if !x.Lower().LessAt(x.Upper(), 20) {
			t.Errorf("interval endpoints out of order")
		}
	}
}

func Test_Gen_ExpressionTree(t *testing.T) {
	rng := rand.New(rand.NewPCG(8, 0))
	leaf := func(r *rand.Rand) ireal.Real {
		return UniformReal(r, 0, 1)
	}
	//
	for n := 0; n < 4; n++ {
		x := ExpressionTree(rng, leaf)
		// enclosures at increasing precision both contain the value, so
		// they must overlap
		a := x.Appr(10)
		fine := x.Appr(40)
		b := fine.At(10)
		//
		if overlap := a.Intersect(b); overlap.IsEmpty() {
			t.Errorf("enclosures %s and %s are disjoint", a.String(), b.String())
		}
	}
}

func Test_Gen_ExpressionTree_Widths(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 0))
	leaf := func(r *rand.Rand) ireal.Real {
		return UniformReal(r, 0, 1)
	}
	// roughly 10, 50 and 100 decimal digits
	precisions := []uint{34, 167, 334}
	//
	for n := 0; n < 12; n++ {
		x := ExpressionTree(rng, leaf)
		//
		var prev big.Int
		//
		for i, p := range precisions {
			a := x.Appr(p)
			width := a.Width()
			// scaled widths never grow: w * 2^-p <= w' * 2^-p', checked
			// by cross multiplication
			if i > 0 {
				var lhs, rhs big.Int
				//
				lhs.Lsh(&width, precisions[i-1])
				rhs.Lsh(&prev, p)
				//
				if lhs.Cmp(&rhs) > 0 {
					t.Errorf("enclosure widened from %s ulp at %d bits to %s ulp at %d bits",
						prev.String(), precisions[i-1], width.String(), p)
				}
			}
			//
			prev.Set(&width)
		}
	}
}

// ===================================================================
// Helpers
// ===================================================================

func streamOf(digits ...ireal.Digit) ireal.DigitStream {
	return func(i uint) ireal.Digit {
		if i < uint(len(digits)) {
			return digits[i]
		}
		//
		return ireal.Zero
	}
}

func leadingZeros(stream ireal.DigitStream) uint {
	var k uint
	//
	for stream(k) == ireal.Zero {
		k++
	}
	//
	return k
}

func checkGenPanics(t *testing.T, fn func()) {
	t.Helper()
	//
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	//
	fn()
}
