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
package ireal

import (
	"math/big"
)

// Add returns the exact sum of two values.
func (x Real) Add(y Real) Real {
	return newReal(func(p uint) Approximation {
		// Two guard bits absorb the operand enclosure widths and the
		// outward rounding back to precision p.
		a := x.Appr(p + 2)
		b := y.Appr(p + 2)
		sum := a.Add(b)
		//
		return sum.At(p)
	})
}

// Sub returns the exact difference of two values.
func (x Real) Sub(y Real) Real {
	return x.Add(y.Neg())
}

// Neg returns the exact negation of this value.
func (x Real) Neg() Real {
	return newReal(func(p uint) Approximation {
		a := x.Appr(p)
		return a.Neg()
	})
}

// Mul returns the exact product of two values.
func (x Real) Mul(y Real) Real {
	return newReal(func(p uint) Approximation {
		// Operand precisions are padded by each other's magnitude so
		// that the product width stays below one ulp at precision p.
		ex := x.magnitudeBits()
		ey := y.magnitudeBits()
		s := p + ex + ey + 6
		//
		a := x.Appr(s)
		b := y.Appr(s)
		prod := a.Mul(b)
		//
		return prod.At(p)
	})
}

// Abs returns the exact absolute value of this value.
func (x Real) Abs() Real {
	return newReal(func(p uint) Approximation {
		a := x.Appr(p)
		//
		switch {
		case a.lower.Sign() >= 0:
			return a
		case a.upper.Sign() <= 0:
			return a.Neg()
		default:
			// Enclosure straddles zero.
			var lower, upper big.Int
			//
			neg := a.Neg()
			upper.Set(maxInt(&neg.upper, &a.upper))
			//
			return NewApproximation(lower, upper, p)
		}
	})
}

// Signum returns the exact sign of this value as a real (-1, 0 or +1).  Note
// that determining the sign of a value which is exactly zero does not
// terminate, since no finite enclosure can exclude both signs.
func (x Real) Signum() Real {
	return FromInt64(int64(x.Sign()))
}

// Recip returns the exact reciprocal of this value.  The operand is refined
// until its enclosure excludes zero; for a value which is exactly zero this
// does not terminate.
func (x Real) Recip() Real {
	return newReal(func(p uint) Approximation {
		// Refine until the enclosure is bounded away from zero.
		q, a := x.refineNonZero()
		// |x| >= 2^-e
		low := minInt(absVal(&a.lower), absVal(&a.upper))
		e := int(q) - (low.BitLen() - 1)
		// Values of magnitude one or above need no extra padding.
		if e < 0 {
			e = 0
		}
		// Padding by 2e keeps the reciprocal width below one ulp.
		s := p + 2*uint(e) + 6
		b := x.Appr(s)
		//
		var lower, upper, unit big.Int
		// 1/(v*2^-s) at precision p is 2^(p+s)/v.
		unit.Lsh(big.NewInt(1), p+s)
		floorDiv(&lower, &unit, &b.upper)
		ceilDiv(&upper, &unit, &b.lower)
		//
		return NewApproximation(lower, upper, p)
	})
}

// Div returns the exact quotient of two values.  As with Recip, a divisor
// which is exactly zero causes divergence.
func (x Real) Div(y Real) Real {
	return x.Mul(y.Recip())
}

// Hull returns the smallest interval containing all of the given values.
func Hull(values ...Real) Real {
	if len(values) == 0 {
		panic("hull of no values")
	}
	//
	return newReal(func(p uint) Approximation {
		a := values[0].Appr(p)
		//
		for _, v := range values[1:] {
			b := v.Appr(p)
			a = a.Union(b)
		}
		//
		return a
	})
}

// magnitudeBits returns e such that |x| <= 2^e, determined from a coarse
// enclosure.  The result is never negative.
func (x Real) magnitudeBits() uint {
	a := x.Appr(4)
	//
	m := maxInt(absVal(&a.lower), absVal(&a.upper))
	bits := m.BitLen()
	// m ulp at precision 4 is at most 2^(bits-4).
	if bits <= 4 {
		return 0
	}
	//
	return uint(bits - 4)
}

// refineNonZero refines this value until its enclosure excludes zero,
// returning the precision reached and the enclosure found.  Diverges when the
// value is exactly zero.
func (x Real) refineNonZero() (uint, Approximation) {
	for q := uint(8); ; q *= 2 {
		a := x.Appr(q)
		//
		if a.lower.Sign() > 0 || a.upper.Sign() < 0 {
			return q, a
		}
		//
		warnSlowRefinement("separating enclosure from zero", q)
	}
}

func absVal(v *big.Int) *big.Int {
	var a big.Int
	//
	a.Abs(v)
	//
	return &a
}

// floorDiv sets res to num/den rounded towards negative infinity.
func floorDiv(res *big.Int, num *big.Int, den *big.Int) {
	var rem big.Int
	//
	res.QuoRem(num, den, &rem)
	// Quo truncates towards zero; adjust when signs disagree.
	if rem.Sign() != 0 && (rem.Sign() < 0) != (den.Sign() < 0) {
		res.Sub(res, big.NewInt(1))
	}
}

// ceilDiv sets res to num/den rounded towards positive infinity.
func ceilDiv(res *big.Int, num *big.Int, den *big.Int) {
	var rem big.Int
	//
	res.QuoRem(num, den, &rem)
	//
	if rem.Sign() != 0 && (rem.Sign() < 0) == (den.Sign() < 0) {
		res.Add(res, big.NewInt(1))
	}
}
