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

// Real represents an exact real number (or, more generally, a real interval)
// as an open-ended sequence of dyadic approximations indexed by requested
// binary precision.  A Real is immutable once constructed: querying it at a
// higher precision triggers re-derivation of a finer enclosure, never
// mutation of an existing one.  Every enclosure returned by Appr contains the
// mathematically exact value, and for point values (as opposed to genuine
// intervals) successive enclosures satisfy the Cauchy criterion checked by
// the check package.
//
// Evaluation is synchronous and recursion driven.  Values are not safe for
// concurrent use: the per-value memo of the finest enclosure computed so far
// is updated without locking.
type Real struct {
	appr func(precision uint) Approximation
	memo *bestApproximation
}

// bestApproximation caches the finest enclosure computed so far, from which
// all coarser enclosures can be derived by outward rounding.
type bestApproximation struct {
	valid bool
	appr  Approximation
}

func newReal(appr func(uint) Approximation) Real {
	return Real{appr, &bestApproximation{}}
}

// Appr computes an enclosure of this value at a given binary precision.
// Results are memoized: once a precision has been reached, coarser queries
// are answered by outward rounding of the finest known enclosure.
func (x Real) Appr(precision uint) Approximation {
	if x.appr == nil {
		panic("uninitialised real")
	}
	//
	if x.memo.valid && x.memo.appr.precision >= precision {
		return x.memo.appr.At(precision)
	}
	//
	a := x.appr(precision)
	// normalise to the requested precision
	if a.precision != precision {
		a = a.At(precision)
	}
	//
	x.memo.appr = a
	x.memo.valid = true
	//
	return a
}

// FromInt constructs the exact real denoting a given integer.
func FromInt(val big.Int) Real {
	var v big.Int
	//
	v.Set(&val)
	//
	return newReal(func(p uint) Approximation {
		var bound big.Int
		//
		bound.Lsh(&v, p)
		//
		return NewApproximation(bound, bound, p)
	})
}

// FromInt64 constructs the exact real denoting a given integer.
func FromInt64(val int64) Real {
	return FromInt(*big.NewInt(val))
}

// FromBigRat constructs the exact real denoting a given rational.
func FromBigRat(val *big.Rat) Real {
	var (
		num big.Int
		den big.Int
	)
	//
	num.Set(val.Num())
	den.Set(val.Denom())
	//
	return newReal(func(p uint) Approximation {
		var lower, upper, rem big.Int
		//
		lower.Lsh(&num, p)
		lower.QuoRem(&lower, &den, &rem)
		// Quo truncates towards zero; adjust to floor for negatives.
		if rem.Sign() < 0 {
			lower.Sub(&lower, big.NewInt(1))
		}
		//
		upper.Set(&lower)
		// Dyadic rationals resolve exactly; everything else takes one ulp.
		if rem.Sign() != 0 {
			upper.Add(&upper, big.NewInt(1))
		}
		//
		return NewApproximation(lower, upper, p)
	})
}

// FromRat constructs the exact real denoting num/den.
func FromRat(num int64, den int64) Real {
	return FromBigRat(big.NewRat(num, den))
}

// FromFunc constructs a real from an integer approximation function.  The
// function must satisfy |f(p) - x*2^p| <= 1 for the value x it denotes; the
// resulting enclosure at precision p is then [f(p)-1, f(p)+1].
func FromFunc(f func(precision uint) *big.Int) Real {
	return newReal(func(p uint) Approximation {
		var lower, upper big.Int
		//
		v := f(p)
		lower.Sub(v, big.NewInt(1))
		upper.Add(v, big.NewInt(1))
		//
		return NewApproximation(lower, upper, p)
	})
}

// FromApproximation constructs the real interval denoted by a fixed
// enclosure.  This is the rounding operator used by the rounded package: the
// resulting value answers every precision query by rescaling the snapshot,
// so its representation never grows with expression depth.
func FromApproximation(a Approximation) Real {
	return newReal(func(p uint) Approximation {
		return a.At(p)
	})
}

// Digit is a signed binary digit, as used in signed-digit fractional
// expansions.  A stream of digits d(0), d(1), ... denotes the fraction
// sum of d(i) * 2^-(i+1), which lies in [-1, 1].
type Digit int8

// The three signed binary digits.
const (
	Minus Digit = -1
	Zero  Digit = 0
	Plus  Digit = 1
)

// DigitStream is a restartable source of signed binary digits.  It must be a
// pure function of its index: re-reading any position yields the same digit.
type DigitStream func(index uint) Digit

// FromDigits constructs the exact real whole + 0.d(0)d(1)..., where the
// fractional part is the signed-digit expansion produced by the given stream.
func FromDigits(whole int64, digits DigitStream) Real {
	return newReal(func(p uint) Approximation {
		var lower, upper big.Int
		// Fold p digits: acc' = 2*acc + d
		acc := expandDigits(digits, big.NewInt(whole), p)
		// The unread tail contributes at most one ulp either way.
		lower.Sub(acc, big.NewInt(1))
		upper.Add(acc, big.NewInt(1))
		//
		return NewApproximation(lower, upper, p)
	})
}

// expandDigits folds a finite prefix of a digit stream into a dyadic integer
// approximation, using the recurrence acc' = 2*acc + d per digit.
func expandDigits(digits DigitStream, acc *big.Int, n uint) *big.Int {
	var val big.Int
	//
	val.Set(acc)
	//
	for i := uint(0); i < n; i++ {
		val.Lsh(&val, 1)
		val.Add(&val, big.NewInt(int64(digits(i))))
	}
	//
	return &val
}

// Scale multiplies this value by 2^n exactly.  Scaling shifts the binary
// representation and never loses precision.
func (x Real) Scale(n int) Real {
	return newReal(func(p uint) Approximation {
		q := int(p) + n
		//
		if q >= 0 {
			// y*2^p = x*2^q, so the bounds at precision q carry over.
			a := x.Appr(uint(q))
			return NewApproximation(a.lower, a.upper, p)
		}
		// Requested precision is coarser than the shift; evaluate at
		// precision zero and round outwards.
		a := x.Appr(0)
		//
		var lower, upper big.Int
		//
		lower.Set(&a.lower)
		floorShift(&lower, uint(-q))
		upper.Set(&a.upper)
		ceilShift(&upper, uint(-q))
		//
		return NewApproximation(lower, upper, p)
	})
}

// BitsForDigits returns the binary precision required to resolve a given
// number of decimal digits, with a small guard.  Uses 10/3 as an upper bound
// on log2(10).
func BitsForDigits(digits uint) uint {
	return 4 + (digits*10)/3
}
