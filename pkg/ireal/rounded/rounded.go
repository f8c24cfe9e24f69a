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

// Package rounded provides a fixed-precision wrapper around exact reals.
// Every operation on a Rounded value computes in the unconstrained core and
// then normalises ("rounds") the result back to the precision fixed by the
// type's tag.  The result is still a valid enclosure of the mathematically
// exact value, but one which accumulates a bounded rounding error at every
// node of an expression tree.  The tradeoff runs opposite to the core: deep
// expressions lose accuracy linearly with depth, in exchange for every
// intermediate representation staying a fixed-size snapshot rather than a
// closure tree that re-derives the whole expression on each query.
package rounded

import (
	"math/big"

	"github.com/consensys/go-ireal/pkg/ireal"
	"github.com/consensys/go-ireal/pkg/util"
)

// Rounded wraps a single real value normalised to the precision fixed by the
// tag P.  The wrapped value is always the image of some real under the
// precision-P rounding operator, never a raw arithmetic result.
type Rounded[P Precision] struct {
	val ireal.Real
}

// Round normalises a real to the wrapper precision.  Unlike open-ended
// queries on the core, this always terminates: the precision target is fixed
// and finite.
func Round[P Precision](x ireal.Real) Rounded[P] {
	a := x.Appr(bitsOf[P]())
	//
	return Rounded[P]{ireal.FromApproximation(a)}
}

// Unwrap returns the wrapped (rounded) real value.
func (x Rounded[P]) Unwrap() ireal.Real {
	return x.val
}

// FromInt64 constructs a rounded value from an integer.
func FromInt64[P Precision](val int64) Rounded[P] {
	return Round[P](ireal.FromInt64(val))
}

// FromRat constructs a rounded value from a rational.
func FromRat[P Precision](val *big.Rat) Rounded[P] {
	return Round[P](ireal.FromBigRat(val))
}

// FromEndpoints constructs a rounded interval spanning two rational
// endpoints.
func FromEndpoints[P Precision](lower *big.Rat, upper *big.Rat) Rounded[P] {
	return Round[P](ireal.FromEndpoints(lower, upper))
}

// Pi returns the circle constant at the wrapper precision.
func Pi[P Precision]() Rounded[P] {
	return Round[P](ireal.Pi())
}

// Add computes the sum, rounded to the wrapper precision.
func (x Rounded[P]) Add(y Rounded[P]) Rounded[P] {
	return Round[P](x.val.Add(y.val))
}

// Sub computes the difference, rounded to the wrapper precision.
func (x Rounded[P]) Sub(y Rounded[P]) Rounded[P] {
	return Round[P](x.val.Sub(y.val))
}

// Mul computes the product, rounded to the wrapper precision.
func (x Rounded[P]) Mul(y Rounded[P]) Rounded[P] {
	return Round[P](x.val.Mul(y.val))
}

// Div computes the quotient, rounded to the wrapper precision.
func (x Rounded[P]) Div(y Rounded[P]) Rounded[P] {
	return Round[P](x.val.Div(y.val))
}

// Neg computes the negation, rounded to the wrapper precision.
func (x Rounded[P]) Neg() Rounded[P] {
	return Round[P](x.val.Neg())
}

// Abs computes the absolute value, rounded to the wrapper precision.
func (x Rounded[P]) Abs() Rounded[P] {
	return Round[P](x.val.Abs())
}

// Signum computes the sign, rounded to the wrapper precision.  As in the
// core, the sign of an exact zero cannot be determined.
func (x Rounded[P]) Signum() Rounded[P] {
	return Round[P](x.val.Signum())
}

// Recip computes the reciprocal, rounded to the wrapper precision.
func (x Rounded[P]) Recip() Rounded[P] {
	return Round[P](x.val.Recip())
}

// Scale multiplies by 2^n exactly, then rounds to the wrapper precision.
func (x Rounded[P]) Scale(n int) Rounded[P] {
	return Round[P](x.val.Scale(n))
}

// Sqrt computes the square root, rounded to the wrapper precision.
func (x Rounded[P]) Sqrt() Rounded[P] {
	return Round[P](x.val.Sqrt())
}

// Exp computes the exponential, rounded to the wrapper precision.
func (x Rounded[P]) Exp() Rounded[P] {
	return Round[P](x.val.Exp())
}

// Log computes the natural logarithm, rounded to the wrapper precision.
func (x Rounded[P]) Log() Rounded[P] {
	return Round[P](x.val.Log())
}

// Sin computes the sine, rounded to the wrapper precision.
func (x Rounded[P]) Sin() Rounded[P] {
	return Round[P](x.val.Sin())
}

// Cos computes the cosine, rounded to the wrapper precision.
func (x Rounded[P]) Cos() Rounded[P] {
	return Round[P](x.val.Cos())
}

// Tan computes the tangent, rounded to the wrapper precision.
func (x Rounded[P]) Tan() Rounded[P] {
	return Round[P](x.val.Tan())
}

// Asin computes the arcsine, rounded to the wrapper precision.
func (x Rounded[P]) Asin() Rounded[P] {
	return Round[P](x.val.Asin())
}

// Acos computes the arccosine, rounded to the wrapper precision.
func (x Rounded[P]) Acos() Rounded[P] {
	return Round[P](x.val.Acos())
}

// Atan computes the arctangent, rounded to the wrapper precision.
func (x Rounded[P]) Atan() Rounded[P] {
	return Round[P](x.val.Atan())
}

// Sinh computes the hyperbolic sine, rounded to the wrapper precision.
func (x Rounded[P]) Sinh() Rounded[P] {
	return Round[P](x.val.Sinh())
}

// Cosh computes the hyperbolic cosine, rounded to the wrapper precision.
func (x Rounded[P]) Cosh() Rounded[P] {
	return Round[P](x.val.Cosh())
}

// Tanh computes the hyperbolic tangent, rounded to the wrapper precision.
func (x Rounded[P]) Tanh() Rounded[P] {
	return Round[P](x.val.Tanh())
}

// Asinh computes the inverse hyperbolic sine, rounded to the wrapper
// precision.
func (x Rounded[P]) Asinh() Rounded[P] {
	return Round[P](x.val.Asinh())
}

// Acosh computes the inverse hyperbolic cosine, rounded to the wrapper
// precision.
func (x Rounded[P]) Acosh() Rounded[P] {
	return Round[P](x.val.Acosh())
}

// Atanh computes the inverse hyperbolic tangent, rounded to the wrapper
// precision.
func (x Rounded[P]) Atanh() Rounded[P] {
	return Round[P](x.val.Atanh())
}

// Cmp compares two rounded values by their representations at the wrapper
// precision.  Unlike the core comparator this is total and always
// terminates, because the tag bounds the enclosure width deterministically:
// overlapping enclosures compare as equal.  Note this can report values
// equal which differ as ideal reals by less than the wrapper resolution.
func (x Rounded[P]) Cmp(y Rounded[P]) int {
	bits := bitsOf[P]()
	a := x.val.Appr(bits)
	b := y.val.Appr(bits)
	//
	al, au := a.LowerBound(), a.UpperBound()
	bl, bu := b.LowerBound(), b.UpperBound()
	//
	if au.Cmp(&bl) < 0 {
		return -1
	}
	//
	if al.Cmp(&bu) > 0 {
		return 1
	}
	//
	return 0
}

// Less determines whether this value is below another at the wrapper
// precision.
func (x Rounded[P]) Less(y Rounded[P]) bool {
	return x.Cmp(y) < 0
}

// Greater determines whether this value is above another at the wrapper
// precision.
func (x Rounded[P]) Greater(y Rounded[P]) bool {
	return x.Cmp(y) > 0
}

// Equal determines whether two values coincide at the wrapper precision.
func (x Rounded[P]) Equal(y Rounded[P]) bool {
	return x.Cmp(y) == 0
}

// EqualAt delegates to the core's confidence-bounded equality on the
// unwrapped values, returning false when no decision is reached within the
// budget.
func (x Rounded[P]) EqualAt(y Rounded[P], decimals uint, attempts uint) bool {
	return x.val.EqualAt(y.val, decimals, attempts)
}

// LessAt delegates to the core's confidence-bounded ordering on the
// unwrapped values, returning false when no decision is reached within the
// budget.
func (x Rounded[P]) LessAt(y Rounded[P], attempts uint) bool {
	return x.val.LessAt(y.val, attempts)
}

// GreaterAt delegates to the core's confidence-bounded ordering on the
// unwrapped values, returning false when no decision is reached within the
// budget.
func (x Rounded[P]) GreaterAt(y Rounded[P], attempts uint) bool {
	return x.val.GreaterAt(y.val, attempts)
}

// Lower returns the lower endpoint, rounded to the wrapper precision.
func (x Rounded[P]) Lower() Rounded[P] {
	return Round[P](x.val.Lower())
}

// Upper returns the upper endpoint, rounded to the wrapper precision.
func (x Rounded[P]) Upper() Rounded[P] {
	return Round[P](x.val.Upper())
}

// Mid returns the interval midpoint, rounded to the wrapper precision.
func (x Rounded[P]) Mid() Rounded[P] {
	return Round[P](x.val.Mid())
}

// Radius returns the interval half-width, rounded to the wrapper precision.
func (x Rounded[P]) Radius() Rounded[P] {
	return Round[P](x.val.Radius())
}

// Hull returns the smallest interval containing all of the given values,
// rounded to the wrapper precision.
func Hull[P Precision](values ...Rounded[P]) Rounded[P] {
	unwrapped := make([]ireal.Real, len(values))
	//
	for i, v := range values {
		unwrapped[i] = v.val
	}
	//
	return Round[P](ireal.Hull(unwrapped...))
}

// ContainedIn checks containment of the enclosures at the wrapper precision.
func (x Rounded[P]) ContainedIn(y Rounded[P]) bool {
	return x.val.ContainedIn(y.val, bitsOf[P]())
}

// Intersect returns the overlap of two intervals at the wrapper precision,
// or nothing when they are disjoint.
func (x Rounded[P]) Intersect(y Rounded[P]) util.Option[Rounded[P]] {
	overlap := x.val.Intersect(y.val, bitsOf[P]())
	//
	if overlap.IsEmpty() {
		return util.None[Rounded[P]]()
	}
	//
	return util.Some(Rounded[P]{overlap.Unwrap()})
}

// ShowDecimal renders this value to a requested number of decimal digits,
// with any residual uncertainty shown in brackets.
func (x Rounded[P]) ShowDecimal(digits uint) string {
	return x.val.ShowDecimal(digits)
}
