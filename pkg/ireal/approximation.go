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
	"fmt"
	"math/big"

	"github.com/consensys/go-ireal/pkg/util"
)

// thinWidth is the maximum integer width an approximation of an exact real
// (rather than a genuine interval) may have at any precision.  Every operator
// in this package preserves this bound for thin operands.
const thinWidth = 2

// Approximation provides a discrete enclosure of a real value at a given
// binary precision p, such as 0..1, 1..18, etc.  An approximation with bounds
// lower..upper at precision p denotes the real interval
// [lower*2^-p, upper*2^-p].  Approximations are the finite snapshots out of
// which a Real is built: refining a Real at increasing precision yields a
// sequence of approximations whose scaled widths shrink towards zero.
type Approximation struct {
	lower     big.Int
	upper     big.Int
	precision uint
}

// NewApproximation creates an approximation enclosing a given range at a
// given precision.
func NewApproximation(lower big.Int, upper big.Int, precision uint) Approximation {
	var a Approximation
	// sanity check
	if lower.Cmp(&upper) > 0 {
		panic("invalid approximation")
	}
	//
	a.lower.Set(&lower)
	a.upper.Set(&upper)
	a.precision = precision
	//
	return a
}

// NewApproximation64 creates an approximation representing a given range.
func NewApproximation64(lower int64, upper int64, precision uint) Approximation {
	return NewApproximation(*big.NewInt(lower), *big.NewInt(upper), precision)
}

// Precision returns the binary precision at which the bounds of this
// approximation are expressed.
func (p *Approximation) Precision() uint {
	return p.precision
}

// LowerBound returns the (inclusive) lower bound of this approximation,
// expressed in units of 2^-precision.
func (p *Approximation) LowerBound() big.Int {
	return p.lower
}

// UpperBound returns the (inclusive) upper bound of this approximation,
// expressed in units of 2^-precision.
func (p *Approximation) UpperBound() big.Int {
	return p.upper
}

// Midpoint returns the integer midpoint of this approximation, rounded
// towards negative infinity.
func (p *Approximation) Midpoint() big.Int {
	var mid big.Int
	//
	mid.Add(&p.lower, &p.upper)
	floorShift(&mid, 1)
	//
	return mid
}

// Width returns the integer width of this approximation (i.e. the distance
// between its bounds in units of 2^-precision).
func (p *Approximation) Width() big.Int {
	var width big.Int
	//
	width.Sub(&p.upper, &p.lower)
	//
	return width
}

// IsThin determines whether this approximation is (at its precision)
// effectively a single point, rather than a nondegenerate interval.
func (p *Approximation) IsThin() bool {
	width := p.Width()
	return width.Cmp(big.NewInt(thinWidth)) <= 0
}

// Contains checks whether a given value (in units of 2^-precision) is
// enclosed by this approximation.
func (p *Approximation) Contains(val big.Int) bool {
	return p.lower.Cmp(&val) <= 0 && p.upper.Cmp(&val) >= 0
}

// Within checks whether this approximation is contained within another.  Both
// must be expressed at the same precision.
func (p *Approximation) Within(other Approximation) bool {
	p.checkPrecision(other)
	return p.lower.Cmp(&other.lower) >= 0 && p.upper.Cmp(&other.upper) <= 0
}

// Union returns the hull of two approximations (i.e. the smallest enclosure
// containing both).  Both must be expressed at the same precision.
func (p *Approximation) Union(other Approximation) Approximation {
	p.checkPrecision(other)
	//
	var a Approximation
	//
	a.lower.Set(minInt(&p.lower, &other.lower))
	a.upper.Set(maxInt(&p.upper, &other.upper))
	a.precision = p.precision
	//
	return a
}

// Intersect returns the overlap of two approximations, or nothing when they
// are disjoint.  Both must be expressed at the same precision.
func (p *Approximation) Intersect(other Approximation) util.Option[Approximation] {
	p.checkPrecision(other)
	//
	var a Approximation
	//
	a.lower.Set(maxInt(&p.lower, &other.lower))
	a.upper.Set(minInt(&p.upper, &other.upper))
	a.precision = p.precision
	// Disjoint enclosures have no intersection.
	if a.lower.Cmp(&a.upper) > 0 {
		return util.None[Approximation]()
	}
	//
	return util.Some(a)
}

// Add two approximations together.  Both must be expressed at the same
// precision, and the result is at that precision.
func (p *Approximation) Add(other Approximation) Approximation {
	p.checkPrecision(other)
	//
	var a Approximation
	// lower bound
	a.lower.Add(&p.lower, &other.lower)
	// upper bound
	a.upper.Add(&p.upper, &other.upper)
	a.precision = p.precision
	//
	return a
}

// Sub subtracts another approximation from this.  Both must be expressed at
// the same precision, and the result is at that precision.
func (p *Approximation) Sub(other Approximation) Approximation {
	neg := other.Neg()
	return p.Add(neg)
}

// Neg negates this approximation, swapping and negating its bounds.  This is
// an exact operation.
func (p *Approximation) Neg() Approximation {
	var a Approximation
	//
	a.lower.Neg(&p.upper)
	a.upper.Neg(&p.lower)
	a.precision = p.precision
	//
	return a
}

// Mul multiplies this approximation by another.  The result is expressed at
// the sum of the two precisions, since (a*2^-p) * (b*2^-q) = ab * 2^-(p+q).
func (p *Approximation) Mul(other Approximation) Approximation {
	var x1, x2, x3, x4 big.Int
	//
	x1.Mul(&p.lower, &other.lower)
	x2.Mul(&p.lower, &other.upper)
	x3.Mul(&p.upper, &other.lower)
	x4.Mul(&p.upper, &other.upper)
	// Compute min / max over all four products
	min := minInt(minInt(&x1, &x2), minInt(&x3, &x4))
	max := maxInt(maxInt(&x1, &x2), maxInt(&x3, &x4))
	//
	var a Approximation
	//
	a.lower.Set(min)
	a.upper.Set(max)
	a.precision = p.precision + other.precision
	//
	return a
}

// At converts this approximation to a given precision.  Raising the precision
// is exact (bounds are scaled up); lowering it rounds both bounds outwards,
// so the result always encloses the original.
func (p *Approximation) At(precision uint) Approximation {
	var a Approximation
	//
	a.precision = precision
	//
	switch {
	case precision == p.precision:
		a.lower.Set(&p.lower)
		a.upper.Set(&p.upper)
	case precision > p.precision:
		shift := precision - p.precision
		a.lower.Lsh(&p.lower, shift)
		a.upper.Lsh(&p.upper, shift)
	default:
		shift := p.precision - precision
		a.lower.Set(&p.lower)
		floorShift(&a.lower, shift)
		a.upper.Set(&p.upper)
		ceilShift(&a.upper, shift)
	}
	//
	return a
}

func (p *Approximation) String() string {
	return fmt.Sprintf("(%s..%s)@%d", p.lower.String(), p.upper.String(), p.precision)
}

func (p *Approximation) checkPrecision(other Approximation) {
	if p.precision != other.precision {
		panic(fmt.Sprintf("cannot combine approximations at precisions %d and %d",
			p.precision, other.precision))
	}
}

// floorShift divides a value by 2^shift in place, rounding towards negative
// infinity.  Note big.Int.Rsh already implements arithmetic shifting.
func floorShift(val *big.Int, shift uint) {
	val.Rsh(val, shift)
}

// ceilShift divides a value by 2^shift in place, rounding towards positive
// infinity.
func ceilShift(val *big.Int, shift uint) {
	var mask big.Int
	// 2^shift - 1
	mask.Lsh(big.NewInt(1), shift)
	mask.Sub(&mask, big.NewInt(1))
	//
	val.Add(val, &mask)
	val.Rsh(val, shift)
}

func minInt(x *big.Int, y *big.Int) *big.Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	//
	return y
}

func maxInt(x *big.Int, y *big.Int) *big.Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	//
	return y
}
