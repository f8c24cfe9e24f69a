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

	"github.com/consensys/go-ireal/pkg/util"
)

// A Real whose enclosures never become thin denotes a genuine interval rather
// than a point.  The operations here view a Real through that interval lens:
// they project endpoints, merge and intersect enclosures, and so on.  Applied
// to a point value they simply reproduce it (an exact real is the degenerate
// interval containing only itself).

// Lower returns the lower endpoint of this interval as a real in its own
// right.
func (x Real) Lower() Real {
	return newReal(func(p uint) Approximation {
		a := x.Appr(p + 2)
		//
		var lower, upper big.Int
		//
		lower.Set(&a.lower)
		floorShift(&lower, 2)
		upper.Add(&lower, big.NewInt(1))
		lower.Sub(&lower, big.NewInt(1))
		//
		return NewApproximation(lower, upper, p)
	})
}

// Upper returns the upper endpoint of this interval as a real in its own
// right.
func (x Real) Upper() Real {
	return newReal(func(p uint) Approximation {
		a := x.Appr(p + 2)
		//
		var lower, upper big.Int
		//
		upper.Set(&a.upper)
		ceilShift(&upper, 2)
		lower.Sub(&upper, big.NewInt(1))
		upper.Add(&upper, big.NewInt(1))
		//
		return NewApproximation(lower, upper, p)
	})
}

// Mid returns the midpoint of this interval.
func (x Real) Mid() Real {
	return x.Lower().Add(x.Upper()).Scale(-1)
}

// Radius returns half the width of this interval.  For a point value this is
// exactly zero.
func (x Real) Radius() Real {
	return x.Upper().Sub(x.Lower()).Scale(-1)
}

// ContainedIn checks whether the enclosure of this value at a given precision
// lies within that of another.
func (x Real) ContainedIn(y Real, precision uint) bool {
	a := x.Appr(precision)
	b := y.Appr(precision)
	//
	return a.Within(b)
}

// Intersect returns the overlap of two intervals at a given precision, or
// nothing when their enclosures are disjoint.
func (x Real) Intersect(y Real, precision uint) util.Option[Real] {
	a := x.Appr(precision)
	b := y.Appr(precision)
	//
	overlap := a.Intersect(b)
	if overlap.IsEmpty() {
		return util.None[Real]()
	}
	//
	return util.Some(FromApproximation(overlap.Unwrap()))
}

// FromEndpoints constructs the interval spanning two rational endpoints.
func FromEndpoints(lower *big.Rat, upper *big.Rat) Real {
	if lower.Cmp(upper) > 0 {
		panic("invalid interval")
	}
	//
	return Hull(FromBigRat(lower), FromBigRat(upper))
}
