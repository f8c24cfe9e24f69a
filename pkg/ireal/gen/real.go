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
	"math/rand/v2"

	"github.com/consensys/go-ireal/pkg/ireal"
)

// radiusExponentRange bounds the random negative power of two scaling the
// radius of a generated interval.
const radiusExponentRange = 50

// UniformReal produces a real distributed over [lo, hi] (integer bounds).
// Mass is concentrated on the endpoints so that boundary cases are exercised
// with nonzero probability: each endpoint carries weight one (approached from
// inside the range by a one-sided fraction), while the interior carries
// weight hi-lo-1.  A degenerate range [l, l] always yields exactly l.
func UniformReal(rng *rand.Rand, lo int64, hi int64) ireal.Real {
	if hi < lo {
		panic("invalid range")
	}
	//
	if hi == lo {
		return ireal.FromInt64(lo)
	}
	//
	total := uint64(hi-lo-1) + 2
	//
	switch r := rng.Uint64N(total); r {
	case 0:
		// lower endpoint, approached from above
		return ireal.FromDigits(lo, PosFraction(rng))
	case 1:
		// upper endpoint, approached from below
		return ireal.FromDigits(hi, NegFraction(rng))
	default:
		// interior: integer part plus a signed fraction in [-1, 1]
		whole := lo + 1 + int64(r-2)
		return ireal.FromDigits(whole, Fraction(rng))
	}
}

// UniformInterval produces an interval of random width around a random
// midpoint: the midpoint is drawn via UniformReal, and the radius is an
// independent UniformReal(0, 1) scaled by a random negative power of two.
func UniformInterval(rng *rand.Rand, lo int64, hi int64) ireal.Real {
	mid := UniformReal(rng, lo, hi)
	radius := UniformReal(rng, 0, 1).Scale(-int(rng.Int64N(radiusExponentRange + 1)))
	//
	return ireal.Hull(mid.Sub(radius), mid.Add(radius))
}
