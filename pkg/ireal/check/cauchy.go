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

// Package check provides quantified correctness checks over the core
// representation: the Cauchy convergence criterion which any value claiming
// to be an exact real must satisfy, interval well-formedness, and a
// universal quantifier over the unit interval.
package check

import (
	"math/big"
	"math/rand/v2"

	"github.com/consensys/go-ireal/pkg/ireal"
)

// precisionRange is the range from which precision pairs are sampled when
// validating a value.
const precisionRange = 2000

// validationSamples is the number of precision pairs sampled per validation.
const validationSamples = 8

// orderingBudget is the confidence budget used to decide the bound ordering
// of an interval.
const orderingBudget = 100

// IsCauchyApprox verifies the Cauchy criterion for one precision pair: the
// enclosure at precision p must be thin (a point, not a nondegenerate
// interval), and the midpoints at precisions p and p+r must agree to within
// the combined resolution of the two enclosures.
func IsCauchyApprox(x ireal.Real, p uint, r uint) bool {
	// Coarse first, so the memo cannot mask an inconsistency.
	a := x.Appr(p)
	b := x.Appr(p + r)
	//
	if !a.IsThin() {
		return false
	}
	//
	ma := a.Midpoint()
	mb := b.Midpoint()
	// |mb - ma * 2^r| <= 2^(r+1)
	var diff, tol big.Int
	//
	diff.Lsh(&ma, r)
	diff.Sub(&mb, &diff)
	diff.Abs(&diff)
	tol.Lsh(big.NewInt(2), r)
	//
	return diff.Cmp(&tol) <= 0
}

// IsValidReal checks the Cauchy criterion over sampled precision pairs drawn
// from [0, 2000].  This is the defining correctness property of a value
// claiming to denote an exact real number.
func IsValidReal(x ireal.Real, rng *rand.Rand) bool {
	for i := 0; i < validationSamples; i++ {
		p := uint(rng.UintN(precisionRange + 1))
		r := uint(rng.UintN(precisionRange + 1))
		//
		if !IsCauchyApprox(x, p, r) {
			return false
		}
	}
	//
	return true
}

// IsValidInterval checks that both endpoints of an interval independently
// denote valid reals, and that they are correctly ordered (decided with a
// fixed confidence budget).
func IsValidInterval(x ireal.Real, rng *rand.Rand) bool {
	lower := x.Lower()
	upper := x.Upper()
	//
	if !IsValidReal(lower, rng) || !IsValidReal(upper, rng) {
		return false
	}
	//
	return lower.LessAt(upper, orderingBudget)
}
