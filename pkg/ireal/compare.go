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

	log "github.com/sirupsen/logrus"
)

// slowRefinementThreshold is the precision beyond which refinement loops
// start reporting their progress.
const slowRefinementThreshold = 1 << 16

// Sign determines the sign of this value, refining until the enclosure
// excludes zero.  Note that the sign of a value which is exactly zero cannot
// be determined by any finite enclosure, so this does not terminate on zero.
// Callers needing a guaranteed answer should use TryCompare instead.
func (x Real) Sign() int {
	_, a := x.refineNonZero()
	//
	if a.lower.Sign() > 0 {
		return 1
	}
	//
	return -1
}

// Cmp compares two values exactly, refining without bound.  As with Sign,
// this does not terminate when both values are equal in the limit.
func (x Real) Cmp(y Real) int {
	return x.Sub(y).Sign()
}

// TryCompare compares two values within a given confidence budget.  The
// budget bounds the number of increasing-precision attempts made; when it is
// exhausted without the enclosures separating, the second result is false and
// the comparison is undetermined (which does not imply the values are equal).
func (x Real) TryCompare(y Real, attempts uint) (int, bool) {
	diff := x.Sub(y)
	//
	p := uint(8)
	//
	for i := uint(0); i < attempts; i++ {
		a := diff.Appr(p)
		//
		if a.lower.Sign() > 0 {
			return 1, true
		}
		//
		if a.upper.Sign() < 0 {
			return -1, true
		}
		//
		p *= 2
	}
	//
	return 0, false
}

// LessAt determines whether this value is provably below another within a
// given confidence budget.  Returns false when no decision is reached.
func (x Real) LessAt(y Real, attempts uint) bool {
	c, ok := x.TryCompare(y, attempts)
	return ok && c < 0
}

// GreaterAt determines whether this value is provably above another within a
// given confidence budget.  Returns false when no decision is reached.
func (x Real) GreaterAt(y Real, attempts uint) bool {
	c, ok := x.TryCompare(y, attempts)
	return ok && c > 0
}

// EqualAt determines whether two values agree to within 10^-decimals, using a
// given confidence budget of increasing-precision attempts.  Returns false
// both when the values are provably further apart than the tolerance and when
// the budget is exhausted without a decision.
func (x Real) EqualAt(y Real, decimals uint, attempts uint) bool {
	diff := x.Sub(y)
	//
	p := BitsForDigits(decimals) + 8
	//
	for i := uint(0); i < attempts; i++ {
		a := diff.Appr(p)
		// tolerance 10^-decimals in units of 2^-p
		tol := toleranceAt(decimals, p)
		//
		var negTol big.Int
		//
		negTol.Neg(tol)
		// |diff| <= tol once both bounds are inside the tolerance.
		if a.upper.Cmp(tol) <= 0 && a.lower.Cmp(&negTol) >= 0 {
			return true
		}
		// Provably outside the tolerance.
		if a.lower.Cmp(tol) > 0 || a.upper.Cmp(&negTol) < 0 {
			return false
		}
		//
		p *= 2
	}
	// Budget exhausted without a decision.
	return false
}

// toleranceAt computes floor(2^p / 10^decimals).
func toleranceAt(decimals uint, p uint) *big.Int {
	var tol, pow big.Int
	//
	pow.Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	tol.Lsh(big.NewInt(1), p)
	tol.Quo(&tol, &pow)
	//
	return &tol
}

func warnSlowRefinement(what string, precision uint) {
	if precision >= slowRefinementThreshold {
		log.Debug(fmt.Sprintf("%s: still unresolved at precision %d", what, precision))
	}
}
