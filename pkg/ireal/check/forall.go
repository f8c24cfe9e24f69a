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
package check

import (
	"github.com/consensys/go-ireal/pkg/ireal"
)

// ForAllUnit decides universal quantification of a predicate over the
// continuum [0, 1], by adversarial search: a candidate digit stream is built
// on the fly, choosing at each position the branch which still harbours a
// potential counterexample, and the predicate is evaluated at the discovered
// path.  This is a complete decision procedure only when the predicate is
// determined by finitely many digits of its argument; otherwise the search
// may not terminate, which is accepted behaviour rather than a defect.
// Callers needing a termination guarantee must impose their own cutoff.
func ForAllUnit(pred func(ireal.Real) bool) bool {
	q := func(s ireal.DigitStream) bool {
		return pred(unitValue(s))
	}
	//
	return q(counterexample(q))
}

// unitValue maps a signed-digit stream denoting a fraction f in [-1, 1] to
// the value (1 + f) / 2 in [0, 1].
func unitValue(s ireal.DigitStream) ireal.Real {
	one := ireal.FromInt64(1)
	return one.Add(ireal.FromDigits(0, s)).Scale(-1)
}

// counterexample returns a stream which falsifies the given stream predicate
// whenever any stream does.  Digits are chosen left to right, and only on
// demand: a predicate which never inspects its argument never forces a
// choice.
func counterexample(q func(ireal.DigitStream) bool) ireal.DigitStream {
	var memo []ireal.Digit
	//
	return func(i uint) ireal.Digit {
		for uint(len(memo)) <= i {
			prefix := append([]ireal.Digit(nil), memo...)
			memo = append(memo, choose(q, prefix))
		}
		//
		return memo[i]
	}
}

// choose picks the next digit after a given prefix, preferring the branch
// containing a counterexample when there is one.
func choose(q func(ireal.DigitStream) bool, prefix []ireal.Digit) ireal.Digit {
	// Search the low branch for a counterexample witness.
	low := func(t ireal.DigitStream) bool {
		return q(prepend(prefix, ireal.Minus, t))
	}
	//
	if !low(counterexample(low)) {
		return ireal.Minus
	}
	// Low branch holds everywhere; any counterexample lives high.
	return ireal.Plus
}

// prepend extends a fixed digit prefix with one digit and a continuation
// stream.
func prepend(prefix []ireal.Digit, d ireal.Digit, t ireal.DigitStream) ireal.DigitStream {
	n := uint(len(prefix))
	//
	return func(i uint) ireal.Digit {
		switch {
		case i < n:
			return prefix[i]
		case i == n:
			return d
		default:
			return t(i - n - 1)
		}
	}
}
