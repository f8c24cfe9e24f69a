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

// Package gen provides randomized producers of reals and intervals for
// stressing the core representation: numbers exactly at dyadic midpoints,
// numbers approaching representable boundaries from one side only, and
// deeply nested random expression trees.
package gen

import (
	"math/big"
	"math/rand/v2"

	"github.com/consensys/go-ireal/pkg/ireal"
)

// boundaryDepth bounds how many leading zeros the one-sided fraction
// generators emit before committing to a side.
const boundaryDepth = 40

// Fraction produces a random signed-digit stream denoting a fraction in
// [-1, 1], with digits weighted 1:2:1 for Minus:Zero:Plus.  The stream is
// restartable: digits are drawn lazily but memoized, so re-reading any
// position yields the same digit.
func Fraction(rng *rand.Rand) ireal.DigitStream {
	return memoize(func() ireal.Digit {
		switch rng.UintN(4) {
		case 0:
			return ireal.Minus
		case 3:
			return ireal.Plus
		default:
			return ireal.Zero
		}
	})
}

// NegFraction produces a stream which repeats Zero and then settles on Minus
// forever, denoting -2^-k for a random k.  Such values approach a dyadic
// boundary from below, exercising one-sided rounding behaviour.
func NegFraction(rng *rand.Rand) ireal.DigitStream {
	return oneSided(rng, ireal.Minus)
}

// PosFraction produces a stream which repeats Zero and then settles on Plus
// forever, denoting 2^-k for a random k.  Such values approach a dyadic
// boundary from above.
func PosFraction(rng *rand.Rand) ireal.DigitStream {
	return oneSided(rng, ireal.Plus)
}

func oneSided(rng *rand.Rand, tail ireal.Digit) ireal.DigitStream {
	zeros := rng.UintN(boundaryDepth) + 1
	//
	return func(i uint) ireal.Digit {
		if i < zeros {
			return ireal.Zero
		}
		//
		return tail
	}
}

// Expand folds a finite prefix of a digit stream into a dyadic integer
// approximation at a given precision, using the recurrence acc' = 2*acc + d
// per digit.
func Expand(digits ireal.DigitStream, acc *big.Int, precision uint) *big.Int {
	var val big.Int
	//
	val.Set(acc)
	//
	for i := uint(0); i < precision; i++ {
		val.Lsh(&val, 1)
		val.Add(&val, big.NewInt(int64(digits(i))))
	}
	//
	return &val
}

// memoize turns a stateful digit source into a restartable stream by
// recording digits as they are first drawn.
func memoize(next func() ireal.Digit) ireal.DigitStream {
	var memo []ireal.Digit
	//
	return func(i uint) ireal.Digit {
		for uint(len(memo)) <= i {
			memo = append(memo, next())
		}
		//
		return memo[i]
	}
}
