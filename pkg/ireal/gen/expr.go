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

// ExpressionTree recursively builds a random nested expression over values
// drawn from a leaf generator, stressing error accumulation through deep
// operator chains.  The grammar is weighted 14:1:1:2:2:2:2:2:2 over leaf,
// sum, product and the six unary operators below; guards keep every
// subexpression inside the domain of the operator applied to it (sqrt takes
// an absolute value, log is offset away from zero).  Leaf emission carries
// half the total weight, so generated trees are finite with probability one.
func ExpressionTree(rng *rand.Rand, leaf func(*rand.Rand) ireal.Real) ireal.Real {
	one := ireal.FromInt64(1)
	//
	switch w := rng.UintN(28); {
	case w < 14:
		return leaf(rng)
	case w == 14:
		return ExpressionTree(rng, leaf).Add(ExpressionTree(rng, leaf))
	case w == 15:
		return ExpressionTree(rng, leaf).Mul(ExpressionTree(rng, leaf))
	case w < 18:
		return ExpressionTree(rng, leaf).Exp()
	case w < 20:
		return ExpressionTree(rng, leaf).Cos()
	case w < 22:
		return ExpressionTree(rng, leaf).Sin()
	case w < 24:
		return ExpressionTree(rng, leaf).Atan()
	case w < 26:
		return ExpressionTree(rng, leaf).Abs().Sqrt()
	default:
		return one.Add(ExpressionTree(rng, leaf).Abs()).Log()
	}
}
