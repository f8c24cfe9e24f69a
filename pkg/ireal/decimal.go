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
	"strings"
)

// ShowDecimal renders this value to a requested number of decimal digits
// after the point, truncated towards negative infinity.  When the enclosure
// does not pin all requested digits down, the residual range is shown
// explicitly in brackets: for example "3.141[58..60]" denotes a value whose
// truncation lies between 3.14158 and 3.14160.  The bracket always runs
// lower bound to upper bound; for negative values its digit text therefore
// reads largest magnitude first, as in "-0.[38..25]".
func (x Real) ShowDecimal(digits uint) string {
	// Two spare decimal digits absorb the enclosure width in most cases.
	p := BitsForDigits(digits + 2)
	a := x.Appr(p)
	// Truncate both bounds to integers denoting value * 10^digits.
	var pow, lo, hi big.Int
	//
	pow.Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	lo.Mul(&a.lower, &pow)
	floorShift(&lo, p)
	hi.Mul(&a.upper, &pow)
	floorShift(&hi, p)
	//
	los := formatScaled(&lo, digits)
	//
	if lo.Cmp(&hi) == 0 {
		return los
	}
	// Undetermined digits remain; render the residual range after the
	// longest common prefix.
	his := formatScaled(&hi, digits)
	cp := commonPrefix(los, his)
	//
	return fmt.Sprintf("%s[%s..%s]", los[:cp], los[cp:], his[cp:])
}

// formatScaled renders v * 10^-digits as a plain decimal string.
func formatScaled(v *big.Int, digits uint) string {
	var abs big.Int
	//
	sign := ""
	//
	if v.Sign() < 0 {
		sign = "-"
	}
	//
	abs.Abs(v)
	s := abs.String()
	// Pad so there is at least one digit before the point.
	if uint(len(s)) <= digits {
		s = strings.Repeat("0", int(digits)-len(s)+1) + s
	}
	//
	if digits == 0 {
		return sign + s
	}
	//
	point := len(s) - int(digits)
	//
	return sign + s[:point] + "." + s[point:]
}

// commonPrefix returns the length of the longest common prefix of two
// strings.
func commonPrefix(x string, y string) int {
	n := min(len(x), len(y))
	//
	for i := 0; i < n; i++ {
		if x[i] != y[i] {
			return i
		}
	}
	//
	return n
}
