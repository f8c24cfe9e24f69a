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
package cmd

import (
	"testing"

	"github.com/consensys/go-ireal/pkg/ireal"
)

func Test_Parse_1(t *testing.T) {
	checkParses(t, "1/3 + 2/3", ireal.FromInt64(1))
}

func Test_Parse_2(t *testing.T) {
	checkParses(t, "2.5 - 0.5", ireal.FromInt64(2))
}

func Test_Parse_3(t *testing.T) {
	// precedence: product binds tighter than sum
	checkParses(t, "1 + 2 * 3", ireal.FromInt64(7))
}

func Test_Parse_4(t *testing.T) {
	checkParses(t, "-(1 + 2) * 2", ireal.FromInt64(-6))
}

func Test_Parse_5(t *testing.T) {
	checkParses(t, "sqrt(2) * sqrt(2)", ireal.FromInt64(2))
}

func Test_Parse_6(t *testing.T) {
	checkParses(t, "cos(0) + exp(0)", ireal.FromInt64(2))
}

func Test_Parse_7(t *testing.T) {
	checkParses(t, "pi", ireal.Pi())
}

func Test_Parse_8(t *testing.T) {
	checkParses(t, "log(e)", ireal.FromInt64(1))
}

func Test_Parse_Errors(t *testing.T) {
	for _, input := range []string{"", "(", "(1", "1 +", "foo", "sin 1", "1..2"} {
		if _, err := ParseExpr(input); err == nil {
			t.Errorf("expected error parsing %q", input)
		}
	}
}

// ===================================================================
// Helpers
// ===================================================================

func checkParses(t *testing.T, input string, expected ireal.Real) {
	t.Helper()
	//
	val, err := ParseExpr(input)
	//
	if err != nil {
		t.Fatalf("parsing %q: %v", input, err)
	}
	//
	if !val.EqualAt(expected, 15, 10) {
		t.Errorf("%q == %s", input, val.ShowDecimal(15))
	}
}
