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
	"testing"
)

func Test_Pi_1(t *testing.T) {
	checkShows(t, Pi(), 8, "3.14159265")
}

func Test_Pi_2(t *testing.T) {
	checkShows(t, Pi(), 30, "3.141592653589793238462643383279")
}

func Test_Sqrt_1(t *testing.T) {
	checkShows(t, FromInt64(2).Sqrt(), 8, "1.41421356")
}

func Test_Sqrt_2(t *testing.T) {
	checkEqualAt(t, FromInt64(4).Sqrt(), FromInt64(2), 15)
}

func Test_Sqrt_3(t *testing.T) {
	// sqrt is the inverse of squaring
	x := FromRat(3, 7)
	checkEqualAt(t, x.Mul(x).Sqrt(), x, 15)
}

func Test_Sqrt_4(t *testing.T) {
	checkPanics(t, func() {
		FromInt64(-1).Sqrt().Appr(4)
	})
}

func Test_Exp_1(t *testing.T) {
	checkShows(t, FromInt64(1).Exp(), 8, "2.71828182")
}

func Test_Exp_2(t *testing.T) {
	checkEqualAt(t, FromInt64(0).Exp(), FromInt64(1), 15)
}

func Test_Exp_3(t *testing.T) {
	// exp(x + y) == exp(x) * exp(y)
	x, y := FromRat(1, 3), FromRat(-3, 5)
	checkEqualAt(t, x.Add(y).Exp(), x.Exp().Mul(y.Exp()), 12)
}

func Test_Exp_4(t *testing.T) {
	// large arguments require result padding
	checkEqualAt(t, FromInt64(20).Exp().Log(), FromInt64(20), 12)
}

func Test_Log_1(t *testing.T) {
	checkShows(t, FromInt64(2).Log(), 8, "0.69314718")
}

func Test_Log_2(t *testing.T) {
	checkEqualAt(t, FromInt64(1).Log(), FromInt64(0), 15)
}

func Test_Log_3(t *testing.T) {
	// log is the inverse of exp
	x := FromRat(5, 7)
	checkEqualAt(t, x.Exp().Log(), x, 12)
}

func Test_Log_4(t *testing.T) {
	checkPanics(t, func() {
		FromInt64(-2).Log().Appr(4)
	})
}

func Test_Sin_1(t *testing.T) {
	checkEqualAt(t, FromInt64(0).Sin(), FromInt64(0), 15)
}

func Test_Sin_2(t *testing.T) {
	checkEqualAt(t, Pi().Sin(), FromInt64(0), 12)
}

func Test_Sin_3(t *testing.T) {
	// sin(pi/2) == 1
	checkEqualAt(t, Pi().Scale(-1).Sin(), FromInt64(1), 12)
}

func Test_Cos_1(t *testing.T) {
	checkEqualAt(t, FromInt64(0).Cos(), FromInt64(1), 15)
}

func Test_Cos_2(t *testing.T) {
	checkEqualAt(t, Pi().Cos(), FromInt64(-1), 12)
}

func Test_Cos_3(t *testing.T) {
	// sin^2 + cos^2 == 1
	x := FromRat(7, 5)
	s, c := x.Sin(), x.Cos()
	//
	checkEqualAt(t, s.Mul(s).Add(c.Mul(c)), FromInt64(1), 12)
}

func Test_Tan(t *testing.T) {
	// tan(pi/4) == 1
	checkEqualAt(t, Pi().Scale(-2).Tan(), FromInt64(1), 12)
}

func Test_Atan_1(t *testing.T) {
	checkEqualAt(t, FromInt64(0).Atan(), FromInt64(0), 15)
}

func Test_Atan_2(t *testing.T) {
	// atan(1) == pi/4
	checkEqualAt(t, FromInt64(1).Atan(), Pi().Scale(-2), 12)
}

func Test_Atan_3(t *testing.T) {
	// atan is the inverse of tan
	x := FromRat(2, 3)
	checkEqualAt(t, x.Tan().Atan(), x, 12)
}

func Test_Asin(t *testing.T) {
	// asin(1/2) == pi/6
	checkEqualAt(t, FromRat(1, 2).Asin(), Pi().Div(FromInt64(6)), 12)
}

func Test_Acos(t *testing.T) {
	// acos(0) == pi/2
	checkEqualAt(t, FromInt64(0).Acos(), Pi().Scale(-1), 12)
}

func Test_Sinh(t *testing.T) {
	checkEqualAt(t, FromInt64(0).Sinh(), FromInt64(0), 15)
}

func Test_Cosh(t *testing.T) {
	// cosh^2 - sinh^2 == 1
	x := FromRat(3, 2)
	s, c := x.Sinh(), x.Cosh()
	//
	checkEqualAt(t, c.Mul(c).Sub(s.Mul(s)), FromInt64(1), 12)
}

func Test_Tanh(t *testing.T) {
	checkEqualAt(t, FromInt64(0).Tanh(), FromInt64(0), 15)
}

func Test_Asinh(t *testing.T) {
	x := FromRat(5, 4)
	checkEqualAt(t, x.Sinh().Asinh(), x, 12)
}

func Test_Acosh(t *testing.T) {
	x := FromInt64(2)
	checkEqualAt(t, x.Cosh().Acosh(), x, 12)
}

func Test_Atanh(t *testing.T) {
	x := FromRat(1, 2)
	checkEqualAt(t, x.Tanh().Atanh(), x, 12)
}

func Test_Composition(t *testing.T) {
	// pi = exp(log(pi)) = 4 * atan(1), chaining every endpoint operator
	x := Pi().Log().Exp()
	y := FromInt64(1).Atan().Scale(2)
	//
	checkEqualAt(t, x, y, 12)
	checkEqualAt(t, x, Pi(), 12)
}
