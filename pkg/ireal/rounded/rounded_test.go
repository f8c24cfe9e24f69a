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
package rounded

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Rounded_Idempotent(t *testing.T) {
	x := Pi[P20]()
	y := Round[P20](x.Unwrap())
	//
	assert.True(t, x.Equal(y), "rounding a rounded value should be a no-op")
}

func Test_Rounded_Add(t *testing.T) {
	x := FromRat[P20](big.NewRat(1, 3))
	y := FromRat[P20](big.NewRat(2, 3))
	//
	assert.True(t, x.Add(y).EqualAt(FromInt64[P20](1), 15, 10))
}

func Test_Rounded_Sub(t *testing.T) {
	x := FromInt64[P20](1)
	y := FromRat[P20](big.NewRat(1, 3))
	//
	assert.True(t, x.Sub(y).EqualAt(FromRat[P20](big.NewRat(2, 3)), 15, 10))
}

func Test_Rounded_MulDiv(t *testing.T) {
	x := FromRat[P20](big.NewRat(5, 7))
	y := FromInt64[P20](3)
	//
	assert.True(t, x.Div(y).Mul(y).EqualAt(x, 15, 10))
}

func Test_Rounded_NegAbs(t *testing.T) {
	x := FromRat[P20](big.NewRat(5, 7))
	//
	assert.True(t, x.Neg().Abs().EqualAt(x, 15, 10))
}

func Test_Rounded_Recip(t *testing.T) {
	x := FromRat[P20](big.NewRat(1, 3))
	//
	assert.True(t, x.Recip().EqualAt(FromInt64[P20](3), 15, 10))
}

func Test_Rounded_Scale(t *testing.T) {
	x := FromInt64[P20](3).Scale(-2)
	//
	assert.True(t, x.EqualAt(FromRat[P20](big.NewRat(3, 4)), 15, 10))
}

func Test_Rounded_Pi(t *testing.T) {
	assert.Equal(t, "3.14159265", Pi[P20]().ShowDecimal(8))
}

func Test_Rounded_Trig(t *testing.T) {
	// sin^2 + cos^2 == 1, up to accumulated rounding error
	x := FromRat[P50](big.NewRat(7, 5))
	s, c := x.Sin(), x.Cos()
	one := FromInt64[P50](1)
	//
	assert.True(t, s.Mul(s).Add(c.Mul(c)).EqualAt(one, 30, 10))
}

func Test_Rounded_ExpLog(t *testing.T) {
	x := FromRat[P20](big.NewRat(5, 7))
	//
	assert.True(t, x.Exp().Log().EqualAt(x, 12, 10))
}

func Test_Rounded_Accumulation(t *testing.T) {
	// each operation loses at most one rounding step, so a short chain
	// stays well inside a coarser tolerance
	x := FromInt64[P10](1)
	//
	for i := 0; i < 3; i++ {
		x = x.Exp().Log()
	}
	//
	assert.True(t, x.EqualAt(FromInt64[P10](1), 5, 10))
}

func Test_Rounded_Cmp(t *testing.T) {
	x := FromInt64[P20](1)
	y := FromInt64[P20](2)
	//
	assert.Equal(t, -1, x.Cmp(y))
	assert.Equal(t, 1, y.Cmp(x))
	assert.Equal(t, 0, x.Cmp(x))
}

func Test_Rounded_Ordering(t *testing.T) {
	x := FromInt64[P20](1)
	y := FromInt64[P20](2)
	//
	assert.True(t, x.Less(y))
	assert.True(t, y.Greater(x))
	assert.False(t, x.Equal(y))
	assert.True(t, x.Equal(x))
}

func Test_Rounded_CmpTotal(t *testing.T) {
	// values closer than the wrapper resolution compare as equal
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil)
	num := new(big.Int).Add(den, big.NewInt(1))
	//
	x := FromInt64[P20](1)
	y := FromRat[P20](new(big.Rat).SetFrac(num, den))
	//
	assert.True(t, x.Equal(y))
}

func Test_Rounded_Hull(t *testing.T) {
	v := Hull(FromInt64[P20](1), FromInt64[P20](3))
	//
	assert.True(t, FromInt64[P20](2).ContainedIn(v))
	assert.False(t, FromInt64[P20](4).ContainedIn(v))
}

func Test_Rounded_Endpoints(t *testing.T) {
	v := FromEndpoints[P20](big.NewRat(1, 2), big.NewRat(3, 2))
	//
	assert.True(t, v.Lower().EqualAt(FromRat[P20](big.NewRat(1, 2)), 10, 10))
	assert.True(t, v.Upper().EqualAt(FromRat[P20](big.NewRat(3, 2)), 10, 10))
	assert.True(t, v.Mid().EqualAt(FromInt64[P20](1), 10, 10))
	assert.True(t, v.Radius().EqualAt(FromRat[P20](big.NewRat(1, 2)), 10, 10))
}

func Test_Rounded_Intersect(t *testing.T) {
	x := FromEndpoints[P20](big.NewRat(0, 1), big.NewRat(2, 1))
	y := FromEndpoints[P20](big.NewRat(1, 1), big.NewRat(3, 1))
	//
	overlap := x.Intersect(y)
	assert.True(t, overlap.HasValue())
	assert.True(t, FromRat[P20](big.NewRat(3, 2)).ContainedIn(overlap.Unwrap()))
	//
	disjoint := FromInt64[P20](1).Intersect(FromInt64[P20](2))
	assert.True(t, disjoint.IsEmpty())
}

func Test_Rounded_Tags(t *testing.T) {
	assert.Equal(t, uint(10), DigitsOf[P10]())
	assert.Equal(t, uint(20), DigitsOf[P20]())
	assert.Equal(t, uint(50), DigitsOf[P50]())
	assert.Equal(t, uint(100), DigitsOf[P100]())
}
