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

import "github.com/consensys/go-ireal/pkg/ireal"

// Precision is a zero-sized tag fixing the number of decimal digits a
// Rounded value is normalised to.  Making the tag a type parameter (rather
// than a field) means values of different precisions are different types, so
// they cannot be mixed in a binary operation by accident.  The digit count
// must be positive; this is checked once at rounding time.
type Precision interface {
	Precision() uint
}

// P10 fixes ten decimal digits.
type P10 struct{}

// Precision implementation for Precision interface.
func (P10) Precision() uint { return 10 }

// P20 fixes twenty decimal digits.
type P20 struct{}

// Precision implementation for Precision interface.
func (P20) Precision() uint { return 20 }

// P50 fixes fifty decimal digits.
type P50 struct{}

// Precision implementation for Precision interface.
func (P50) Precision() uint { return 50 }

// P100 fixes one hundred decimal digits.
type P100 struct{}

// Precision implementation for Precision interface.
func (P100) Precision() uint { return 100 }

// DigitsOf returns the decimal digit count of a precision tag, without
// needing a value of the wrapped type.
func DigitsOf[P Precision]() uint {
	var tag P
	return tag.Precision()
}

// bitsOf returns the binary precision corresponding to a precision tag,
// rejecting non-positive digit counts.
func bitsOf[P Precision]() uint {
	digits := DigitsOf[P]()
	//
	if digits == 0 {
		panic("precision tag must be positive")
	}
	//
	return ireal.BitsForDigits(digits)
}
