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
	"math/big"
	"math/bits"
)

// Fixed-point kernels for the transcendental operators.  Each kernel
// evaluates its function at the dyadic point x = m * 2^-s and returns an
// integer v with |f(x) * 2^q - v| <= kernelSlop.  All evaluation happens in
// big.Int fixed point at an internal working precision with a generous guard,
// so that per-term truncation error stays far below the final shift back down
// to precision q.

// kernelSlop bounds the error, in units in the last place at the requested
// precision, of every kernel in this file.
const kernelSlop = 4

// kernelGuard is the number of guard bits added to every internal working
// precision.
const kernelGuard = 64

// expKernel computes exp(m * 2^-s) at precision q.  Arguments are reduced by
// repeated halving until below one half, then a Taylor series is summed and
// the result squared back up.  Panics when the argument is so large that the
// result would be astronomically long.
func expKernel(m *big.Int, s uint, q uint) *big.Int {
	if m.Sign() == 0 {
		return pow2(q)
	}
	//
	bl := m.BitLen()
	// Halvings needed to bring |x| below one half.
	k := bl - int(s) + 1
	if k < 0 {
		k = 0
	}
	// Bits in the integer part of the result: exp(x) <= 2^(1.5 * 2^ihi).
	ihi := bl - int(s)
	resultBits := uint(2)
	//
	if m.Sign() > 0 && ihi > 0 {
		if ihi > 30 {
			panic("exp argument too large")
		}
		//
		resultBits = (uint(3) << uint(ihi-1)) + 2
	}
	//
	w := q + 2*uint(k) + resultBits + kernelGuard
	r := fixShift(m, int(w)-int(s)-k)
	// Taylor series for exp on |r| <= 1/2.
	sum := pow2(w)
	sum.Add(sum, r)
	//
	var t big.Int
	//
	t.Set(r)
	//
	for i := int64(2); t.Sign() != 0; i++ {
		t.Mul(&t, r)
		quoPow2(&t, w)
		t.Quo(&t, big.NewInt(i))
		sum.Add(sum, &t)
	}
	// Square back up: exp(x) = exp(r)^(2^k).
	for j := 0; j < k; j++ {
		sum.Mul(sum, sum)
		sum.Rsh(sum, w)
	}
	//
	return sum.Rsh(sum, w-q)
}

// logKernel computes log(m * 2^-s) at precision q.  The argument must be
// strictly positive.  The mantissa is normalised into [1/2, 1) and evaluated
// via the atanh series, with the exponent contributing a multiple of log(2).
func logKernel(m *big.Int, s uint, q uint) *big.Int {
	if m.Sign() <= 0 {
		panic("log kernel requires a positive argument")
	}
	//
	bl := m.BitLen()
	// x = mh * 2^e with mh in [1/2, 1)
	e := bl - int(s)
	w := q + uint(bits.Len(uint(abs(e)))) + kernelGuard
	mh := fixShift(m, int(w)-int(s)-e)
	// u = (mh - 1) / (mh + 1), in [-1/3, 0]
	var un, ud, u big.Int
	//
	un.Sub(mh, pow2(w))
	ud.Add(mh, pow2(w))
	u.Lsh(&un, w)
	u.Quo(&u, &ud)
	// log(mh) = 2 * (u + u^3/3 + u^5/5 + ...)
	var u2, t, sum big.Int
	//
	u2.Mul(&u, &u)
	quoPow2(&u2, w)
	t.Set(&u)
	sum.Set(&u)
	//
	for i := int64(1); ; i++ {
		t.Mul(&t, &u2)
		quoPow2(&t, w)
		//
		if t.Sign() == 0 {
			break
		}
		//
		var term big.Int
		//
		term.Quo(&t, big.NewInt(2*i+1))
		sum.Add(&sum, &term)
	}
	//
	sum.Lsh(&sum, 1)
	// log(x) = log(mh) + e * log(2)
	var scaled big.Int
	//
	scaled.Mul(big.NewInt(int64(e)), ln2Fixed(w))
	sum.Add(&sum, &scaled)
	//
	return sum.Rsh(&sum, w-q)
}

// sinKernel computes sin(m * 2^-s) at precision q, reducing the argument
// modulo 2*pi before summing the Taylor series.
func sinKernel(m *big.Int, s uint, q uint) *big.Int {
	r, w := reduceByTwoPi(m, s, q)
	// sin(r) = r - r^3/3! + r^5/5! - ...
	var r2, t, sum big.Int
	//
	r2.Mul(r, r)
	r2.Rsh(&r2, w)
	t.Set(r)
	sum.Set(r)
	//
	for i := int64(1); ; i++ {
		t.Mul(&t, &r2)
		quoPow2(&t, w)
		t.Quo(&t, big.NewInt((2*i)*(2*i+1)))
		t.Neg(&t)
		//
		if t.Sign() == 0 {
			break
		}
		//
		sum.Add(&sum, &t)
	}
	//
	return sum.Rsh(&sum, w-q)
}

// cosKernel computes cos(m * 2^-s) at precision q.
func cosKernel(m *big.Int, s uint, q uint) *big.Int {
	r, w := reduceByTwoPi(m, s, q)
	// cos(r) = 1 - r^2/2! + r^4/4! - ...
	var r2, t big.Int
	//
	r2.Mul(r, r)
	r2.Rsh(&r2, w)
	t.Set(pow2(w))
	sum := pow2(w)
	//
	for i := int64(1); ; i++ {
		t.Mul(&t, &r2)
		quoPow2(&t, w)
		t.Quo(&t, big.NewInt((2*i-1)*(2*i)))
		t.Neg(&t)
		//
		if t.Sign() == 0 {
			break
		}
		//
		sum.Add(sum, &t)
	}
	//
	return sum.Rsh(sum, w-q)
}

// reduceByTwoPi maps m * 2^-s into [-pi, pi] fixed at an internal working
// precision, which is returned alongside the reduced argument.
func reduceByTwoPi(m *big.Int, s uint, q uint) (*big.Int, uint) {
	bl := m.BitLen()
	// Reduction multiplies the error in pi by the quotient magnitude.
	nbits := bl - int(s)
	if nbits < 0 {
		nbits = 0
	}
	//
	w := q + uint(nbits) + kernelGuard
	piw := piKernel(w)
	//
	var twopi, n, r big.Int
	//
	twopi.Lsh(piw, 1)
	xw := fixShift(m, int(w)-int(s))
	// round to nearest multiple of 2*pi
	r.Add(xw, piw)
	floorDiv(&n, &r, &twopi)
	n.Mul(&n, &twopi)
	r.Sub(xw, &n)
	//
	return &r, w
}

// atanKernel computes atan(m * 2^-s) at precision q.  Arguments above one are
// inverted via atan(x) = pi/2 - atan(1/x), then the argument is halved twice
// using atan(y) = 2*atan(y / (1 + sqrt(1 + y^2))) before the Taylor series.
func atanKernel(m *big.Int, s uint, q uint) *big.Int {
	if m.Sign() == 0 {
		return big.NewInt(0)
	}
	//
	w := q + kernelGuard
	xw := fixShift(m, int(w)-int(s))
	neg := xw.Sign() < 0
	xw.Abs(xw)
	//
	inverted := false
	//
	if xw.Cmp(pow2(w)) > 0 {
		var inv big.Int
		//
		inv.Lsh(big.NewInt(1), 2*w)
		xw.Quo(&inv, xw)
		inverted = true
	}
	// Two halvings bring the argument below tan(pi/16) < 1/5.
	for j := 0; j < 2; j++ {
		var d, denom big.Int
		//
		d.Mul(xw, xw)
		d.Add(&d, pow2(2*w))
		d.Sqrt(&d)
		denom.Add(pow2(w), &d)
		xw.Lsh(xw, w)
		xw.Quo(xw, &denom)
	}
	// atan(y) = y - y^3/3 + y^5/5 - ...
	var y2, t, sum big.Int
	//
	y2.Mul(xw, xw)
	y2.Rsh(&y2, w)
	t.Set(xw)
	sum.Set(xw)
	//
	for i := int64(1); ; i++ {
		t.Mul(&t, &y2)
		quoPow2(&t, w)
		//
		if t.Sign() == 0 {
			break
		}
		//
		var term big.Int
		//
		term.Quo(&t, big.NewInt(2*i+1))
		//
		if i%2 == 1 {
			sum.Sub(&sum, &term)
		} else {
			sum.Add(&sum, &term)
		}
	}
	// Undo the two halvings.
	sum.Lsh(&sum, 2)
	//
	if inverted {
		var half big.Int
		//
		half.Rsh(piKernel(w), 1)
		sum.Sub(&half, &sum)
	}
	//
	if neg {
		sum.Neg(&sum)
	}
	//
	return sum.Rsh(&sum, w-q)
}

// piKernel computes pi at precision q using Machin's formula
// pi = 16*atan(1/5) - 4*atan(1/239).
func piKernel(q uint) *big.Int {
	w := q + 32
	//
	var pi, t big.Int
	//
	pi.Lsh(atanRecipKernel(5, w), 4)
	t.Lsh(atanRecipKernel(239, w), 2)
	pi.Sub(&pi, &t)
	//
	return pi.Rsh(&pi, 32)
}

// atanRecipKernel computes atan(1/k) at precision w by direct integer
// summation of the Taylor series.
func atanRecipKernel(k int64, w uint) *big.Int {
	var t, sum big.Int
	//
	ksq := big.NewInt(k * k)
	t.Quo(pow2(w), big.NewInt(k))
	sum.Set(&t)
	//
	for i := int64(1); ; i++ {
		t.Quo(&t, ksq)
		//
		if t.Sign() == 0 {
			break
		}
		//
		var term big.Int
		//
		term.Quo(&t, big.NewInt(2*i+1))
		//
		if i%2 == 1 {
			sum.Sub(&sum, &term)
		} else {
			sum.Add(&sum, &term)
		}
	}
	//
	return &sum
}

// ln2Fixed computes log(2) at precision w via log(2) = 2*atanh(1/3).
func ln2Fixed(w uint) *big.Int {
	var t, sum big.Int
	//
	t.Quo(pow2(w), big.NewInt(3))
	sum.Set(&t)
	//
	for i := int64(1); ; i++ {
		t.Quo(&t, big.NewInt(9))
		//
		if t.Sign() == 0 {
			break
		}
		//
		var term big.Int
		//
		term.Quo(&t, big.NewInt(2*i+1))
		sum.Add(&sum, &term)
	}
	//
	return sum.Lsh(&sum, 1)
}

// fixShift computes m * 2^shift, rounding towards negative infinity for
// negative shifts.
func fixShift(m *big.Int, shift int) *big.Int {
	var v big.Int
	//
	if shift >= 0 {
		v.Lsh(m, uint(shift))
	} else {
		v.Set(m)
		floorShift(&v, uint(-shift))
	}
	//
	return &v
}

// quoPow2 divides a value by 2^w in place, truncating towards zero.  Series
// loops rely on truncation (rather than flooring) so that shrinking terms
// reach exactly zero.
func quoPow2(t *big.Int, w uint) {
	t.Quo(t, pow2(w))
}

func pow2(k uint) *big.Int {
	var v big.Int
	//
	v.Lsh(big.NewInt(1), k)
	//
	return &v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	//
	return v
}
