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

// Transcendental operators.  Monotone functions are evaluated at the operand
// enclosure endpoints, which yields a valid enclosure directly; sin and cos
// are evaluated at the enclosure midpoint and widened by the enclosure radius
// (both have Lipschitz constant one).  The remaining operators are defined by
// composition.
//
// Domain-error policy: operators whose mathematical domain is restricted
// (Sqrt, Log, Asin, Acos, Acosh, Atanh) panic once the operand enclosure
// provably leaves the domain.  Operands sitting exactly on a domain boundary
// can be neither accepted nor rejected by any finite enclosure, so they
// diverge instead; this mirrors the behaviour of Sign on zero.

import (
	"math/big"
)

// resultBitsLimit bounds how large an exponent-like magnitude may grow before
// evaluation is abandoned; beyond this the result would not fit in memory.
const resultBitsLimit = 1 << 24

// Pi returns the exact circle constant.
func Pi() Real {
	return newReal(func(p uint) Approximation {
		v := piKernel(p + 4)
		a := slopped(v, v, p+4)
		//
		return a.At(p)
	})
}

// Sqrt returns the exact square root of this value.  Panics if the value is
// provably negative; a value which is exactly zero on its lower side is fine
// (the enclosure is clamped at zero).
func (x Real) Sqrt() Real {
	return newReal(func(p uint) Approximation {
		s := 2 * (p + 2)
		a := x.Appr(s)
		//
		if a.upper.Sign() < 0 {
			panic("sqrt of negative value")
		}
		//
		var lower, upper big.Int
		// sqrt(v * 2^-s) = isqrt(v) * 2^-(p+2), since s = 2*(p+2)
		if a.lower.Sign() > 0 {
			lower.Sqrt(&a.lower)
		}
		//
		if a.upper.Sign() > 0 {
			upper.Sqrt(&a.upper)
		}
		//
		upper.Add(&upper, big.NewInt(1))
		//
		b := NewApproximation(lower, upper, p+2)
		//
		return b.At(p)
	})
}

// Exp returns the exact exponential of this value.
func (x Real) Exp() Real {
	return newReal(func(p uint) Approximation {
		// exp' = exp, so pad the operand precision by the magnitude of
		// the result.
		ebits := x.expResultBits()
		s := p + ebits + 8
		a := x.Appr(s)
		//
		lo := expKernel(&a.lower, s, p+4)
		hi := expKernel(&a.upper, s, p+4)
		b := slopped(lo, hi, p+4)
		//
		return b.At(p)
	})
}

// Log returns the exact natural logarithm of this value.  Panics if the value
// is provably non-positive; a value which is exactly zero diverges, as its
// logarithm has no finite enclosure.
func (x Real) Log() Real {
	return newReal(func(p uint) Approximation {
		// Refine until the operand is bounded away from zero.
		q, coarse := x.refinePositive()
		// 1/x <= 2^e bounds the derivative
		e := int(q) - (coarse.lower.BitLen() - 1)
		if e < 0 {
			e = 0
		}
		//
		s := p + uint(e) + 8
		a := x.Appr(s)
		// For wide intervals the refined lower bound can still touch
		// zero; fall back on the coarse positive bound.
		mlo, slo := &a.lower, s
		if a.lower.Sign() <= 0 {
			mlo, slo = &coarse.lower, q
		}
		//
		lo := logKernel(mlo, slo, p+4)
		hi := logKernel(&a.upper, s, p+4)
		b := slopped(lo, hi, p+4)
		//
		return b.At(p)
	})
}

// Sin returns the exact sine of this value.
func (x Real) Sin() Real {
	return lipschitzUnit(x, sinKernel)
}

// Cos returns the exact cosine of this value.
func (x Real) Cos() Real {
	return lipschitzUnit(x, cosKernel)
}

// Tan returns the exact tangent of this value.  Near the poles the quotient
// refines the cosine enclosure away from zero, so a value exactly at a pole
// diverges.
func (x Real) Tan() Real {
	return x.Sin().Div(x.Cos())
}

// Atan returns the exact arctangent of this value.
func (x Real) Atan() Real {
	return newReal(func(p uint) Approximation {
		// atan' <= 1 everywhere
		s := p + 8
		a := x.Appr(s)
		//
		lo := atanKernel(&a.lower, s, p+4)
		hi := atanKernel(&a.upper, s, p+4)
		b := slopped(lo, hi, p+4)
		//
		return b.At(p)
	})
}

// Asin returns the exact arcsine of this value.  Panics (via Sqrt) if the
// value is provably outside [-1, 1]; values exactly at the endpoints diverge.
func (x Real) Asin() Real {
	one := FromInt64(1)
	return x.Div(one.Sub(x.Mul(x)).Sqrt()).Atan()
}

// Acos returns the exact arccosine of this value, with the same domain
// behaviour as Asin.
func (x Real) Acos() Real {
	return Pi().Scale(-1).Sub(x.Asin())
}

// Sinh returns the exact hyperbolic sine of this value.
func (x Real) Sinh() Real {
	return x.Exp().Sub(x.Neg().Exp()).Scale(-1)
}

// Cosh returns the exact hyperbolic cosine of this value.
func (x Real) Cosh() Real {
	return x.Exp().Add(x.Neg().Exp()).Scale(-1)
}

// Tanh returns the exact hyperbolic tangent of this value.
func (x Real) Tanh() Real {
	return x.Sinh().Div(x.Cosh())
}

// Asinh returns the exact inverse hyperbolic sine of this value.
func (x Real) Asinh() Real {
	one := FromInt64(1)
	return x.Add(x.Mul(x).Add(one).Sqrt()).Log()
}

// Acosh returns the exact inverse hyperbolic cosine of this value.  Panics
// (via Sqrt) if the value is provably below one.
func (x Real) Acosh() Real {
	one := FromInt64(1)
	return x.Add(x.Mul(x).Sub(one).Sqrt()).Log()
}

// Atanh returns the exact inverse hyperbolic tangent of this value.  Panics
// (via Log) if the value is provably outside (-1, 1).
func (x Real) Atanh() Real {
	one := FromInt64(1)
	return one.Add(x).Div(one.Sub(x)).Log().Scale(-1)
}

// lipschitzUnit encloses f(x) for a kernel whose function has Lipschitz
// constant at most one, by evaluating at the enclosure midpoint and widening
// by the enclosure radius.
func lipschitzUnit(x Real, kernel func(*big.Int, uint, uint) *big.Int) Real {
	return newReal(func(p uint) Approximation {
		s := p + 8
		a := x.Appr(s)
		//
		mid := a.Midpoint()
		v := kernel(&mid, s, p+4)
		// radius: half the enclosure width, rescaled from s to p+4
		var rad big.Int
		//
		rad.Set(&a.upper)
		rad.Sub(&rad, &a.lower)
		rad.Add(&rad, big.NewInt(1))
		rad.Rsh(&rad, 1)
		ceilShift(&rad, 4)
		//
		var lower, upper big.Int
		//
		lower.Sub(v, &rad)
		upper.Add(v, &rad)
		//
		b := slopped(&lower, &upper, p+4)
		//
		return b.At(p)
	})
}

// slopped builds an approximation from kernel outputs, widened by the kernel
// error bound.
func slopped(lo *big.Int, hi *big.Int, precision uint) Approximation {
	var lower, upper big.Int
	//
	lower.Sub(lo, big.NewInt(kernelSlop))
	upper.Add(hi, big.NewInt(kernelSlop))
	//
	return NewApproximation(lower, upper, precision)
}

// expResultBits bounds the number of integer bits in exp(x), from a coarse
// upper enclosure of x.
func (x Real) expResultBits() uint {
	a := x.Appr(8)
	//
	if a.upper.Sign() <= 0 {
		return 0
	}
	// 1.5 * upper + 2, with upper in units of 2^-8
	var e big.Int
	//
	e.Mul(&a.upper, big.NewInt(3))
	e.Rsh(&e, 9)
	e.Add(&e, big.NewInt(2))
	//
	if !e.IsUint64() || e.Uint64() > resultBitsLimit {
		panic("exp argument too large")
	}
	//
	return uint(e.Uint64())
}

// refinePositive refines this value until its enclosure is strictly
// positive, returning the precision reached and the enclosure found.  Panics
// when the value is provably non-positive; diverges when it is exactly zero.
func (x Real) refinePositive() (uint, Approximation) {
	for q := uint(8); ; q *= 2 {
		a := x.Appr(q)
		//
		if a.upper.Sign() <= 0 {
			panic("log of non-positive value")
		}
		//
		if a.lower.Sign() > 0 {
			return q, a
		}
		//
		warnSlowRefinement("separating enclosure from zero", q)
	}
}
