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
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/consensys/go-ireal/pkg/ireal"
)

// functions maps recognised function names onto the operator catalog.
var functions = map[string]func(ireal.Real) ireal.Real{
	"abs":   ireal.Real.Abs,
	"sqrt":  ireal.Real.Sqrt,
	"exp":   ireal.Real.Exp,
	"log":   ireal.Real.Log,
	"sin":   ireal.Real.Sin,
	"cos":   ireal.Real.Cos,
	"tan":   ireal.Real.Tan,
	"asin":  ireal.Real.Asin,
	"acos":  ireal.Real.Acos,
	"atan":  ireal.Real.Atan,
	"sinh":  ireal.Real.Sinh,
	"cosh":  ireal.Real.Cosh,
	"tanh":  ireal.Real.Tanh,
	"asinh": ireal.Real.Asinh,
	"acosh": ireal.Real.Acosh,
	"atanh": ireal.Real.Atanh,
}

// constants maps recognised constant names onto values.
var constants = map[string]func() ireal.Real{
	"pi": ireal.Pi,
	"e":  func() ireal.Real { return ireal.FromInt64(1).Exp() },
}

// ParseExpr parses a simple arithmetic expression over decimal literals,
// named constants and the function catalog, returning the exact real it
// denotes.
func ParseExpr(input string) (ireal.Real, error) {
	p := &exprParser{input: input}
	//
	val, err := p.parseSum()
	if err != nil {
		return ireal.Real{}, err
	}
	//
	p.skipSpace()
	//
	if p.pos != len(p.input) {
		return ireal.Real{}, fmt.Errorf("unexpected input at offset %d", p.pos)
	}
	//
	return val, nil
}

// exprParser is a recursive descent parser with the usual two precedence
// levels.
type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) parseSum() (ireal.Real, error) {
	val, err := p.parseTerm()
	//
	for err == nil {
		p.skipSpace()
		//
		switch {
		case p.match("+"):
			var rhs ireal.Real
			//
			if rhs, err = p.parseTerm(); err == nil {
				val = val.Add(rhs)
			}
		case p.match("-"):
			var rhs ireal.Real
			//
			if rhs, err = p.parseTerm(); err == nil {
				val = val.Sub(rhs)
			}
		default:
			return val, nil
		}
	}
	//
	return val, err
}

func (p *exprParser) parseTerm() (ireal.Real, error) {
	val, err := p.parseUnary()
	//
	for err == nil {
		p.skipSpace()
		//
		switch {
		case p.match("*"):
			var rhs ireal.Real
			//
			if rhs, err = p.parseUnary(); err == nil {
				val = val.Mul(rhs)
			}
		case p.match("/"):
			var rhs ireal.Real
			//
			if rhs, err = p.parseUnary(); err == nil {
				val = val.Div(rhs)
			}
		default:
			return val, nil
		}
	}
	//
	return val, err
}

func (p *exprParser) parseUnary() (ireal.Real, error) {
	p.skipSpace()
	//
	if p.match("-") {
		val, err := p.parseUnary()
		return val.Neg(), err
	}
	//
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (ireal.Real, error) {
	p.skipSpace()
	//
	switch {
	case p.match("("):
		val, err := p.parseSum()
		//
		if err == nil && !p.match(")") {
			err = fmt.Errorf("expected ')' at offset %d", p.pos)
		}
		//
		return val, err
	case p.pos < len(p.input) && unicode.IsLetter(rune(p.input[p.pos])):
		return p.parseSymbol()
	default:
		return p.parseNumber()
	}
}

func (p *exprParser) parseSymbol() (ireal.Real, error) {
	start := p.pos
	//
	for p.pos < len(p.input) && unicode.IsLetter(rune(p.input[p.pos])) {
		p.pos++
	}
	//
	name := p.input[start:p.pos]
	//
	if constant, ok := constants[name]; ok {
		return constant(), nil
	}
	//
	fn, ok := functions[name]
	if !ok {
		return ireal.Real{}, fmt.Errorf("unknown symbol %q", name)
	}
	//
	if !p.match("(") {
		return ireal.Real{}, fmt.Errorf("expected '(' after %q", name)
	}
	//
	arg, err := p.parseSum()
	//
	if err == nil && !p.match(")") {
		err = fmt.Errorf("expected ')' at offset %d", p.pos)
	}
	//
	return fn(arg), err
}

func (p *exprParser) parseNumber() (ireal.Real, error) {
	start := p.pos
	//
	for p.pos < len(p.input) && (unicode.IsDigit(rune(p.input[p.pos])) || p.input[p.pos] == '.') {
		p.pos++
	}
	//
	if start == p.pos {
		return ireal.Real{}, fmt.Errorf("expected number at offset %d", start)
	}
	//
	var rat big.Rat
	//
	if _, ok := rat.SetString(p.input[start:p.pos]); !ok {
		return ireal.Real{}, fmt.Errorf("invalid number %q", p.input[start:p.pos])
	}
	//
	return ireal.FromBigRat(&rat), nil
}

func (p *exprParser) match(tok string) bool {
	p.skipSpace()
	//
	if strings.HasPrefix(p.input[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}
	//
	return false
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}
