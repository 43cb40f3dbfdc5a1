// Package polyn is for arithmetic with polynomials in one variable.
/*
BSD 3-Clause License

Copyright (c) 2017–21, Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package polyn

import (
	"bytes"
	"fmt"
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/curves"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the polynomials tracer.
func T() tracing.Trace {
	return tracing.Select("curves.polyn")
}

// X is a helper for quick construction of polynomials.
// It denotes a term
//
//	C⋅x^I
//
// I > 0
type X struct {
	I int     // exponent of x
	C float64 // coefficient
}

// New creates a polynomial, given the term coefficients and exponents
//
// Use it as
//
//	polyn.New(8, polyn.X{2,5}, polyn.X{1,2/3} )
//
// to get
//
//	P(x) = 8 + 2/3x + 5x²
func New(c float64, tms ...X) (Polynomial, error) {
	p := NewConstantPolynomial(c)
	var err error
	for _, t := range tms {
		if t.I < 1 {
			T().Errorf("term exponent must be at least 1, have %d", t.I)
			err = fmt.Errorf("term exponent must be at least 1, skipping it")
		} else {
			p.SetTerm(t.I, t.C)
		}
	}
	return p.Zap(), err
}

// Polynomial is a type for polynomials in one variable
//
//	c + a.1 x + a.2 x² + ... a.n x^n .
//
// We store the coefficients only, keyed by exponent. Index 0 is the
// constant term. Coefficients live in a TreeMap (sorted map), so terms
// are always visited in ascending order of exponents.
type Polynomial struct {
	Terms *treemap.Map
}

// NewConstantPolynomial creates a Polynomial consisting of just a constant term.
func NewConstantPolynomial(c float64) Polynomial {
	p := Polynomial{}
	p.checkTerms()
	p.Terms.Put(0, c) // initialize with constant term (at position 0)
	return p.Zap()
}

func (p *Polynomial) checkTerms() {
	if p.Terms == nil {
		p.Terms = treemap.NewWithIntComparator()
	}
}

// SetTerm sets the coefficient for a term a.i within a Polynomial.
// For i=0, sets the constant term.
func (p Polynomial) SetTerm(i int, scale float64) Polynomial {
	p.checkTerms()
	p.Terms.Put(i, scale)
	return p
}

// GetCoeffForTerm gets the coefficient for term # i.
//
// Example:
//
//	p = x + 3x²
//
// ⇒
//
//	coeff(2) = 3
func (p Polynomial) GetCoeffForTerm(i int) float64 {
	p.checkTerms()
	if sc, found := p.Terms.Get(i); found {
		return sc.(float64)
	}
	return 0.0
}

// Exponents returns the exponents of all terms present, in ascending order.
func (p Polynomial) Exponents() []int {
	p.checkTerms()
	keys := p.Terms.Keys()
	exps := make([]int, len(keys))
	for i, k := range keys {
		exps[i] = k.(int)
	}
	return exps
}

// Degree returns the highest exponent with a non-zero coefficient.
// Constant polynomials have degree 0.
func (p Polynomial) Degree() int {
	exps := p.Exponents()
	if len(exps) == 0 {
		return 0
	}
	return exps[len(exps)-1]
}

// IsConstant checks wether
// a Polynomial is a constant, i.e. p = { c }? Returns the constant and a flag.
func (p Polynomial) IsConstant() (float64, bool) {
	p.checkTerms()
	return p.GetCoeffForTerm(0), p.Terms.Size() == 1
}

// IsValid checks if this a correctly initialized polynomial.
func (p Polynomial) IsValid() bool {
	return (p.Terms != nil)
}

// CopyPolynomial makes a copy of a Polynomial.
func (p Polynomial) CopyPolynomial() Polynomial {
	p1 := NewConstantPolynomial(0.0) // will become our return value
	p.checkTerms()
	it := p.Terms.Iterator()
	for it.Next() { // copy all terms of p into p1
		p1.SetTerm(it.Key().(int), it.Value().(float64))
	}
	return p1
}

// Zap eliminates all terms with coefficient=0 from a polynomial.
// The constant term is always kept.
func (p Polynomial) Zap() Polynomial {
	p.checkTerms()
	positions := p.Terms.Keys()
	for _, pos := range positions {
		if scale, _ := p.Terms.Get(pos); curves.Zap(scale.(float64)) == 0 {
			p.Terms.Remove(pos) // may lose constant term c
		}
	}
	if _, ok := p.Terms.Get(0); !ok {
		p.Terms.Put(0, 0.0) // set p = 0: re-introduce c
	}
	return p
}

// Add adds two Polynomials. Returns a new Polynomial, leaving both
// operands unchanged.
func (p Polynomial) Add(p2 Polynomial) Polynomial {
	p1 := p.CopyPolynomial()
	p2.checkTerms()
	it := p2.Terms.Iterator()
	for it.Next() {
		pos := it.Key().(int)
		p1.SetTerm(pos, p1.GetCoeffForTerm(pos)+it.Value().(float64))
	}
	return p1.Zap()
}

// Scale multiplies all coefficients by a. Returns a new Polynomial.
func (p Polynomial) Scale(a float64) Polynomial {
	p1 := p.CopyPolynomial()
	it := p1.Terms.Iterator()
	for it.Next() {
		p1.SetTerm(it.Key().(int), it.Value().(float64)*a)
	}
	return p1.Zap()
}

// Derivative returns the first derivative p'. Returns a new Polynomial.
func (p Polynomial) Derivative() Polynomial {
	d := NewConstantPolynomial(0.0)
	p.checkTerms()
	it := p.Terms.Iterator()
	for it.Next() {
		pos := it.Key().(int)
		if pos == 0 {
			continue
		}
		d.SetTerm(pos-1, float64(pos)*it.Value().(float64))
	}
	return d.Zap()
}

// Eval evaluates p at x, using Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	n := p.Degree()
	r := p.GetCoeffForTerm(n)
	for i := n - 1; i >= 0; i-- {
		r = r*x + p.GetCoeffForTerm(i)
	}
	return r
}

// String creates a readable string representation for a Polynomial, in
// ascending order of exponents. Coefficients are rounded to the 7th place.
//
// Example:
//
//	1 - 3x + 2x^3
func (p Polynomial) String() string {
	var buffer bytes.Buffer
	p.checkTerms()
	it := p.Terms.Iterator()
	var indent = false // no sign space before first term
	for it.Next() {
		pos := it.Key().(int)
		scale := it.Value().(float64)
		if pos == 0 {
			if !curves.Is0(scale) || p.Terms.Size() == 1 {
				buffer.WriteString(fmt.Sprintf("%g", round(scale)))
				indent = true
			}
			continue
		}
		if indent {
			if scale < 0.0 {
				buffer.WriteString(" - ")
			} else {
				buffer.WriteString(" + ")
			}
		} else {
			indent = true
			if scale < 0.0 {
				buffer.WriteString("-")
			}
		}
		if !curves.Is1(math.Abs(scale)) {
			buffer.WriteString(fmt.Sprintf("%g", round(math.Abs(scale))))
		}
		buffer.WriteString("x")
		if pos > 1 {
			buffer.WriteString(fmt.Sprintf("^%d", pos))
		}
	}
	return buffer.String()
}

// Round to the 7th place.
func round(n float64) float64 {
	return math.Round(n*1e7) / 1e7
}
