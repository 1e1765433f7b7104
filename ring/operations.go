package ring

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/ntru/utils/bignum"
)

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	a, b := Resize(p, q)
	for i := range a {
		a[i] = bignum.AddRat(a[i], b[i])
	}
	return Poly{coeffs: Trim(a)}
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	a, b := Resize(p, q)
	for i := range a {
		a[i] = bignum.SubRat(a[i], b[i])
	}
	return Poly{coeffs: Trim(a)}
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	out := make([]*big.Rat, p.Len())
	for i, c := range p.coeffs {
		out[i] = bignum.NegRat(c)
	}
	return Poly{coeffs: out}
}

// Mul returns p * q, computed by schoolbook convolution.
func (p Poly) Mul(q Poly) Poly {

	if p.IsZero() || q.IsZero() {
		return Poly{}
	}

	out := newZeroCoeffs(p.Len() + q.Len() - 1)

	for i, pi := range p.coeffs {
		for j, qj := range q.coeffs {
			out[i+j] = bignum.AddRat(out[i+j], bignum.MulRat(pi, qj))
		}
	}

	return Poly{coeffs: Trim(out)}
}

// MulScalar returns c * p.
func (p Poly) MulScalar(c *big.Rat) Poly {
	if c.Sign() == 0 {
		return Poly{}
	}
	out := make([]*big.Rat, p.Len())
	for i, pi := range p.coeffs {
		out[i] = bignum.MulRat(pi, c)
	}
	return Poly{coeffs: out}
}

// MulByMonomial returns p * X^k. It panics if k is negative.
func (p Poly) MulByMonomial(k int) Poly {
	if k < 0 {
		panic(fmt.Sprintf("cannot MulByMonomial: k=%d must be non-negative", k))
	}
	if p.IsZero() {
		return Poly{}
	}
	out := newZeroCoeffs(p.Len() + k)
	for i := range p.coeffs {
		out[i+k].Set(p.coeffs[i])
	}
	return Poly{coeffs: out}
}

// QuoScalar returns p / c, or ErrDivisionByZero if c is zero.
func (p Poly) QuoScalar(c *big.Rat) (Poly, error) {
	inv, err := bignum.QuoRat(ratOne, c)
	if err != nil {
		return Poly{}, fmt.Errorf("cannot QuoScalar: %w", err)
	}
	return p.MulScalar(inv), nil
}

// Monic returns p divided by its leading coefficient.
// It returns ErrDivisionByZero if p is the zero polynomial.
func (p Poly) Monic() (Poly, error) {
	if p.IsZero() {
		return Poly{}, fmt.Errorf("cannot Monic: zero polynomial: %w", ErrDivisionByZero)
	}
	return p.QuoScalar(p.coeffs[p.Degree()])
}

// DivMod returns the quotient and remainder of the long division of p by d over
// the rationals, such that p = quo * d + rem with deg(rem) < deg(d).
// Coefficients of quo and rem may be non-integers even if p and d are integer polynomials.
// It returns ErrDivisionByZero if d is the zero polynomial.
func (p Poly) DivMod(d Poly) (quo, rem Poly, err error) {

	if d.IsZero() {
		return Poly{}, Poly{}, fmt.Errorf("cannot DivMod: %w", ErrDivisionByZero)
	}

	degD := d.Degree()

	if p.Degree() < degD {
		return Poly{}, p.CopyNew(), nil
	}

	q := newZeroCoeffs(p.Degree() - degD + 1)
	r := p.Coeffs()

	// r is kept trimmed: len(r)-1 is its degree.
	for len(r) != 0 && len(r)-1 >= degD {

		degR := len(r) - 1
		shift := degR - degD

		factor, err := bignum.QuoRat(r[degR], d.coeffs[degD])
		if err != nil {
			return Poly{}, Poly{}, fmt.Errorf("cannot DivMod: %w", err)
		}
		q[shift] = factor

		for i, di := range d.coeffs {
			r[i+shift] = bignum.SubRat(r[i+shift], bignum.MulRat(factor, di))
		}

		r = Trim(r[:degR])
	}

	return Poly{coeffs: Trim(q)}, Poly{coeffs: r}, nil
}

// Div returns the quotient of the long division of p by d, see [Poly.DivMod].
func (p Poly) Div(d Poly) (Poly, error) {
	quo, _, err := p.DivMod(d)
	return quo, err
}

// Mod returns the remainder of the long division of p by d, see [Poly.DivMod].
func (p Poly) Mod(d Poly) (Poly, error) {
	_, rem, err := p.DivMod(d)
	return rem, err
}
