// Package ring implements exact arithmetic on univariate polynomials with rational
// coefficients, their reduction into Z_k, and the quotient rings Z_k[X]/(X^N - 1)
// used by NTRU-style cryptosystems.
package ring

import (
	"fmt"
	"math/big"

	log "github.com/sirupsen/logrus"
)

// Ring is the quotient ring Z_k[X]/(X^N - 1).
// Elements are represented by polynomials of degree smaller than N with
// coefficients in [0, k).
type Ring struct {
	n          int
	modulus    *big.Int
	cyclotomic Poly
}

// NewRing creates a new Ring of degree N and modulus k.
// It returns an error if N < 1 or k < 2.
func NewRing(N int, modulus *big.Int) (r *Ring, err error) {

	if N < 1 {
		return nil, fmt.Errorf("cannot NewRing: invalid ring degree %d (must be at least 1): %w", N, ErrInvalidInput)
	}

	if modulus == nil || modulus.Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("cannot NewRing: invalid modulus %v (must be at least 2): %w", modulus, ErrInvalidModulus)
	}

	xN1 := newZeroCoeffs(N + 1)
	xN1[0].SetInt64(-1)
	xN1[N].SetInt64(1)

	return &Ring{
		n:          N,
		modulus:    new(big.Int).Set(modulus),
		cyclotomic: Poly{coeffs: xN1},
	}, nil
}

// N returns the degree of the ring.
func (r Ring) N() int {
	return r.n
}

// Modulus returns a copy of the coefficient modulus k.
func (r Ring) Modulus() *big.Int {
	return new(big.Int).Set(r.modulus)
}

// Cyclotomic returns X^N - 1.
func (r Ring) Cyclotomic() Poly {
	return r.cyclotomic.CopyNew()
}

// Fold returns p mod X^N - 1, i.e. the coefficient of X^i is added to the one of X^(i mod N).
// Coefficients are not reduced modulo k.
func (r Ring) Fold(p Poly) Poly {

	if p.Len() <= r.n {
		return p.CopyNew()
	}

	out := newZeroCoeffs(r.n)
	for i, c := range p.coeffs {
		out[i%r.n].Add(out[i%r.n], c)
	}

	return Poly{coeffs: Trim(out)}
}

// Reduce returns p mod (X^N - 1, k), see [Poly.Reduce] for the errors.
func (r Ring) Reduce(p Poly) (Poly, error) {
	return r.Fold(p).Reduce(r.modulus)
}

// CenterLift returns p mod (X^N - 1, k) with coefficients in (-k/2, k/2].
func (r Ring) CenterLift(p Poly) (Poly, error) {
	return r.Fold(p).CenterLift(r.modulus)
}

// Add returns p + q in the ring.
func (r Ring) Add(p, q Poly) (Poly, error) {
	return r.Reduce(p.Add(q))
}

// Sub returns p - q in the ring.
func (r Ring) Sub(p, q Poly) (Poly, error) {
	return r.Reduce(p.Sub(q))
}

// Mul returns p * q in the ring (cyclic convolution followed by a reduction modulo k).
func (r Ring) Mul(p, q Poly) (Poly, error) {
	return r.Reduce(r.Fold(p).Mul(r.Fold(q)))
}

// IsTernary returns true if p is an element of the ring with every coefficient in
// {-1, 0, 1}, alpha of them equal to 1 and beta equal to -1. Unlike the package-level
// [IsTernary], it rejects any other coefficient value.
func (r Ring) IsTernary(p Poly, alpha, beta int) bool {
	return p.Degree() < r.n && alpha+beta <= r.n && isStrictlyTernary(p) && IsTernary(p, alpha, beta)
}

// Inverse returns f^-1 in the ring.
//
// The Bézout coefficient t of ExtendedGCD(X^N - 1, f) is the inverse of f in
// Q[X]/(X^N - 1) when the gcd is 1, and is then reduced modulo k. Since that inverse
// is unique, f is invertible modulo k exactly when every denominator of t is
// coprime with k; this holds for prime-power moduli such as k = 2048 as well.
//
// It returns ErrNotInvertible if f is not invertible in the ring.
func (r Ring) Inverse(f Poly) (Poly, error) {

	f = r.Fold(f)

	g, _, t, err := ExtendedGCD(r.cyclotomic, f)
	if err != nil {
		return Poly{}, fmt.Errorf("cannot Inverse: %w", err)
	}

	if !g.IsOne() {
		log.Debugf("ring: f=%x: gcd(X^%d - 1, f) = %v", f.Digest(), r.n, g)
		return Poly{}, fmt.Errorf("cannot Inverse: gcd(X^%d - 1, f) has degree %d: %w", r.n, g.Degree(), ErrNotInvertible)
	}

	fInv, err := t.Reduce(r.modulus)
	if err != nil {
		log.Debugf("ring: f=%x: inverse over Q does not reduce modulo %v: %v", f.Digest(), r.modulus, err)
		return Poly{}, fmt.Errorf("cannot Inverse: %w", err)
	}

	return fInv, nil
}
