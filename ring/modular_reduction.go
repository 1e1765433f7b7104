package ring

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/ntru/utils/bignum"
)

// Reduce returns p with each coefficient c = n/d replaced by n * d^-1 mod |k|, in [0, |k|).
// It returns ErrInvalidModulus if k is zero and ErrNotInvertible if a denominator
// is not coprime with k.
func (p Poly) Reduce(k *big.Int) (Poly, error) {

	if k.Sign() == 0 {
		return Poly{}, fmt.Errorf("cannot Reduce: %w", ErrInvalidModulus)
	}

	out := make([]*big.Rat, p.Len())

	for i, c := range p.coeffs {
		x, err := bignum.RatModulo(c, k)
		if err != nil {
			return Poly{}, fmt.Errorf("cannot Reduce: coefficient %d = %s: %w", i, c.RatString(), err)
		}
		out[i] = new(big.Rat).SetInt(x)
	}

	return Poly{coeffs: Trim(out)}, nil
}

// CenterLift returns the representative of p mod q whose coefficients lie in (-|q|/2, |q|/2].
// The coefficients are first reduced in [0, |q|) with [Poly.Reduce], then every x with 2x > |q|
// is mapped to x - |q|. The comparison is exact, so for even q the midpoint |q|/2 is kept.
func (p Poly) CenterLift(q *big.Int) (Poly, error) {

	r, err := p.Reduce(q)
	if err != nil {
		return Poly{}, fmt.Errorf("cannot CenterLift: %w", err)
	}

	qAbs := new(big.Rat).SetInt(new(big.Int).Abs(q))
	twice := new(big.Rat)

	for _, c := range r.coeffs {
		if twice.Add(c, c).Cmp(qAbs) > 0 {
			c.Sub(c, qAbs)
		}
	}

	return Poly{coeffs: Trim(r.coeffs)}, nil
}
