package ring

import (
	"fmt"
)

// ExtendedGCD returns (g, s, t) such that a*s + b*t = g, where g is the monic
// greatest common divisor of a and b over the rationals.
//
// The remainder sequence r0 = a, r1 = b, r(i+1) = r(i-1) mod r(i) is run until it
// reaches zero, while the Bézout coefficients follow s(i+1) = s(i-1) - q(i)*s(i)
// (same for t) from s0 = 1, s1 = 0, t0 = 0, t1 = 1. The last non-zero remainder and
// its coefficients are then scaled by the inverse of its leading coefficient.
// If deg(a) < deg(b) the operands are swapped and the returned s, t swapped back.
//
// It returns ErrInvalidInput if both a and b are zero.
func ExtendedGCD(a, b Poly) (g, s, t Poly, err error) {

	if a.IsZero() && b.IsZero() {
		return Poly{}, Poly{}, Poly{}, fmt.Errorf("cannot ExtendedGCD: both operands are zero: %w", ErrInvalidInput)
	}

	swapped := a.Degree() < b.Degree()
	if swapped {
		a, b = b, a
	}

	rPrev, rNext := a, b
	sPrev, sNext := NewPolyFromInt64(1), Poly{}
	tPrev, tNext := Poly{}, NewPolyFromInt64(1)

	for !rNext.IsZero() {

		var quo, rem Poly
		if quo, rem, err = rPrev.DivMod(rNext); err != nil {
			return Poly{}, Poly{}, Poly{}, fmt.Errorf("cannot ExtendedGCD: %w", err)
		}

		rPrev, rNext = rNext, rem
		sPrev, sNext = sNext, sPrev.Sub(quo.Mul(sNext))
		tPrev, tNext = tNext, tPrev.Sub(quo.Mul(tNext))
	}

	lead := rPrev.Leading()

	if g, err = rPrev.QuoScalar(lead); err != nil {
		return Poly{}, Poly{}, Poly{}, fmt.Errorf("cannot ExtendedGCD: %w", err)
	}

	// lead is non-zero, QuoScalar cannot fail from here on.
	s, _ = sPrev.QuoScalar(lead)
	t, _ = tPrev.QuoScalar(lead)

	if swapped {
		s, t = t, s
	}

	return g, s, t, nil
}
