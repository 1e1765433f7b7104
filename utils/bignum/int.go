package bignum

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// NewInt allocates a new *big.Int.
// Accepted types are: string, uint, uint64, int64, int, *big.Rat (if integral) or *big.Int.
func NewInt(x interface{}) (y *big.Int) {

	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		y.SetString(x, 0)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case int64:
		y.SetInt64(x)
	case int:
		y.SetInt64(int64(x))
	case *big.Rat:
		if !x.IsInt() {
			panic(fmt.Sprintf("cannot NewInt: %v is not an integer", x))
		}
		y.Set(x.Num())
	case *big.Int:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot NewInt: accepted types are string, uint, uint64, int, int64, *big.Rat, *big.Int, but is %T", x))
	}

	return
}

// RandInt generates a random Int in [0, max-1].
func RandInt(reader io.Reader, max *big.Int) (n *big.Int) {
	var err error
	if n, err = rand.Int(reader, max); err != nil {
		panic(fmt.Errorf("cannot RandInt: %w", err))
	}
	return
}

// ExtendedGCD returns (g, x, y) such that a*x + b*y = g = gcd(a, b) with g >= 0.
// The computation is iterative and accepts a = 0 and/or b = 0.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {

	r0, r1 := new(big.Int).Set(b), new(big.Int).Set(a)

	// Invariant: a*x + b*y = r0 and a*u + b*v = r1.
	x, y = big.NewInt(0), big.NewInt(1)
	u, v := big.NewInt(1), big.NewInt(0)

	q, r := new(big.Int), new(big.Int)
	tmp := new(big.Int)

	for r1.Sign() != 0 {
		q.QuoRem(r0, r1, r)

		tmp.Mul(u, q)
		x.Sub(x, tmp)
		tmp.Mul(v, q)
		y.Sub(y, tmp)

		r0, r1, r = r1, r, r0
		x, u = u, x
		y, v = v, y
	}

	g = r0

	if g.Sign() < 0 {
		g.Neg(g)
		x.Neg(x)
		y.Neg(y)
	}

	return
}

// ModularInverse returns x in [0, |m|) such that a*x = 1 mod m.
// It returns ErrInvalidModulus if m is zero and ErrNoInverse if gcd(a, m) != 1.
func ModularInverse(a, m *big.Int) (*big.Int, error) {

	if m.Sign() == 0 {
		return nil, fmt.Errorf("cannot ModularInverse: %w", ErrInvalidModulus)
	}

	g, x, _ := ExtendedGCD(a, m)

	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("cannot ModularInverse: gcd(%v, %v) = %v: %w", a, m, g, ErrNoInverse)
	}

	// big.Int.Mod is Euclidean: the result is in [0, |m|).
	return x.Mod(x, m), nil
}

// FractionModulo returns num * den^-1 mod |m|, in [0, |m|).
// It returns ErrDivisionByZero if den is zero, ErrInvalidModulus if m is zero
// and ErrNotInvertible if gcd(den, m) != 1.
func FractionModulo(num, den, m *big.Int) (*big.Int, error) {

	if den.Sign() == 0 {
		return nil, fmt.Errorf("cannot FractionModulo: %w", ErrDivisionByZero)
	}

	if m.Sign() == 0 {
		return nil, fmt.Errorf("cannot FractionModulo: %w", ErrInvalidModulus)
	}

	inv, err := ModularInverse(den, m)
	if err != nil {
		return nil, fmt.Errorf("cannot FractionModulo: denominator %v modulo %v: %w", den, m, ErrNotInvertible)
	}

	inv.Mul(inv, num)
	return inv.Mod(inv, m), nil
}

// RatModulo reduces the rational r modulo m, see [FractionModulo].
func RatModulo(r *big.Rat, m *big.Int) (*big.Int, error) {
	return FractionModulo(r.Num(), r.Denom(), m)
}
