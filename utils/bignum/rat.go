package bignum

import (
	"fmt"
	"math/big"
)

// NewRat allocates a new *big.Rat in lowest terms.
// Accepted types are: int, int64, uint64, string (e.g. "3", "-7/12"), *big.Int or *big.Rat.
func NewRat(x interface{}) (y *big.Rat) {

	y = new(big.Rat)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint64:
		y.SetUint64(x)
	case string:
		if _, ok := y.SetString(x); !ok {
			panic(fmt.Sprintf("cannot NewRat: invalid rational %q", x))
		}
	case *big.Int:
		y.SetInt(x)
	case *big.Rat:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot NewRat: accepted types are int, int64, uint64, string, *big.Int, *big.Rat, but is %T", x))
	}

	return
}

// NewRatFrac returns num/den in lowest terms, or ErrDivisionByZero if den is zero.
func NewRatFrac(num, den *big.Int) (*big.Rat, error) {
	if den.Sign() == 0 {
		return nil, fmt.Errorf("cannot NewRatFrac: %w", ErrDivisionByZero)
	}
	return new(big.Rat).SetFrac(num, den), nil
}

// AddRat returns a + b.
func AddRat(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Add(a, b)
}

// SubRat returns a - b.
func SubRat(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Sub(a, b)
}

// MulRat returns a * b.
func MulRat(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(a, b)
}

// NegRat returns -a.
func NegRat(a *big.Rat) *big.Rat {
	return new(big.Rat).Neg(a)
}

// QuoRat returns a / b, or ErrDivisionByZero if b is zero.
func QuoRat(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, fmt.Errorf("cannot QuoRat: %w", ErrDivisionByZero)
	}
	return new(big.Rat).Quo(a, b), nil
}
