package ring

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/zeebo/blake3"

	"github.com/tuneinsight/ntru/utils"
	"github.com/tuneinsight/ntru/utils/bignum"
)

// Poly is a univariate polynomial with exact rational coefficients.
// Coefficient i is the coefficient of X^i (lowest degree first).
//
// A Poly is always trimmed: its highest stored coefficient is non-zero, and the
// zero polynomial has no coefficients. Polynomials are values: no method modifies
// its receiver or its operands, and every operation returns a freshly allocated Poly.
// Integer polynomials are the special case where every denominator is 1.
type Poly struct {
	coeffs []*big.Rat
}

// NewPoly creates a new polynomial from a copy of the given coefficients.
// Nil coefficients are read as zero.
func NewPoly(coeffs ...*big.Rat) Poly {
	c := make([]*big.Rat, len(coeffs))
	for i := range coeffs {
		if coeffs[i] != nil {
			c[i] = new(big.Rat).Set(coeffs[i])
		} else {
			c[i] = new(big.Rat)
		}
	}
	return Poly{coeffs: Trim(c)}
}

// NewPolyFromInt64 creates a new integer polynomial.
func NewPolyFromInt64(coeffs ...int64) Poly {
	c := make([]*big.Rat, len(coeffs))
	for i := range coeffs {
		c[i] = new(big.Rat).SetInt64(coeffs[i])
	}
	return Poly{coeffs: Trim(c)}
}

// NewPolyFromBigInt creates a new integer polynomial.
func NewPolyFromBigInt(coeffs ...*big.Int) Poly {
	c := make([]*big.Rat, len(coeffs))
	for i := range coeffs {
		c[i] = new(big.Rat)
		if coeffs[i] != nil {
			c[i].SetInt(coeffs[i])
		}
	}
	return Poly{coeffs: Trim(c)}
}

// NewPolyFromAny creates a new polynomial from a coefficient slice of one of the types
// []int, []int64, []uint64, []*big.Int, []*big.Rat or []string (each string being an
// integer or a fraction such as "-3/4"). Any other input returns ErrInvalidInput, and a
// zero denominator returns ErrDivisionByZero.
func NewPolyFromAny(coeffs interface{}) (Poly, error) {

	var c []*big.Rat

	switch coeffs := coeffs.(type) {
	case []int:
		c = ratsFrom(coeffs)
	case []int64:
		c = ratsFrom(coeffs)
	case []uint64:
		c = ratsFrom(coeffs)
	case []*big.Int:
		return NewPolyFromBigInt(coeffs...), nil
	case []*big.Rat:
		return NewPoly(coeffs...), nil
	case []string:
		c = make([]*big.Rat, len(coeffs))
		for i := range coeffs {
			var err error
			if c[i], err = parseRat(coeffs[i]); err != nil {
				return Poly{}, fmt.Errorf("cannot NewPolyFromAny: coefficient %d: %w", i, err)
			}
		}
	default:
		return Poly{}, fmt.Errorf("cannot NewPolyFromAny: accepted types are []int, []int64, []uint64, []*big.Int, []*big.Rat, []string, but is %T: %w", coeffs, ErrInvalidInput)
	}

	return Poly{coeffs: Trim(c)}, nil
}

func ratsFrom[V int | int64 | uint64](coeffs []V) []*big.Rat {
	c := make([]*big.Rat, len(coeffs))
	for i := range coeffs {
		c[i] = bignum.NewRat(coeffs[i])
	}
	return c
}

// parseRat parses "n" or "n/d" with n, d integers.
func parseRat(s string) (*big.Rat, error) {

	numStr, denStr, isFrac := strings.Cut(strings.TrimSpace(s), "/")

	num, ok := new(big.Int).SetString(strings.TrimSpace(numStr), 10)
	if !ok {
		return nil, fmt.Errorf("%q is not a rational: %w", s, ErrInvalidInput)
	}

	if !isFrac {
		return bignum.NewRat(num), nil
	}

	den, ok := new(big.Int).SetString(strings.TrimSpace(denStr), 10)
	if !ok {
		return nil, fmt.Errorf("%q is not a rational: %w", s, ErrInvalidInput)
	}

	return bignum.NewRatFrac(num, den)
}

// Monomial returns c * X^degree.
func Monomial(c *big.Rat, degree int) Poly {
	if c.Sign() == 0 || degree < 0 {
		return Poly{}
	}
	coeffs := newZeroCoeffs(degree + 1)
	coeffs[degree].Set(c)
	return Poly{coeffs: coeffs}
}

// Trim returns coeffs without its trailing (highest degree) zero coefficients.
// The result shares the backing array of coeffs.
func Trim(coeffs []*big.Rat) []*big.Rat {
	n := len(coeffs)
	for n > 0 && (coeffs[n-1] == nil || coeffs[n-1].Sign() == 0) {
		n--
	}
	return coeffs[:n]
}

// Resize returns copies of the coefficients of a and b, the shorter one being
// padded with zeros so that both have the same length. The results are not trimmed.
func Resize(a, b Poly) (ac, bc []*big.Rat) {
	n := utils.Max(a.Len(), b.Len())
	return a.coeffsPadded(n), b.coeffsPadded(n)
}

// Len returns the number of stored coefficients, that is Degree()+1.
func (p Poly) Len() int {
	return len(p.coeffs)
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero returns true if p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p.coeffs) == 0
}

// IsConstant returns true if p has degree at most zero.
func (p Poly) IsConstant() bool {
	return len(p.coeffs) <= 1
}

// IsOne returns true if p is the constant polynomial 1.
func (p Poly) IsOne() bool {
	return len(p.coeffs) == 1 && p.coeffs[0].Cmp(ratOne) == 0
}

// IsInteger returns true if all the coefficients of p are integers.
func (p Poly) IsInteger() bool {
	for _, c := range p.coeffs {
		if !c.IsInt() {
			return false
		}
	}
	return true
}

// Coeff returns a copy of the coefficient of X^i (zero if i > Degree()).
func (p Poly) Coeff(i int) *big.Rat {
	if i < 0 || i >= len(p.coeffs) {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.coeffs[i])
}

// Leading returns a copy of the leading coefficient of p (zero for the zero polynomial).
func (p Poly) Leading() *big.Rat {
	return p.Coeff(p.Degree())
}

// Coeffs returns a copy of the coefficients of p.
func (p Poly) Coeffs() []*big.Rat {
	return p.coeffsPadded(len(p.coeffs))
}

// BigInts returns the coefficients of p as integers.
// It returns ErrInvalidInput if a coefficient is not an integer.
func (p Poly) BigInts() ([]*big.Int, error) {
	out := make([]*big.Int, len(p.coeffs))
	for i, c := range p.coeffs {
		if !c.IsInt() {
			return nil, fmt.Errorf("cannot BigInts: coefficient %d = %s: %w", i, c.RatString(), ErrInvalidInput)
		}
		out[i] = new(big.Int).Set(c.Num())
	}
	return out, nil
}

// Int64s returns the coefficients of p as int64.
// It returns ErrInvalidInput if a coefficient is not an integer or overflows an int64.
func (p Poly) Int64s() ([]int64, error) {
	ints, err := p.BigInts()
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(ints))
	for i := range ints {
		if !ints[i].IsInt64() {
			return nil, fmt.Errorf("cannot Int64s: coefficient %d = %v overflows int64: %w", i, ints[i], ErrInvalidInput)
		}
		out[i] = ints[i].Int64()
	}
	return out, nil
}

// CopyNew returns a deep copy of p.
func (p Poly) CopyNew() Poly {
	return Poly{coeffs: p.Coeffs()}
}

var ratComparer = cmp.Comparer(func(x, y *big.Rat) bool {
	return x.Cmp(y) == 0
})

// Equal returns true if p and other represent the same polynomial.
func (p Poly) Equal(other Poly) bool {
	return cmp.Equal(p.coeffs, other.coeffs, ratComparer, cmpopts.EquateEmpty())
}

// String returns the coefficients of p, lowest degree first, e.g. [1 0 -1/2].
func (p Poly) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range p.coeffs {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.RatString())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Digest returns the blake3 hash of the canonical form of p.
// Two polynomials have the same digest if and only if they are equal (up to collisions).
func (p Poly) Digest() (digest [32]byte) {
	hasher := blake3.New()
	// blake3.Hasher.Write never returns an error.
	hasher.Write([]byte(p.String()))
	copy(digest[:], hasher.Sum(nil))
	return
}

// coeffsPadded returns a copy of the coefficients of p padded with zeros up to n.
func (p Poly) coeffsPadded(n int) []*big.Rat {
	out := newZeroCoeffs(utils.Max(n, len(p.coeffs)))
	for i := range p.coeffs {
		out[i].Set(p.coeffs[i])
	}
	return out
}

var ratOne = big.NewRat(1, 1)

func newZeroCoeffs(n int) (coeffs []*big.Rat) {
	coeffs = make([]*big.Rat, n)
	for i := range coeffs {
		coeffs[i] = new(big.Rat)
	}
	return
}

// Re-exported error kinds, see the bignum package.
var (
	ErrDivisionByZero = bignum.ErrDivisionByZero
	ErrInvalidModulus = bignum.ErrInvalidModulus
	ErrNotInvertible  = bignum.ErrNotInvertible
	ErrNoInverse      = bignum.ErrNoInverse
	ErrInvalidInput   = bignum.ErrInvalidInput
)
