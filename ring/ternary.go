package ring

import (
	"github.com/tuneinsight/ntru/utils"
)

// CountTernary returns the number of coefficients of p equal to 1 and to -1.
func CountTernary(p Poly) (ones, minusOnes int) {
	for _, c := range p.coeffs {
		if c.IsInt() && c.Num().IsInt64() {
			switch c.Num().Int64() {
			case 1:
				ones++
			case -1:
				minusOnes++
			}
		}
	}
	return
}

// IsTernary returns true if exactly alpha coefficients of p are 1, exactly beta
// are -1, and alpha + beta <= p.Len(). Other coefficients are not inspected.
// See [Ring.IsTernary] for the check that every coefficient is in {-1, 0, 1}.
func IsTernary(p Poly, alpha, beta int) bool {
	ones, minusOnes := CountTernary(p)
	return ones == alpha && minusOnes == beta && alpha+beta <= p.Len()
}

// isStrictlyTernary returns true if every coefficient of p is in {-1, 0, 1}.
func isStrictlyTernary(p Poly) bool {

	coeffs, err := p.Int64s()
	if err != nil {
		return false
	}

	return utils.Count(coeffs, 1)+utils.Count(coeffs, -1)+utils.Count(coeffs, 0) == len(coeffs)
}
