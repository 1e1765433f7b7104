package ring

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/ntru/utils/sampling"
)

func TestModularReduction(t *testing.T) {

	t.Run("Reduce", func(t *testing.T) {

		p := NewPoly(big.NewRat(-1, 1), big.NewRat(1, 2), big.NewRat(7, 1), big.NewRat(10, 1))

		r, err := p.Reduce(big.NewInt(5))
		require.NoError(t, err)
		// -1 = 4, 1/2 = 3, 7 = 2, 10 = 0 (trimmed)
		require.Equal(t, "[4 3 2]", r.String())
		require.True(t, r.IsInteger())

		// Negative moduli are taken in absolute value.
		r2, err := p.Reduce(big.NewInt(-5))
		require.NoError(t, err)
		require.True(t, r.Equal(r2))

		_, err = p.Reduce(new(big.Int))
		require.ErrorIs(t, err, ErrInvalidModulus)

		_, err = p.Reduce(big.NewInt(4))
		require.ErrorIs(t, err, ErrNotInvertible)

		z, err := Poly{}.Reduce(big.NewInt(7))
		require.NoError(t, err)
		require.True(t, z.IsZero())
	})

	t.Run("CenterLift/Boundary", func(t *testing.T) {

		// q even: q/2 is kept, q/2 + 1 is lifted.
		p := NewPolyFromInt64(0, 1, 15, 16, 17, 31, 32, -1)
		r, err := p.CenterLift(big.NewInt(32))
		require.NoError(t, err)
		require.Equal(t, "[0 1 15 16 -15 -1 0 -1]", r.String())

		// q odd: (q-1)/2 is kept, (q+1)/2 is lifted.
		p = NewPolyFromInt64(0, 1, 2, 3, 4)
		r, err = p.CenterLift(big.NewInt(5))
		require.NoError(t, err)
		require.Equal(t, "[0 1 2 -2 -1]", r.String())

		// Rational coefficients: 1/2 = 2 mod 3, lifted to -1.
		r, err = NewPoly(big.NewRat(1, 2)).CenterLift(big.NewInt(3))
		require.NoError(t, err)
		require.Equal(t, "[-1]", r.String())

		_, err = p.CenterLift(new(big.Int))
		require.ErrorIs(t, err, ErrInvalidModulus)

		_, err = NewPoly(big.NewRat(1, 2)).CenterLift(big.NewInt(2048))
		require.ErrorIs(t, err, ErrNotInvertible)
	})

	t.Run("CenterLift/Range", func(t *testing.T) {

		prng, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)

		for _, q := range []int64{2, 3, 32, 41, 2048} {

			t.Run(fmt.Sprintf("q=%d", q), func(t *testing.T) {

				Q := big.NewInt(q)
				p := randomPoly(prng, 63, 4*q)

				r, err := p.CenterLift(Q)
				require.NoError(t, err)

				half := big.NewRat(q, 2)
				minusHalf := new(big.Rat).Neg(half)

				for _, c := range r.Coeffs() {
					require.True(t, c.Cmp(minusHalf) > 0 && c.Cmp(half) <= 0, "%v not in (-%d/2, %d/2]", c, q, q)
				}

				// CenterLift and Reduce agree modulo q.
				a, err := r.Reduce(Q)
				require.NoError(t, err)
				b, err := p.Reduce(Q)
				require.NoError(t, err)
				require.True(t, a.Equal(b))
			})
		}
	})
}
