package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRat(t *testing.T) {

	t.Run("NewRat", func(t *testing.T) {
		require.Zero(t, NewRat("-6/8").Cmp(big.NewRat(-3, 4)))
		require.Zero(t, NewRat(big.NewInt(7)).Cmp(big.NewRat(7, 1)))
		require.Zero(t, NewRat(uint64(9)).Cmp(big.NewRat(9, 1)))
		require.Zero(t, NewRat(nil).Sign())
		require.Panics(t, func() { NewRat("x/2") })
		require.Panics(t, func() { NewRat(0.5) })
	})

	t.Run("LowestTerms", func(t *testing.T) {
		r, err := NewRatFrac(big.NewInt(10), big.NewInt(-4))
		require.NoError(t, err)
		require.Equal(t, "-5/2", r.String())

		_, err = NewRatFrac(big.NewInt(1), big.NewInt(0))
		require.ErrorIs(t, err, ErrDivisionByZero)
	})

	t.Run("Field", func(t *testing.T) {
		a, b := big.NewRat(1, 3), big.NewRat(-1, 6)

		require.Equal(t, "1/6", AddRat(a, b).String())
		require.Equal(t, "1/2", SubRat(a, b).String())
		require.Equal(t, "-1/18", MulRat(a, b).String())
		require.Equal(t, "-1/3", NegRat(a).String())

		q, err := QuoRat(a, b)
		require.NoError(t, err)
		require.Equal(t, "-2/1", q.String())

		// operands are not modified
		require.Equal(t, "1/3", a.String())
		require.Equal(t, "-1/6", b.String())

		_, err = QuoRat(a, new(big.Rat))
		require.ErrorIs(t, err, ErrDivisionByZero)
	})
}
