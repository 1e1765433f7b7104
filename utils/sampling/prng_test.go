package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/ntru/utils/sampling"
)

func Test_PRNG(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

	t.Run("PRNG", func(t *testing.T) {

		Ha, _ := sampling.NewKeyedPRNG(key)
		Hb, _ := sampling.NewKeyedPRNG(key)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			Hb.Read(sum1)
		}

		Hb.Reset()

		Ha.Read(sum0)
		Hb.Read(sum1)

		require.Equal(t, sum0, sum1)
	})

	t.Run("Key", func(t *testing.T) {

		Ha, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		Hb, err := sampling.NewKeyedPRNG(Ha.Key())
		require.NoError(t, err)

		sum0 := make([]byte, 64)
		sum1 := make([]byte, 64)

		Ha.Read(sum0)
		Hb.Read(sum1)

		require.Equal(t, sum0, sum1)
		require.Equal(t, key, Ha.Key())
	})

	t.Run("Fork", func(t *testing.T) {

		parent, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		a, err := parent.Fork("a")
		require.NoError(t, err)
		a2, err := parent.Fork("a")
		require.NoError(t, err)
		b, err := parent.Fork("b")
		require.NoError(t, err)

		sumA, sumA2, sumB, sumParent := make([]byte, 64), make([]byte, 64), make([]byte, 64), make([]byte, 64)
		a.Read(sumA)
		a2.Read(sumA2)
		b.Read(sumB)

		require.Equal(t, sumA, sumA2)
		require.NotEqual(t, sumA, sumB)

		// Forking leaves the parent stream at its start.
		fresh, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		want := make([]byte, 64)
		fresh.Read(want)
		parent.Read(sumParent)
		require.Equal(t, want, sumParent)
		require.NotEqual(t, sumA, sumParent)

		require.Equal(t, key, parent.Key())
	})

	t.Run("KeyTooLong", func(t *testing.T) {
		_, err := sampling.NewKeyedPRNG(make([]byte, 65))
		require.Error(t, err)
	})

	t.Run("ThreadSafePRNG", func(t *testing.T) {
		prng, err := sampling.NewPRNG()
		require.NoError(t, err)

		sum := make([]byte, 32)
		n, err := prng.Read(sum)
		require.NoError(t, err)
		require.Equal(t, 32, n)
	})
}
