package ring

import (
	"testing"
)

func BenchmarkRing(b *testing.B) {
	b.Run("Mul", benchMul)
	b.Run("DivMod", benchDivMod)
	b.Run("ExtendedGCD", benchExtendedGCD)
	b.Run("Inverse", benchInverse)
}

func benchMul(b *testing.B) {

	for _, pl := range testParameters {

		tc, err := genTestContext(pl)
		if err != nil {
			b.Fatal(err)
		}

		r := tc.params.RingQ()
		us, err := NewUniformSampler(tc.prng, r)
		if err != nil {
			b.Fatal(err)
		}
		p0, p1 := us.ReadNew(), us.ReadNew()

		b.Run(testString("Poly", tc.params), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p0.Mul(p1)
			}
		})

		b.Run(testString("Ring", tc.params), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := r.Mul(p0, p1); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func benchDivMod(b *testing.B) {

	for _, pl := range testParameters {

		tc, err := genTestContext(pl)
		if err != nil {
			b.Fatal(err)
		}

		r := tc.params.RingQ()
		us, err := NewUniformSampler(tc.prng, r)
		if err != nil {
			b.Fatal(err)
		}
		p := us.ReadNew()
		xN1 := r.Cyclotomic()

		b.Run(testString("", tc.params), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, _, err := xN1.DivMod(p); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func benchExtendedGCD(b *testing.B) {

	for _, pl := range testParameters {

		tc, err := genTestContext(pl)
		if err != nil {
			b.Fatal(err)
		}

		r := tc.params.RingQ()
		us, err := NewUniformSampler(tc.prng, r)
		if err != nil {
			b.Fatal(err)
		}
		p := us.ReadNew()
		xN1 := r.Cyclotomic()

		b.Run(testString("", tc.params), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, _, _, err := ExtendedGCD(xN1, p); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func benchInverse(b *testing.B) {

	for _, pl := range testParameters {

		tc, err := genTestContext(pl)
		if err != nil {
			b.Fatal(err)
		}

		r := tc.params.RingP()
		ts, err := NewTernarySampler(nil, r.N(), r.N()/3+1, r.N()/3)
		if err != nil {
			b.Fatal(err)
		}

		f := ts.ReadNew()

		b.Run(testString("", tc.params), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				// ErrNotInvertible is an expected outcome for some f.
				_, _ = r.Inverse(f)
			}
		})
	}
}
