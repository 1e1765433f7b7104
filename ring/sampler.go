package ring

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/ntru/utils/bignum"
	"github.com/tuneinsight/ntru/utils/sampling"
)

// Sampler is an interface for random polynomial samplers.
type Sampler interface {
	ReadNew() (pol Poly)
}

// TernarySampler samples polynomials of degree smaller than N with exactly
// Alpha coefficients equal to 1, Beta equal to -1 and the others zero.
type TernarySampler struct {
	prng  sampling.PRNG
	n     int
	alpha int
	beta  int
}

// NewTernarySampler creates a new TernarySampler reading its randomness from prng,
// or from crypto/rand if prng is nil.
// It returns ErrInvalidInput if N < 1, alpha or beta is negative, or alpha + beta > N.
func NewTernarySampler(prng sampling.PRNG, N, alpha, beta int) (*TernarySampler, error) {

	if N < 1 || alpha < 0 || beta < 0 || alpha+beta > N {
		return nil, fmt.Errorf("cannot NewTernarySampler: N=%d, alpha=%d, beta=%d: %w", N, alpha, beta, ErrInvalidInput)
	}

	prng, err := defaultPRNG(prng)
	if err != nil {
		return nil, fmt.Errorf("cannot NewTernarySampler: %w", err)
	}

	return &TernarySampler{
		prng:  prng,
		n:     N,
		alpha: alpha,
		beta:  beta,
	}, nil
}

// ReadNew samples a new ternary polynomial.
func (ts *TernarySampler) ReadNew() (pol Poly) {

	coeffs := make([]int64, ts.n)
	for i := 0; i < ts.alpha; i++ {
		coeffs[i] = 1
	}
	for i := ts.alpha; i < ts.alpha+ts.beta; i++ {
		coeffs[i] = -1
	}

	// Fisher-Yates
	for i := ts.n - 1; i > 0; i-- {
		j := bignum.RandInt(ts.prng, bignum.NewInt(i+1)).Int64()
		coeffs[i], coeffs[j] = coeffs[j], coeffs[i]
	}

	return NewPolyFromInt64(coeffs...)
}

// UniformSampler samples polynomials of degree smaller than N with
// coefficients uniformly distributed in [0, k).
type UniformSampler struct {
	prng    sampling.PRNG
	n       int
	modulus *big.Int
}

// NewUniformSampler creates a new UniformSampler over the given ring, reading its
// randomness from prng, or from crypto/rand if prng is nil.
func NewUniformSampler(prng sampling.PRNG, r *Ring) (*UniformSampler, error) {

	prng, err := defaultPRNG(prng)
	if err != nil {
		return nil, fmt.Errorf("cannot NewUniformSampler: %w", err)
	}

	return &UniformSampler{
		prng:    prng,
		n:       r.N(),
		modulus: r.Modulus(),
	}, nil
}

// ReadNew samples a new uniform polynomial.
func (us *UniformSampler) ReadNew() (pol Poly) {
	coeffs := make([]*big.Int, us.n)
	for i := range coeffs {
		coeffs[i] = bignum.RandInt(us.prng, us.modulus)
	}
	return NewPolyFromBigInt(coeffs...)
}

func defaultPRNG(prng sampling.PRNG) (sampling.PRNG, error) {
	if prng != nil {
		return prng, nil
	}
	return sampling.NewPRNG()
}
