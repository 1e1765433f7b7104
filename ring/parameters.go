package ring

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/google/go-cmp/cmp"
)

// ParametersLiteral is a literal representation of the parameters of an NTRU-style
// cryptosystem: the degree N of the ring Z[X]/(X^N - 1), the small modulus P and the
// large modulus Q.
//
// Users must call [NewParametersFromLiteral] to generate the actual checked parameters.
type ParametersLiteral struct {
	N int    `json:",omitempty"`
	P uint64 `json:",omitempty"`
	Q uint64 `json:",omitempty"`
}

// Parameters represents a checked parameter set together with the rings R_P and R_Q.
type Parameters struct {
	n     int
	p, q  uint64
	ringP *Ring
	ringQ *Ring
}

// NewParametersFromLiteral instantiates a set of [Parameters] from a [ParametersLiteral].
// It returns an error if N < 1, P < 2, Q < 2 or gcd(P, Q) != 1.
func NewParametersFromLiteral(pl ParametersLiteral) (params Parameters, err error) {

	if pl.P < 2 || pl.Q < 2 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: P=%d and Q=%d must be at least 2: %w", pl.P, pl.Q, ErrInvalidModulus)
	}

	P := new(big.Int).SetUint64(pl.P)
	Q := new(big.Int).SetUint64(pl.Q)

	if g := new(big.Int).GCD(nil, nil, P, Q); g.Cmp(big.NewInt(1)) != 0 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: gcd(P=%d, Q=%d) = %v: %w", pl.P, pl.Q, g, ErrInvalidInput)
	}

	params = Parameters{n: pl.N, p: pl.P, q: pl.Q}

	if params.ringP, err = NewRing(pl.N, P); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: RingP: %w", err)
	}

	if params.ringQ, err = NewRing(pl.N, Q); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: RingQ: %w", err)
	}

	return
}

// ParametersLiteral returns the [ParametersLiteral] of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		N: p.n,
		P: p.p,
		Q: p.q,
	}
}

// N returns the ring degree.
func (p Parameters) N() int {
	return p.n
}

// P returns the small modulus.
func (p Parameters) P() uint64 {
	return p.p
}

// Q returns the large modulus.
func (p Parameters) Q() uint64 {
	return p.q
}

// RingP returns Z_P[X]/(X^N - 1).
func (p Parameters) RingP() *Ring {
	return p.ringP
}

// RingQ returns Z_Q[X]/(X^N - 1).
func (p Parameters) RingQ() *Ring {
	return p.ringQ
}

// Equal returns true if p and other describe the same parameter set.
func (p Parameters) Equal(other *Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
