package bignum

import "errors"

var (
	// ErrDivisionByZero is returned when dividing by a zero scalar or by the zero polynomial.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidModulus is returned when a reduction is requested modulo zero.
	ErrInvalidModulus = errors.New("invalid modulus: must be non-zero")

	// ErrNoInverse is returned by [ModularInverse] when gcd(a, m) != 1.
	ErrNoInverse = errors.New("no modular inverse")

	// ErrNotInvertible is returned when a denominator shares a non-unit factor with
	// the target modulus. It is reachable with well-formed inputs and signals that
	// the modulus is unsuitable for the value being reduced.
	ErrNotInvertible = errors.New("denominator is not invertible modulo the modulus")

	// ErrInvalidInput is returned when an input cannot be interpreted as a sequence of
	// exact coefficients, or violates the precondition of an operation.
	ErrInvalidInput = errors.New("invalid input")
)
