/*
Package ntru is an exact polynomial-ring arithmetic engine for NTRU-style lattice cryptosystems.

The [github.com/tuneinsight/ntru/ring] package provides univariate polynomials with exact rational
coefficients (addition, multiplication, long division, extended Euclidean algorithm), their reduction
and center-lift modulo an integer, the quotient rings Z_k[X]/(X^N - 1) with inversion, and the
ternary-polynomial validator. The [github.com/tuneinsight/ntru/utils/bignum] package provides the
integer helpers (extended GCD, modular inverse, fraction modulo) the reductions are built on.
*/
package ntru
