// Package keys constructs RSA public and private keys from caller-supplied
// primes p, q and public exponent e. Primes are never generated here.
//
// Keys are plain values: they are computed once and never mutated. The
// private key carries the CRT parameters (DP, DQ, QInv) used by the cipher's
// Garner decryption.
package keys
