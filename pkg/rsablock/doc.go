// Package rsablock is a minimal, non-production RSA block cipher over native
// int64 arithmetic.
//
// The building blocks live in subpackages:
//
//   - numtheory: gcd, modular inverse, fast modular exponentiation, CRT
//   - codec: lowercase text <-> numeric blocks bounded by the modulus
//   - keys: public and private key construction from caller-supplied primes
//   - cipher: block-wise encryption and Garner CRT decryption
//
// This package ties them together behind a Cipher configured from a Config
// (YAML or code), with optional structured logging and Prometheus metrics.
//
//	c, err := rsablock.New(rsablock.Config{P: 43, Q: 59, E: 13})
//	if err != nil {
//	    return err
//	}
//	ct, err := c.EncryptText(ctx, "abcdefghij")
//	text, err := c.DecryptText(ctx, ct)
//
// Nothing here is cryptographically secure: there is no padding scheme, no
// randomization, and no side-channel protection.
package rsablock
