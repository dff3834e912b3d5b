// Package cipher implements block-wise textbook RSA.
//
// Encrypt raises each block to the public exponent. Decrypt uses the private
// key's CRT parameters and Garner's formula instead of a full exponentiation
// by d modulo n.
//
// Blocks are independent, so EncryptConcurrent and DecryptConcurrent may
// evaluate them in parallel; results keep the input order.
//
// # Security
//
// This is NOT a secure cipher. There is no padding scheme, no randomization
// and no protection against timing side channels. Use crypto/rsa for real
// workloads.
package cipher
