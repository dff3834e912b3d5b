// Package numtheory implements the modular arithmetic the block cipher is
// built on.
//
// # Operations
//
//   - Gcd(): iterative Euclidean algorithm
//   - AreRelativelyPrime() / ArePairwiseRelativelyPrime(): coprimality tests
//   - ModularInverse(): extended Euclidean algorithm, fails with NoInverseError
//   - FastModularExponentiation(): square-and-multiply over the exponent's bit length
//   - ChineseRemainderTheorem(): CRT solver returning the UNREDUCED sum
//
// # Integer Range
//
// All values are int64. Products inside FastModularExponentiation and MulMod
// go through a 128-bit intermediate, so any positive int64 modulus is safe.
// ChineseRemainderTheorem does not reduce its result and can overflow for
// large moduli; keep the product of the moduli well inside the int64 range.
//
// # Example
//
//	inv, err := numtheory.ModularInverse(101, 4620) // 1601
//	if errors.Is(err, numtheory.ErrNoInverse) {
//	    // gcd(a, n) != 1
//	}
//
//	x, _ := numtheory.ChineseRemainderTheorem([]int64{2, 3, 2}, []int64{3, 5, 7})
//	x %= 3 * 5 * 7 // 23
package numtheory
