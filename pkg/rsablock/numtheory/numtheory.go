package numtheory

import "math/bits"

// Gcd returns the greatest common divisor of a and b using the iterative
// Euclidean algorithm. The result is never negative and Gcd(0, 0) is 0.
func Gcd(a, b int64) int64 {
	x, y := a, b
	for y != 0 {
		r := x % y
		x = y
		y = r
	}
	if x < 0 {
		return -x
	}
	return x
}

// AreRelativelyPrime reports whether gcd(a, b) == 1.
func AreRelativelyPrime(a, b int64) bool {
	return Gcd(a, b) == 1
}

// ArePairwiseRelativelyPrime reports whether every pair of values at distinct
// positions is relatively prime. Equal values at different positions are
// still compared, so []int64{3, 3} is not pairwise relatively prime.
func ArePairwiseRelativelyPrime(values []int64) bool {
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			if !AreRelativelyPrime(values[i], values[j]) {
				return false
			}
		}
	}
	return true
}

// ModularInverse returns s in [0, n) such that s*a mod n == 1.
//
// It runs the extended Euclidean algorithm and fails with a *NoInverseError
// when gcd(a, n) != 1.
func ModularInverse(a, n int64) (int64, error) {
	t, newT := int64(0), int64(1)
	r, newR := n, a

	for newR != 0 {
		quotient := r / newR

		tmp := newT
		newT = t - quotient*newT
		t = tmp

		tmp = newR
		newR = r - quotient*newR
		r = tmp
	}

	if r > 1 {
		return 0, &NoInverseError{A: a, N: n, GCD: r}
	}

	if t < 0 {
		t += n
	}

	return t, nil
}

// FastModularExponentiation returns base^exponent mod modulus by
// square-and-multiply over the bits of exponent, least significant first.
// The exponent must be non-negative and the modulus positive.
func FastModularExponentiation(base, exponent, modulus int64) int64 {
	x := 1 % modulus
	power := normalize(base, modulus)

	for e := uint64(exponent); e != 0; e >>= 1 {
		if e&1 == 1 {
			x = mulMod(x, power, modulus)
		}
		power = mulMod(power, power, modulus)
	}

	return x
}

// ChineseRemainderTheorem solves x ≡ residues[i] (mod moduli[i]).
//
// The moduli must be pairwise relatively prime and greater than 1. The
// returned value is the unreduced sum Σ residues[i]·M_i·y_i where
// M = Π moduli, M_i = M / moduli[i] and y_i = M_i⁻¹ mod moduli[i]. Callers
// take the result mod M to obtain the canonical solution. When the slices
// differ in length, only the leading pairs contribute to the sum but M still
// spans every modulus.
//
// It fails with a *NoInverseError if some M_i is not invertible, which only
// happens when the moduli are not pairwise relatively prime.
func ChineseRemainderTheorem(residues, moduli []int64) (int64, error) {
	m := int64(1)
	for _, v := range moduli {
		m *= v
	}

	count := min(len(residues), len(moduli))

	var sum int64
	for i := 0; i < count; i++ {
		mi := m / moduli[i]
		yi, err := ModularInverse(mi, moduli[i])
		if err != nil {
			return 0, err
		}
		sum += residues[i] * mi * yi
	}

	return sum, nil
}

// MulMod returns a*b mod m for a positive modulus m without overflowing.
func MulMod(a, b, m int64) int64 {
	return mulMod(normalize(a, m), normalize(b, m), m)
}

// mulMod expects a and b already in [0, m).
func mulMod(a, b, m int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return int64(bits.Rem64(hi, lo, uint64(m)))
}

func normalize(a, m int64) int64 {
	a %= m
	if a < 0 {
		a += m
	}
	return a
}
