package numtheory

import (
	"errors"
	"fmt"
)

// ErrNoInverse matches every NoInverseError via errors.Is.
var ErrNoInverse = errors.New("numtheory: no modular inverse")

// NoInverseError reports that A has no inverse modulo N because the two
// share the factor GCD.
type NoInverseError struct {
	A   int64
	N   int64
	GCD int64
}

func (e *NoInverseError) Error() string {
	return fmt.Sprintf("numtheory: %d mod %d does not have an inverse (gcd %d)", e.A, e.N, e.GCD)
}

// Is reports whether target is ErrNoInverse.
func (e *NoInverseError) Is(target error) bool {
	return target == ErrNoInverse
}
