package rsablock

import (
	"errors"
	"fmt"

	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/codec"
	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/numtheory"
)

var (
	// ErrInvalidConfig indicates the key parameters or runtime settings were rejected.
	ErrInvalidConfig = errors.New("rsablock: invalid config")

	// ErrBlockOutOfRange indicates a block outside [0, n).
	ErrBlockOutOfRange = errors.New("rsablock: block out of range")

	// ErrNoInverse is numtheory.ErrNoInverse, re-exported for callers of this package.
	ErrNoInverse = numtheory.ErrNoInverse

	// ErrModulusTooSmall is codec.ErrModulusTooSmall, re-exported for callers of this package.
	ErrModulusTooSmall = codec.ErrModulusTooSmall
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("rsablock.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
