package collections

import (
	"errors"
	"fmt"
)

var (
	ErrInvariantViolation = errors.New("invariant violation")
	ErrKeyExisted         = fmt.Errorf("%w: key existed", ErrInvariantViolation)
	ErrValueExisted       = fmt.Errorf("%w: value existed", ErrInvariantViolation)
	ErrValueNotExisted    = errors.New("value not existed")
)

func must(err error) {
	if err != nil {
		panic(err)
	}
}
