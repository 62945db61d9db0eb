package policy

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates an out-of-range construction parameter.
	ErrInvalidParameter = errors.New("policy: invalid parameter")
	// ErrUnknownPolicy is returned by New for an unregistered name.
	ErrUnknownPolicy = errors.New("policy: unknown policy")
	// ErrNoActions indicates a Select call with an empty value row.
	ErrNoActions = errors.New("policy: no actions to choose from")
	// ErrArithmetic indicates a failed decimal computation.
	ErrArithmetic = errors.New("policy: decimal arithmetic failed")
)

func invalid(policy, field string, v any) error {
	return fmt.Errorf("%w: %s.%s=%v", ErrInvalidParameter, policy, field, v)
}

// probability reports whether v lies in [0, 1]. NaN does not.
func probability(v float64) bool { return v >= 0 && v <= 1 }
