package cronit

import (
	"errors"
	"fmt"
)

// Sentinel errors, following quartz/error.go's pattern of a small wrapped
// set callers can test with errors.Is. Every constructor below wraps one
// of these with the offending key or sub-expression.
var (
	ErrInvalidField         = errors.New("cronit: invalid field")
	ErrInvalidEnumeration   = errors.New("cronit: invalid enumeration")
	ErrInvalidSubField      = errors.New("cronit: invalid sub-field")
	ErrRangeInvalidField    = errors.New("cronit: range invalid for field")
	ErrRangeStepNotPositive = errors.New("cronit: range step must be positive")
)

func errInvalidField(key FieldKey, v any) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidField, key, v)
}

func errInvalidEnumeration(key FieldKey, v any) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidEnumeration, key, v)
}

func errInvalidSubField(key FieldKey, v any) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidSubField, key, v)
}

func errRangeInvalidField(key FieldKey, min, max int) error {
	return fmt.Errorf("%w: %s: clipped range [%d,%d] is empty", ErrRangeInvalidField, key, min, max)
}

func errRangeStepNotPositive(key FieldKey, step int) error {
	return fmt.Errorf("%w: %s: step %d", ErrRangeStepNotPositive, key, step)
}
