package iitii

import "github.com/pkg/errors"

// ErrInvalidInterval is returned by Build/BuildII, under
// WithStrictValidation, when an item's accessors report beg > end.
// Without strict validation the contract violation is undefined
// behavior rather than an error, per the accessor contract in §3.
var ErrInvalidInterval = errors.New("iitii: beg(item) > end(item)")

// newInvalidIntervalError wraps ErrInvalidInterval with the offending
// item's position in the build buffer.
func newInvalidIntervalError(index int) error {
	return errors.Wrapf(ErrInvalidInterval, "item %d", index)
}
