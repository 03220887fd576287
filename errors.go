package cachekey

import (
	"errors"
	"fmt"
)

// ErrUnsupportedAlgorithm matches any UnsupportedAlgorithmError via
// errors.Is.
var ErrUnsupportedAlgorithm = errors.New("cachekey: unsupported algorithm")

// UnsupportedAlgorithmError reports a digest request for an algorithm
// identifier with no registered constructor. It is the only failure the
// derivation operations produce under the default UTF-8 encoding.
type UnsupportedAlgorithmError struct {
	Algorithm Algorithm
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("cachekey: unsupported algorithm %q", string(e.Algorithm))
}

func (e *UnsupportedAlgorithmError) Is(target error) bool {
	return target == ErrUnsupportedAlgorithm
}
