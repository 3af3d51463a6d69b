package uagen

import "github.com/pkg/errors"

var (
	// ErrUnsupportedCombination is returned for an attempt whose browser has no
	// template for the resolved OS. Build retries on it and never surfaces it alone.
	ErrUnsupportedCombination = errors.New("unsupported browser and operating system combination")
	// ErrNoValidCombination is returned by Build once every attempt has failed.
	ErrNoValidCombination = errors.New("no valid combination found")
	// ErrIncompatiblePins is returned when the pinned dimensions can never be rendered,
	// e.g. Linux pinned together with an Intel chipset.
	ErrIncompatiblePins = errors.New("incompatible pinned inputs")
)
