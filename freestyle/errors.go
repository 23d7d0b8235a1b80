package freestyle

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three categories of failure the cipher can
// report: precondition violations at init, per-block decrypt failure, and
// pepper-search exhaustion. Callers should compare with errors.Is.
var (
	ErrRoundWindowInvalid       = errors.New("freestyle: round window invalid")
	ErrHashIntervalMisaligned   = errors.New("freestyle: hash interval misaligned")
	ErrPrecomputedRoundsInvalid = errors.New("freestyle: precomputed rounds invalid")
	ErrPepperRange              = errors.New("freestyle: pepper bits out of range")
	ErrInitHashCount            = errors.New("freestyle: init hash count out of range")
	ErrKeyLength                = errors.New("freestyle: key length invalid")

	ErrBlockAuthFailed       = errors.New("freestyle: block authentication failed")
	ErrPepperSearchExhausted = errors.New("freestyle: pepper search exhausted")
)

func wrapErr(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
