package kui

import "errors"

// Sentinel errors for the taxonomy in spec §7. Wrap these with fmt.Errorf's
// %w at each call site; callers distinguish them with errors.Is.
var (
	// ErrInvalidArgument covers a nil handle, a negative position, or a
	// zero token passed where one is forbidden.
	ErrInvalidArgument = errors.New("kui: invalid argument")

	// ErrNotPresent is returned by Deregister when the given key is not
	// registered in the map set.
	ErrNotPresent = errors.New("kui: map not present")

	// ErrPushbackOverflow signals a pass that would read beyond the
	// 1024-token bound before resolving, or a GetKey call whose macro
	// expansion exceeds its substitution-pass bound (a runaway recursive
	// macro).
	ErrPushbackOverflow = errors.New("kui: pushback buffer bound exceeded")

	// ErrInternal marks a state-machine invariant violated out of order,
	// e.g. Update called while the map set is not StillLooking.
	ErrInternal = errors.New("kui: internal invariant violation")
)
