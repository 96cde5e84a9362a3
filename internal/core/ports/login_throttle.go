package ports

import "context"

// LoginThrottle rate-limits failed login attempts per email address. The
// throttle is advisory: storage errors are surfaced to the caller, which is
// expected to fail open rather than lock users out on a backend outage.
type LoginThrottle interface {
	// TooMany reports whether the address has exhausted its attempt budget
	// for the current window.
	TooMany(ctx context.Context, email string) (bool, error)
	// RecordFailure counts one failed attempt against the address.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, email string) error
}
