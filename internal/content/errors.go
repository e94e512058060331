package content

import "errors"

// Sentinel errors used for flow control between the content engine, the
// navigator, and the views.
var (
	// ErrIndexOut marks an index outside the currently loaded range.
	// The navigator probes validity with it.
	ErrIndexOut = errors.New("index out of range")

	// ErrNoSubmissions means a listing produced no rows at all.
	ErrNoSubmissions = errors.New("no submissions")

	// ErrNoSubscriptions means the subscription list is empty.
	ErrNoSubscriptions = errors.New("no subscriptions")

	// ErrNoMessages means the requested inbox view is empty.
	ErrNoMessages = errors.New("no messages")

	// ErrUnknownOrder rejects a sort order the listing endpoints do not
	// accept.
	ErrUnknownOrder = errors.New("unrecognized order")

	// ErrNotLoggedIn guards views that require an authenticated user.
	ErrNotLoggedIn = errors.New("not logged in")
)
