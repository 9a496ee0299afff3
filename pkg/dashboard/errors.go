package dashboard

import (
	"errors"
	"fmt"
)

// Sentinel errors of the authenticated-fetch contract.
var (
	// ErrNoToken: a request was attempted without a stored access token. The
	// client has already navigated to the login page; no HTTP request was
	// issued.
	ErrNoToken = errors.New("no access token in session")

	// ErrSessionExpired: the backend answered 401. The session store has been
	// cleared and the client navigated to the logged-out login page.
	ErrSessionExpired = errors.New("session expired")

	// ErrNoRefreshToken: a refresh was requested but no refresh token is
	// stored.
	ErrNoRefreshToken = errors.New("no refresh token in session")

	// ErrRefreshFailed: the refresh endpoint answered with a non-success
	// status.
	ErrRefreshFailed = errors.New("token refresh failed")

	// ErrBackendUnreachable wraps transport-level failures, the "is the
	// backend reachable" case as opposed to an HTTP error status.
	ErrBackendUnreachable = errors.New("backend unreachable")

	// ErrMissingGuildID: a settings page was entered without a guild id; the
	// client has navigated back to the guild list.
	ErrMissingGuildID = errors.New("missing guild id")
)

// FeatureDisabledError reports a 403 whose detail marks the module as
// disabled in the bot configuration, distinct from a generic request error.
type FeatureDisabledError struct {
	Detail string
}

func (e *FeatureDisabledError) Error() string {
	return fmt.Sprintf("feature disabled: %s", e.Detail)
}

// RequestError is any other non-OK response; the form stays in its last
// valid state and the detail is surfaced to the user.
type RequestError struct {
	StatusCode int
	Detail     string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with HTTP %d: %s", e.StatusCode, e.Detail)
}
