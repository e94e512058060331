package reddit

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors surfaced to callers for flow control.
var (
	ErrForbidden   = errors.New("access denied")
	ErrNotFound    = errors.New("not found")
	ErrRateLimited = errors.New("rate limited")
)

// APIError describes a non-2xx HTTP response from the service.
type APIError struct {
	StatusCode int
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api %s returned status %d: %s", e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api %s returned status %d", e.Path, e.StatusCode)
}

// Unwrap maps well-known status codes onto sentinel errors so callers
// can branch with errors.Is.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 401, 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 429:
		return ErrRateLimited
	}
	return nil
}

// jsonResponse is the {"json": {...}} envelope used by write endpoints.
type jsonResponse struct {
	JSON struct {
		Errors [][]any `json:"errors"`
		Data   struct {
			Things []thing `json:"things"`
			URL    string  `json:"url"`
			Name   string  `json:"name"`
			ID     string  `json:"id"`
		} `json:"data"`
	} `json:"json"`
}

// err converts the response's error list into a single error, or nil.
// Each entry is a [code, message, field] triple.
func (r *jsonResponse) err() error {
	if len(r.JSON.Errors) == 0 {
		return nil
	}
	parts := make([]string, 0, len(r.JSON.Errors))
	ratelimited := false
	for _, e := range r.JSON.Errors {
		var code, msg string
		if len(e) > 0 {
			code, _ = e[0].(string)
		}
		if len(e) > 1 {
			msg, _ = e[1].(string)
		}
		if code == "RATELIMIT" {
			ratelimited = true
		}
		if msg != "" {
			parts = append(parts, msg)
		} else {
			parts = append(parts, code)
		}
	}
	if ratelimited {
		return fmt.Errorf("%w: %s", ErrRateLimited, strings.Join(parts, "; "))
	}
	return errors.New(strings.Join(parts, "; "))
}
