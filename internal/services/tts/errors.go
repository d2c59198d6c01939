package tts

import (
	"fmt"
	"strings"
)

// ErrorKind classifies provider failures the caller must distinguish.
type ErrorKind string

const (
	// ErrUnauthorized means the API key was rejected.
	ErrUnauthorized ErrorKind = "unauthorized"
	// ErrInsufficientCredit means the account has no synthesis quota left.
	ErrInsufficientCredit ErrorKind = "insufficient_credit"
	// ErrRateLimited means the provider throttled the request.
	ErrRateLimited ErrorKind = "rate_limited"
	// ErrHTTP covers any other non-success HTTP status.
	ErrHTTP ErrorKind = "http"
)

// APIError is a provider-side failure with a classified kind.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	switch e.Kind {
	case ErrUnauthorized:
		return fmt.Sprintf("tts request: unauthorized (http %d): check the configured api key: %s", e.StatusCode, body)
	case ErrInsufficientCredit:
		return fmt.Sprintf("tts request: insufficient credit (http %d): %s", e.StatusCode, body)
	case ErrRateLimited:
		return fmt.Sprintf("tts request: rate limited (http %d): retry after backing off: %s", e.StatusCode, body)
	default:
		return fmt.Sprintf("tts request: http %d: %s", e.StatusCode, body)
	}
}

func classifyStatus(status int) ErrorKind {
	switch status {
	case 401, 403:
		return ErrUnauthorized
	case 402:
		return ErrInsufficientCredit
	case 429:
		return ErrRateLimited
	default:
		return ErrHTTP
	}
}
