package omdb

import (
	"context"
	"errors"
)

// Kind classifies a failed request
type Kind int

const (
	// KindNetwork covers transport failures and non-2xx responses
	KindNetwork Kind = iota + 1
	// KindAPI is an error reported by OMDb itself ("Response": "False")
	KindAPI
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAPI:
		return "api"
	default:
		return "unknown"
	}
}

// genericFailure is shown for transport problems, matching the web app
const genericFailure = "Something went wrong!!"

// Error is a request failure that should be shown to the user
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrCanceled marks a request that was superseded or aborted.
// It is never shown to the user.
var ErrCanceled = errors.New("omdb: request canceled")

// IsCanceled reports whether err stems from cancellation
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled) || errors.Is(err, context.Canceled)
}

// KindOf returns the Kind of err, or 0 when err is not an *Error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func networkError(msg string, err error) *Error {
	if msg == "" {
		msg = genericFailure
	}
	return &Error{Kind: KindNetwork, Message: msg, Err: err}
}

func apiError(msg string) *Error {
	if msg == "" {
		msg = "Unknown error"
	}
	return &Error{Kind: KindAPI, Message: msg}
}
