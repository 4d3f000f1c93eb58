package domain

import (
	"errors"
	"fmt"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	MesaageUserNotAllowed       = "user not allowed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)

// Error kinds. Every specific error below unwraps to exactly one of them.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrConflict      = errors.New("conflict")
	ErrUpstreamFetch = errors.New("upstream fetch failed")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func notFound(msg string) error { return &kindError{kind: ErrNotFound, msg: msg} }
func conflict(msg string) error { return &kindError{kind: ErrConflict, msg: msg} }

type upstreamError struct {
	source string
	err    error
}

func (e *upstreamError) Error() string {
	return fmt.Sprintf("failed to fetch from %s: %v", e.source, e.err)
}

func (e *upstreamError) Unwrap() []error { return []error{ErrUpstreamFetch, e.err} }

// UpstreamError wraps a provider failure so it matches ErrUpstreamFetch
// while keeping the original failure text.
func UpstreamError(source string, err error) error {
	return &upstreamError{source: source, err: err}
}
