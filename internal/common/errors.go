// Package common defines shared constants and sentinel errors used across
// client and server layers of minichat. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Service-level errors.
	ErrorUnauthorized  = errors.New("user does not exist")
	ErrMessageTooLong  = errors.New("message too long")
	ErrInvalidMember   = errors.New("username and password are required")
	ErrRateLimited     = errors.New("too many join attempts")
	ErrUnknownSeedKind = errors.New("unknown seed source")
)
