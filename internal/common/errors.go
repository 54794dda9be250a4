// Package common defines shared constants and sentinel errors used across
// client and server layers of SonarAuth. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Registration errors.
	ErrAlreadyRegistered = errors.New("already registered")
	ErrMalformedKey      = errors.New("malformed public key")
	ErrInvalidUsername   = errors.New("invalid username")

	// Challenge flow errors.
	ErrUnknownUser        = errors.New("unknown user")
	ErrInvalidCommitment  = errors.New("invalid commitment")
	ErrNoPendingChallenge = errors.New("no pending challenge")

	// Proof errors. Deliberately carries no detail about which algebraic
	// check failed.
	ErrProofRejected = errors.New("proof rejected")

	// Credential lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
