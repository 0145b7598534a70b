package domain

import "errors"

var (
	// ErrValidation reports a missing or malformed required input.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials reports a wrong password on login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWeakPassword reports a signup password shorter than the minimum.
	ErrWeakPassword = errors.New("weak password")

	// ErrNotFound reports a catalog lookup miss.
	ErrNotFound = errors.New("not found")

	// ErrAuthPending reports a login or signup submitted while a previous
	// one is still in flight.
	ErrAuthPending = errors.New("authentication already pending")
)
