package service

import "errors"

var (
	// ErrUnauthorized means the caller has no valid session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation means the payload failed shape or field validation.
	// Wrapped errors carry the field detail.
	ErrValidation = errors.New("invalid payload")

	// ErrRecipeNotFound covers both a nonexistent recipe and a recipe owned
	// by someone else. Callers cannot tell the two apart.
	ErrRecipeNotFound = errors.New("recipe not found or unauthorized")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)
