// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists signals username conflict.
	ErrUserExists = errors.New("user exists")
	// ErrInvalidCredentials signals a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrProjectNotFound signals missing project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrAccessDenied signals the caller is not a member of the project.
	ErrAccessDenied = errors.New("access denied")
	// ErrAlreadyMember signals a duplicate membership.
	ErrAlreadyMember = errors.New("already a member")
)
