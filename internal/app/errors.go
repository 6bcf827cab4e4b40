package app

import "errors"

var (
	// ErrInvalidCredentials is returned when the supplied credentials do not match.
	ErrInvalidCredentials = errors.New("incorrect email address or password")

	ErrEmailAndPasswordRequired = errors.New("email and password required")
	ErrPasswordMismatch         = errors.New("passwords do not match")

	// ErrCommentRequired is returned for a comment that is blank after trimming.
	ErrCommentRequired = errors.New("comment required")
)
