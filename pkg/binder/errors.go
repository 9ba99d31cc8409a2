package binder

import "errors"

var (
	// ErrBinderNotApplicable tells the caller to try the next binder: the
	// request content type belongs to another binder.
	ErrBinderNotApplicable = errors.New("binder not applicable")
	ErrFailedToParseJSON   = errors.New("failed to parse JSON request body")
	ErrInvalidForm         = errors.New("failed to parse form data")
)
