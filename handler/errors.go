package handler

import "errors"

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrSSENotInitialized indicates SSE was used on a request that is not a Datastar request
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
)
