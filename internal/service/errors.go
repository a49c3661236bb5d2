package service

import "errors"

// Business-rule rejections. Terminal for the caller; anything else
// bubbling out of a service is a storage failure and may be retried.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)
