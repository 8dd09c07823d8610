package domain

import "errors"

// Common errors. Anything that does not wrap one of these is treated as a
// persistence failure.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnprocessable    = errors.New("unprocessable input")
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrPageNotFound     = errors.New("page not found")
)
