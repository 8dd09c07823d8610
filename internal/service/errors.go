package service

import (
	"errors"
	"net/http"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// StatusCode maps a service error onto the HTTP status surfaced to callers.
// Input errors are checked before not-found errors so an unknown quiz
// category stays a 400.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnprocessable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrQuestionNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrPageNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
