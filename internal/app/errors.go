package app

import "github.com/ayoisaiah/studyfocus/internal/apperr"

var (
	errSessionCmd = &apperr.Error{
		Message: "unable to parse session_cmd option",
	}

	errInvalidLimit = &apperr.Error{
		Message: "limit must not be negative, got %d",
	}
)
