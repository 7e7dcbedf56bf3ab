package timeutil

import "github.com/ayoisaiah/studyfocus/internal/apperr"

var errInvalidDate = &apperr.Error{
	Message: "unable to parse date: %s",
}
