package store

import "github.com/ayoisaiah/studyfocus/internal/apperr"

var (
	ErrAlreadyRunning = &apperr.Error{
		Message: "is studyfocus already running? Only one instance can be active at a time",
	}

	errEncode = &apperr.Error{
		Message: "encoding record %s failed",
	}

	errDecode = &apperr.Error{
		Message: "decoding record %s failed",
	}
)
