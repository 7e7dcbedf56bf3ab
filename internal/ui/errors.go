package ui

import "github.com/ayoisaiah/studyfocus/internal/apperr"

var errRenderTable = &apperr.Error{
	Message: "failed to render table",
}
