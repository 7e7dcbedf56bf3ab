package config

import "github.com/ayoisaiah/studyfocus/internal/apperr"

var (
	// ErrInvalidSetting is the sentinel for every rejected timer setting.
	ErrInvalidSetting = &apperr.Error{
		Message: "invalid timer setting",
	}

	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errResolvePaths = &apperr.Error{
		Message: "unable to resolve studyfocus file paths",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %d and %d minutes, got %d",
	}

	errInvalidLongBreakInterval = &apperr.Error{
		Message: "sessions before long break must be at least %d, got %d",
	}

	errPrompt = &apperr.Error{
		Message: "settings prompt failed",
	}
)
