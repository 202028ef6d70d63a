package config

import "github.com/ayoisaiah/zwoparse/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing config file failed",
	}

	errUserPrompt = &apperr.Error{
		Message: "user prompt failed",
	}

	ErrInvalidFTP = &apperr.Error{
		Message: "ftp must be a positive number of watts, got %d",
	}

	ErrInvalidWeight = &apperr.Error{
		Message: "kg must be a positive number, got %v",
	}

	ErrInvalidFormat = &apperr.Error{
		Message: "type must be one of %s, got %q",
	}

	ErrInvalidMinDuration = &apperr.Error{
		Message: "minduration cannot be negative, got %d",
	}

	ErrInvalidParam = &apperr.Error{
		Message: "invalid value %q for parameter %s",
	}
)
