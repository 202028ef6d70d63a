package zwo

import "github.com/ayoisaiah/zwoparse/internal/apperr"

var (
	ErrMalformed = &apperr.Error{
		Message: "workout file is not valid XML",
	}

	ErrMissingElement = &apperr.Error{
		Message: "workout file is missing the <%s> element",
	}

	ErrMissingAttribute = &apperr.Error{
		Message: "block %d (%s): missing required attribute %q",
	}

	ErrInvalidNumber = &apperr.Error{
		Message: "block %d (%s): attribute %q must be a number, got %q",
	}

	ErrNegativeRepeat = &apperr.Error{
		Message: "block %d (%s): attribute %q must not be negative, got %d",
	}
)

var (
	ErrNegativeDuration = &apperr.Error{
		Message: "block %d (%s): attribute %q must not be negative, got %g",
	}

	ErrDurationTooLong = &apperr.Error{
		Message: "block %d (%s): attribute %q must be at most %d seconds, got %g",
	}

	ErrRepeatTooLarge = &apperr.Error{
		Message: "block %d (%s): attribute %q must be at most %d, got %d",
	}

	ErrTooManySegments = &apperr.Error{
		Message: "block %d (%s): workout expands to more than %d segments",
	}
)
