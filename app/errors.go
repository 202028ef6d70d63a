package app

import "github.com/ayoisaiah/zwoparse/internal/apperr"

var (
	errMissingInput = &apperr.Error{
		Message: "no workout file provided. Usage: zwoparse [OPTIONS] <file.zwo>",
	}

	errOpenInput = &apperr.Error{
		Message: "unable to open workout file %s",
	}

	errWriteOutput = &apperr.Error{
		Message: "unable to write output file %s",
	}

	errPaths = &apperr.Error{
		Message: "unable to determine application paths",
	}
)
