// Package static embeds static files into the binary and copies them to the
// filesystem
package static

import (
	"embed"
	"errors"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/zwoparse/internal/apperr"
	"github.com/ayoisaiah/zwoparse/internal/osutil"
)

const sampleFile = "files/sample.zwo"

//go:embed files/*
var embeddedFiles embed.FS

// ErrFileExists is returned by WriteSample when the destination exists and
// overwriting was not requested.
var ErrFileExists = &apperr.Error{
	Message: "refusing to overwrite existing file %s",
}

// SampleName is the default file name used when writing the sample.
const SampleName = "sample.zwo"

// Sample returns the embedded example workout.
func Sample() []byte {
	b, err := embeddedFiles.ReadFile(sampleFile)
	if err != nil {
		panic(err)
	}

	return b
}

// WriteSample copies the embedded example workout to dest.
func WriteSample(dest string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(dest); err == nil {
			return ErrFileExists.Fmt(dest)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, osutil.DirPermission); err != nil {
			return err
		}
	}

	return os.WriteFile(dest, Sample(), osutil.FilePermission)
}
