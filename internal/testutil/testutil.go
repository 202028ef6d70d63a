// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/zwoparse/internal/osutil"
)

// GoldenTest is a test case whose output is compared against a golden file.
type GoldenTest interface {
	// Output returns the produced bytes and the golden file name without
	// its extension. A nil output asserts that no golden file exists.
	Output() ([]byte, string)
}

// Golden is a GoldenTest with precomputed output.
type Golden struct {
	Name string
	Data []byte
}

func (g Golden) Output() ([]byte, string) {
	return g.Data, g.Name
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output. Run the tests with -update to regenerate the files.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: need to sort out line endings
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)

	output, name := tc.Output()

	if output == nil {
		f := filepath.Join("testdata", name+".golden")
		if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
			t.Fatalf("expected no output, but golden file exists: %s", f)
		}

		return
	}

	g.Assert(t, name, output)
}

// WriteFile creates a file with the given contents inside a temporary
// directory owned by t and returns its path.
func WriteFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)

	if err := os.WriteFile(path, []byte(contents), osutil.FilePermission); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}

	return path
}
