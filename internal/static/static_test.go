package static

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ayoisaiah/zwoparse/internal/zwo"
)

func TestSampleParses(t *testing.T) {
	doc, err := zwo.Parse(bytes.NewReader(Sample()))
	if err != nil {
		t.Fatalf("zwo.Parse(Sample()) error = %v", err)
	}

	if doc.Name != "Sweet Spot Starter" {
		t.Errorf("Name = %q, want %q", doc.Name, "Sweet Spot Starter")
	}

	if len(doc.Blocks) != 5 {
		t.Errorf("len(Blocks) = %d, want 5", len(doc.Blocks))
	}
}

func TestWriteSample(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", SampleName)

	if err := WriteSample(dest, false); err != nil {
		t.Fatalf("WriteSample() error = %v", err)
	}

	b, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(b, Sample()) {
		t.Error("written file does not match the embedded sample")
	}

	err = WriteSample(dest, false)
	if !errors.Is(err, ErrFileExists) {
		t.Errorf("WriteSample() error = %v, want %v", err, ErrFileExists)
	}

	if err := WriteSample(dest, true); err != nil {
		t.Errorf("WriteSample(overwrite) error = %v", err)
	}
}
