//go:build ocr

package extractor

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/otiai10/gosseract/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEnglishReader skips the test when libtesseract has no English
// language data installed.
func newEnglishReader(t *testing.T) *TesseractReader {
	t.Helper()

	langs, err := gosseract.GetAvailableLanguages()
	if err != nil {
		t.Skipf("tesseract language data not available: %v", err)
	}
	found := false
	for _, lang := range langs {
		if lang == "eng" {
			found = true
			break
		}
	}
	if !found {
		t.Skip("eng.traineddata not installed")
	}

	r, err := NewTesseractReader("eng")
	if err != nil {
		t.Skipf("tesseract not usable: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestTesseractReaderRecognizesLines(t *testing.T) {
	r := newEnglishReader(t)

	lines, err := r.ReadText(context.Background(), writeTextPNG(t, "HELLO WORLD"))
	require.NoError(t, err)
	assert.Contains(t, strings.ToUpper(strings.Join(lines, " ")), "HELLO")
}

func TestTesseractReaderMissingFile(t *testing.T) {
	r := newEnglishReader(t)

	_, err := r.ReadText(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}
