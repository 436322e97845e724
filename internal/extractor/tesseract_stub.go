//go:build !ocr

package extractor

import (
	"context"
	"errors"
)

// ErrOCRNotEnabled is returned when the binary was built without the "ocr"
// tag. Rebuild with -tags ocr (requires libtesseract) or set
// OCR_ENGINE=command to use the tesseract executable instead.
var ErrOCRNotEnabled = errors.New("tesseract bindings not enabled; rebuild with -tags ocr or set OCR_ENGINE=command")

type TesseractReader struct{}

func NewTesseractReader(language string) (*TesseractReader, error) {
	return nil, ErrOCRNotEnabled
}

func (t *TesseractReader) ReadText(ctx context.Context, path string) ([]string, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op. It is safe to call on a nil reader.
func (t *TesseractReader) Close() error {
	return nil
}
