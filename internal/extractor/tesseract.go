//go:build ocr

package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractReader binds libtesseract through gosseract. A gosseract client
// is not safe for concurrent use; the Pool gives each instance to one
// caller at a time.
type TesseractReader struct {
	client *gosseract.Client
}

// NewTesseractReader creates a client configured for a single language
// (e.g. "eng"). Close it when no longer needed.
func NewTesseractReader(language string) (*TesseractReader, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage(language); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set language: %w", err)
	}

	return &TesseractReader{client: client}, nil
}

// ReadText returns the text of every recognized line, top to bottom.
func (t *TesseractReader) ReadText(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := t.client.SetImage(path); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := t.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	lines := make([]string, 0, len(boxes))
	for _, box := range boxes {
		if line := strings.TrimSpace(box.Word); line != "" {
			lines = append(lines, line)
		}
	}

	return lines, nil
}

func (t *TesseractReader) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}
