// Package extractor wraps the external OCR engine behind the Reader
// capability. Engines return recognized line strings only: no geometry
// and no confidences.
package extractor

import (
	"context"
	"fmt"

	"github.com/BerylCAtieno/ocr-service/internal/config"
)

// Reader recognizes the text lines of the image stored at path, in the
// order the engine reports them.
type Reader interface {
	ReadText(ctx context.Context, path string) ([]string, error)
}

// New builds the process-wide engine pool selected by cfg.
func New(cfg *config.Config) (*Pool, error) {
	var factory func() (Reader, error)

	switch cfg.OCREngine {
	case config.EngineCommand:
		factory = func() (Reader, error) {
			return NewCommandReader(cfg.TesseractPath, cfg.OCRLanguage), nil
		}
	case config.EngineTesseract:
		factory = func() (Reader, error) {
			r, err := NewTesseractReader(cfg.OCRLanguage)
			if err != nil {
				return nil, err
			}
			return r, nil
		}
	default:
		return nil, fmt.Errorf("unknown OCR engine %q", cfg.OCREngine)
	}

	return NewPool(cfg.OCRWorkers, factory)
}
