package classifier

import (
	"context"
	"io"

	"github.com/BerylCAtieno/ocr-service/internal/models"
)

// Classifier labels an uploaded medical image.
type Classifier interface {
	Classify(ctx context.Context, image io.Reader) (*models.ClassificationResponse, error)
}

const (
	StubLabel      = "X-ray"
	StubConfidence = 0.98
	StubHint       = "This looks like a chest X-ray. Vision AI can provide more details."
)

// Stub answers every request with the same result and never reads the
// image. It stands in until a real model is wired behind Classifier.
type Stub struct{}

func NewStub() *Stub {
	return &Stub{}
}

func (Stub) Classify(ctx context.Context, image io.Reader) (*models.ClassificationResponse, error) {
	return &models.ClassificationResponse{
		Classification: StubLabel,
		Confidence:     StubConfidence,
		Hint:           StubHint,
	}, nil
}
