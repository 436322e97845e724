package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BerylCAtieno/ocr-service/internal/classifier"
	"github.com/BerylCAtieno/ocr-service/internal/extractor"
	"github.com/BerylCAtieno/ocr-service/internal/models"
	"github.com/BerylCAtieno/ocr-service/internal/storage"
	"github.com/BerylCAtieno/ocr-service/internal/utils"
)

type OCRService interface {
	ExtractText(ctx context.Context, req *models.UploadRequest) (*models.ExtractResponse, error)
	Classify(ctx context.Context, req *models.UploadRequest) (*models.ClassificationResponse, error)
}

type ocrService struct {
	storage    storage.Storage
	reader     extractor.Reader
	classifier classifier.Classifier
	timeout    time.Duration
	logger     *utils.Logger
}

// NewService wires the OCR service. A zero timeout leaves extraction
// bounded only by the request context.
func NewService(store storage.Storage, reader extractor.Reader, cls classifier.Classifier, timeout time.Duration, logger *utils.Logger) OCRService {
	return &ocrService{
		storage:    store,
		reader:     reader,
		classifier: cls,
		timeout:    timeout,
		logger:     logger,
	}
}

func (s *ocrService) ExtractText(ctx context.Context, req *models.UploadRequest) (*models.ExtractResponse, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()

	tmp, err := s.storage.Stage(ctx, req.File)
	if err != nil {
		s.logger.Error("Failed to stage upload", "error", err, "filename", req.Filename)
		return nil, utils.WrapInternalError("Failed to stage upload", err)
	}
	defer func() {
		if err := tmp.Release(); err != nil {
			s.logger.Error("Failed to remove temp file", "error", err, "path", tmp.Path)
		}
	}()

	lines, err := s.reader.ReadText(ctx, tmp.Path)
	if err != nil {
		s.logger.Error("Failed to extract text",
			"error", err,
			"filename", req.Filename,
			"size", tmp.Size,
			"timed_out", errors.Is(err, context.DeadlineExceeded))
		return nil, utils.WrapInternalError("Failed to extract text from image", err)
	}

	text := strings.Join(lines, " ")

	s.logger.Info("Text extracted",
		"filename", req.Filename,
		"size", tmp.Size,
		"lines", len(lines),
		"text_length", len(text),
		"duration_ms", time.Since(start).Milliseconds())

	return &models.ExtractResponse{Text: text}, nil
}

func (s *ocrService) Classify(ctx context.Context, req *models.UploadRequest) (*models.ClassificationResponse, error) {
	resp, err := s.classifier.Classify(ctx, req.File)
	if err != nil {
		s.logger.Error("Failed to classify image", "error", err, "filename", req.Filename)
		return nil, utils.WrapInternalError("Failed to classify image", err)
	}

	s.logger.Debug("Image classified", "filename", req.Filename, "classification", resp.Classification)

	return resp, nil
}
