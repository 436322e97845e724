package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"

	"github.com/BerylCAtieno/ocr-service/internal/middleware"
	"github.com/BerylCAtieno/ocr-service/internal/models"
	"github.com/BerylCAtieno/ocr-service/internal/services"
	"github.com/BerylCAtieno/ocr-service/internal/utils"
)

const (
	HealthMessage = "OCR Service Running"

	// FileField is the multipart part that carries the upload.
	FileField = "file"
)

type OCRHandler struct {
	service         services.OCRService
	logger          *utils.Logger
	multipartMemory int64
}

// NewOCRHandler creates the handler. multipartMemory is how much of a
// multipart body is held in memory before spilling to disk; it is not a
// size limit.
func NewOCRHandler(service services.OCRService, logger *utils.Logger, multipartMemory int64) *OCRHandler {
	return &OCRHandler{
		service:         service,
		logger:          logger,
		multipartMemory: multipartMemory,
	}
}

func (h *OCRHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, models.HealthResponse{Message: HealthMessage})
}

func (h *OCRHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	req, cleanup, err := h.parseUpload(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	defer cleanup()

	resp, err := h.service.ExtractText(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *OCRHandler) Classify(w http.ResponseWriter, r *http.Request) {
	req, cleanup, err := h.parseUpload(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	defer cleanup()

	resp, err := h.service.Classify(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// parseUpload reads the multipart body and opens the "file" part. The
// returned cleanup closes the part and removes any spill files the
// multipart reader created.
func (h *OCRHandler) parseUpload(r *http.Request) (*models.UploadRequest, func(), error) {
	if err := r.ParseMultipartForm(h.multipartMemory); err != nil {
		h.logger.Warn("Invalid multipart body", "error", err, "request_id", middleware.GetRequestID(r.Context()))
		return nil, nil, utils.NewBadRequestError("Invalid form data")
	}

	file, header, err := r.FormFile(FileField)
	if err != nil {
		removeForm(r.MultipartForm)
		return nil, nil, utils.NewUnprocessableError("No file provided")
	}

	cleanup := func() {
		file.Close()
		removeForm(r.MultipartForm)
	}

	return &models.UploadRequest{
		File:        file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}, cleanup, nil
}

func removeForm(form *multipart.Form) {
	if form != nil {
		form.RemoveAll()
	}
}

func (h *OCRHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", "error", err)
	}
}

func (h *OCRHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	if appErr, ok := utils.AsAppError(err); ok {
		status = appErr.StatusCode
		message = appErr.Message
	}

	h.logger.Error("Request error",
		"status", status,
		"error", err,
		"request_id", middleware.GetRequestID(r.Context()))

	h.respondJSON(w, status, models.ErrorResponse{Error: message})
}
