package models

import "io"

type UploadRequest struct {
	File        io.Reader
	Filename    string
	ContentType string
}

type HealthResponse struct {
	Message string `json:"message"`
}

type ExtractResponse struct {
	Text string `json:"text"`
}

type ClassificationResponse struct {
	Classification string  `json:"classification"`
	Confidence     float64 `json:"confidence"`
	Hint           string  `json:"hint"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
