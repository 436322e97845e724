package router

import (
	"net/http"

	"github.com/BerylCAtieno/ocr-service/internal/handlers"
	"github.com/BerylCAtieno/ocr-service/internal/middleware"
	"github.com/BerylCAtieno/ocr-service/internal/services"
	"github.com/BerylCAtieno/ocr-service/internal/utils"

	"github.com/gorilla/mux"
)

func NewRouter(ocrService services.OCRService, logger *utils.Logger, multipartMemory int64) http.Handler {
	r := mux.NewRouter()

	ocrHandler := handlers.NewOCRHandler(ocrService, logger, multipartMemory)

	// Routes
	r.HandleFunc("/", ocrHandler.Health).Methods(http.MethodGet)
	r.HandleFunc("/extract", ocrHandler.ExtractText).Methods(http.MethodPost)
	r.HandleFunc("/classify", ocrHandler.Classify).Methods(http.MethodPost)

	// Applied outside mux: unmatched routes and preflights go through them as well.
	var h http.Handler = r
	h = middleware.CORS()(h)
	h = middleware.Recovery(logger)(h)
	h = middleware.Logger(logger)(h)
	h = middleware.RequestID()(h)

	return h
}
