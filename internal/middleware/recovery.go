package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/BerylCAtieno/ocr-service/internal/models"
	"github.com/BerylCAtieno/ocr-service/internal/utils"
)

// Recovery turns a handler panic into a 500 JSON response. If the handler
// already started the response, the panic is only logged.
func Recovery(logger *utils.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &statusRecorder{ResponseWriter: w}

			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					logger.Error("Panic recovered",
						"request_id", GetRequestID(r.Context()),
						"panic", rec,
						"headers_sent", rw.status != 0,
						"stack", string(debug.Stack()))

					if rw.status != 0 {
						return
					}

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
