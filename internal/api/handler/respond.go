// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"usuarios-api/internal/api/types"
)

// respondWithJSON writes payload as JSON with the given status code.
func respondWithJSON(logger *slog.Logger, w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Error interno del servidor"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithMessage writes a {"error": message} body.
func respondWithMessage(logger *slog.Logger, w http.ResponseWriter, code int, message string) {
	respondWithJSON(logger, w, code, types.ErrorResponse{Error: message})
}

// NotFound handles unknown routes.
func NotFound(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithMessage(logger, w, http.StatusNotFound, "Recurso no encontrado")
	}
}

// MethodNotAllowed handles known routes called with an unsupported method.
func MethodNotAllowed(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithMessage(logger, w, http.StatusMethodNotAllowed, "Método no permitido")
	}
}
