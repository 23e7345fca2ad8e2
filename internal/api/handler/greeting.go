// internal/api/handler/greeting.go
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"usuarios-api/internal/api/types"
)

// GreetingMessage is the text returned by GET /api/saludo.
const GreetingMessage = "¡Hola! Mi web service con Go está funcionando."

// GreetingHandler serves the index and greeting endpoints.
type GreetingHandler struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewGreetingHandler creates a new GreetingHandler.
func NewGreetingHandler(logger *slog.Logger) *GreetingHandler {
	return &GreetingHandler{logger: logger, now: time.Now}
}

// Index lists the available endpoints.
// GET /
func (h *GreetingHandler) Index(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(h.logger, w, http.StatusOK, types.IndexResponse{
		Message: "API de usuarios",
		Endpoints: map[string]string{
			"GET /api/saludo":    "Mensaje de saludo y fecha actual",
			"GET /api/usuarios":  "Lista de usuarios, del más reciente al más antiguo",
			"POST /api/usuarios": "Crea un usuario a partir de nombre, correo y password",
		},
	})
}

// Greeting returns a greeting and the current server time.
// GET /api/saludo
func (h *GreetingHandler) Greeting(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(h.logger, w, http.StatusOK, types.GreetingResponse{
		Message: GreetingMessage,
		Date:    h.now(),
	})
}
