// internal/api/handler/user.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"usuarios-api/internal/api/types"
	"usuarios-api/internal/service"
	"usuarios-api/internal/util"
)

// User-facing error messages.
const (
	MsgMissingFields     = "Nombre, correo y password son campos obligatorios."
	MsgInvalidBody       = "El cuerpo de la solicitud debe ser un objeto JSON válido."
	MsgBodyTooLarge      = "El cuerpo de la solicitud es demasiado grande."
	MsgNoConnection      = "No se pudo conectar a la base de datos"
	MsgListFailed        = "Error al obtener los usuarios"
	MsgCreateFailed      = "Error al crear el usuario."
	MsgDuplicateEmail    = "Error al crear el usuario. El correo ya existe."
	MsgUserCreated       = "Usuario creado exitosamente"
	defaultMaxBodyLength = 1 << 20
)

// UserHandler handles HTTP requests related to users.
type UserHandler struct {
	service     service.UserService
	logger      *slog.Logger
	maxBodySize int64
}

// NewUserHandler creates a new UserHandler. A non-positive maxBodySize
// falls back to 1 MiB.
func NewUserHandler(svc service.UserService, logger *slog.Logger, maxBodySize int64) *UserHandler {
	if maxBodySize <= 0 {
		maxBodySize = defaultMaxBodyLength
	}
	return &UserHandler{
		service:     svc,
		logger:      logger,
		maxBodySize: maxBodySize,
	}
}

// respondWithError maps service errors to a status code and a JSON error body.
// fallback is the message used for unclassified failures.
func (h *UserHandler) respondWithError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	statusCode := http.StatusInternalServerError
	message := fallback

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = MsgMissingFields
	case util.IsError(err, util.ErrDuplicateEmail):
		statusCode = http.StatusConflict
		message = MsgDuplicateEmail
	case util.IsError(err, util.ErrConnection):
		message = MsgNoConnection
		h.logger.ErrorContext(r.Context(), "Database connection unavailable", "error", err)
	default:
		h.logger.ErrorContext(r.Context(), "Unhandled service error", "error", err)
	}

	respondWithMessage(h.logger, w, statusCode, message)
}

// ListUsers returns all users, newest first.
// GET /api/usuarios
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.respondWithError(w, r, err, MsgListFailed)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.NewUserListResponse(users))
}

// CreateUser registers a new user.
// POST /api/usuarios
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req types.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithMessage(h.logger, w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
			return
		}
		respondWithMessage(h.logger, w, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	user, err := h.service.CreateUser(r.Context(), service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondWithError(w, r, err, MsgCreateFailed)
		return
	}

	h.logger.InfoContext(r.Context(), "User created", "id_usuario", user.ID)
	respondWithJSON(h.logger, w, http.StatusCreated, types.CreateUserResponse{
		Message: MsgUserCreated,
		User:    types.NewUserResponse(*user),
	})
}
