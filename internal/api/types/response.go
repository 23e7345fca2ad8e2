// internal/api/types/response.go
package types

import (
	"time"

	"usuarios-api/internal/domain"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// IndexResponse describes the service and its endpoints.
type IndexResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// GreetingResponse is returned by GET /api/saludo.
type GreetingResponse struct {
	Message string    `json:"mensaje"`
	Date    time.Time `json:"fecha"`
}

// CreateUserRequest is the body of POST /api/usuarios.
type CreateUserRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"correo"`
	Password string `json:"password"`
}

// UserResponse is the public representation of a user. It never carries the password.
type UserResponse struct {
	ID           int64     `json:"id_usuario"`
	Name         string    `json:"nombre"`
	Email        string    `json:"correo"`
	RegisteredAt time.Time `json:"fecha_reg"`
}

// CreateUserResponse is returned by a successful POST /api/usuarios.
type CreateUserResponse struct {
	Message string       `json:"mensaje"`
	User    UserResponse `json:"usuario"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status string `json:"status"`
}

// NewUserResponse converts a domain user into its public representation.
func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		RegisteredAt: u.RegisteredAt,
	}
}

// NewUserListResponse converts users preserving order. The result is never nil.
func NewUserListResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
