// internal/domain/user.go
package domain

import (
	"strings"
	"time"
)

// User represents a registered user of the service.
type User struct {
	ID           int64     `db:"id_usuario" json:"id_usuario"` // Primary key, SERIAL in DB
	Name         string    `db:"nombre" json:"nombre"`
	Email        string    `db:"correo" json:"correo"`        // Unique, enforced by the database
	Password     string    `db:"password" json:"-"`           // Stored as received, never serialized
	RegisteredAt time.Time `db:"fecha_reg" json:"fecha_reg"` // Assigned by the database on insert
}

// NewUser creates a new User instance that has not been persisted yet.
func NewUser(name, email, password string) *User {
	return &User{
		Name:     name,
		Email:    email,
		Password: password,
	}
}

// MissingFields returns the names of the required fields that are empty.
// Whitespace-only values count as empty.
func (u *User) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(u.Name) == "" {
		missing = append(missing, "nombre")
	}
	if strings.TrimSpace(u.Email) == "" {
		missing = append(missing, "correo")
	}
	if strings.TrimSpace(u.Password) == "" {
		missing = append(missing, "password")
	}
	return missing
}
