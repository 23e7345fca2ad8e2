// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"usuarios-api/internal/domain"
	"usuarios-api/internal/repository"
	"usuarios-api/internal/util"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = pq.ErrorCode("23505")

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct{}

// NewUserRepository creates a new UserRepository.
// It holds no connection: every method receives the DBExecutor to run on.
func NewUserRepository() repository.UserRepository {
	return &UserRepository{}
}

// ListUsers selects all users ordered by id_usuario descending.
func (r *UserRepository) ListUsers(ctx context.Context, q repository.DBExecutor) ([]domain.User, error) {
	users := make([]domain.User, 0)
	query := `SELECT id_usuario, nombre, correo, fecha_reg
              FROM usuarios
              ORDER BY id_usuario DESC`
	if err := q.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("%w: failed to list users: %w", util.ErrQuery, err)
	}
	return users, nil
}

// CreateUser inserts a user and reads the assigned columns back from RETURNING.
func (r *UserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `INSERT INTO usuarios (nombre, correo, password)
              VALUES ($1, $2, $3)
              RETURNING id_usuario, nombre, correo, fecha_reg`

	var created domain.User
	err := q.GetContext(ctx, &created, query, user.Name, user.Email, user.Password)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to create user '%s': %w", user.Email, util.ErrDuplicateEmail)
		}
		return fmt.Errorf("%w: failed to create user: %w", util.ErrQuery, err)
	}

	user.ID = created.ID
	user.Name = created.Name
	user.Email = created.Email
	user.RegisteredAt = created.RegisteredAt
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
