// internal/service/user_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"usuarios-api/internal/domain"
	"usuarios-api/internal/repository"
	"usuarios-api/internal/util"
	"usuarios-api/pkg/db"
)

// ConnectionAcquirer hands out one database connection per call.
// *db.ConnectionManager implements it.
type ConnectionAcquirer interface {
	Acquire(ctx context.Context) (db.Connection, error)
}

// CreateUserInput carries the fields of a user registration request.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UserService defines the interface for user-related business logic.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	connections ConnectionAcquirer
	userRepo    repository.UserRepository
	beginTx     db.BeginTxFunc    // Injected dependency for beginning transactions
	commitTx    db.CommitTxFunc   // Injected dependency for committing transactions
	rollbackTx  db.RollbackTxFunc // Injected dependency for rolling back transactions
}

// NewUserService creates a new instance of UserService.
func NewUserService(
	connections ConnectionAcquirer,
	userRepo repository.UserRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) UserService {
	return &userService{
		connections: connections,
		userRepo:    userRepo,
		beginTx:     beginTx,
		commitTx:    commitTx,
		rollbackTx:  rollbackTx,
	}
}

// ListUsers returns all users, newest first, on a connection that is
// released before returning.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	conn, err := s.connections.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer conn.Close()

	users, err := s.userRepo.ListUsers(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// CreateUser validates input, then inserts exactly one user in its own
// transaction. Validation failures never touch the database.
func (s *userService) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	user := domain.NewUser(input.Name, input.Email, input.Password)
	if missing := user.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields: %s", util.ErrInvalidInput, strings.Join(missing, ", "))
	}

	conn, err := s.connections.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	defer conn.Close()

	txController, err := s.beginTx(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("create user: %w: failed to begin transaction: %w", util.ErrQuery, err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("create user: transaction controller does not implement DBExecutor")
	}

	if err := s.userRepo.CreateUser(ctx, txExecutor, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("create user: %w: failed to commit transaction: %w", util.ErrQuery, err)
	}

	return user, nil
}
