package user

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/auth"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrDuplicate          = errors.New("username or email already in use")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	UpdateUser(ctx context.Context, u *User) error
	ListUsers(ctx context.Context, filter ListFilter) ([]*User, int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type RegisterParams struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Currency  Currency
}

type ListFilter struct {
	Page  int
	Limit int
}

// Register hashes the password and stores a new user.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	currency := params.Currency
	if currency == "" {
		currency = CurrencyUSD
	}

	u := &User{
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: hash,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Currency:     currency,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Authenticate verifies a username/password pair. A wrong username and a
// wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if !auth.CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetUser(ctx, id)
}

// Update persists profile changes. A non-empty newPassword is re-hashed
// before storage.
func (s *Service) Update(ctx context.Context, u *User, newPassword string) error {
	if newPassword != "" {
		hash, err := auth.HashPassword(newPassword)
		if err != nil {
			return err
		}

		u.PasswordHash = hash
	}

	return s.repo.UpdateUser(ctx, u)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*User, pagination.Meta, error) {
	filter.Page, filter.Limit = pagination.Normalize(filter.Page, filter.Limit)

	users, count, err := s.repo.ListUsers(ctx, filter)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return users, pagination.NewMeta(count, filter.Page, filter.Limit), nil
}
