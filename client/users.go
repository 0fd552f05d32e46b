package client

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

type User struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName,omitempty"`
	LastName  string     `json:"lastName,omitempty"`
	Currency  string     `json:"currency"`
	IsAdmin   bool       `json:"isAdmin"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type UsersService struct {
	client *Client
}

type RegisterParams struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Currency  string `json:"currency,omitempty"`
}

type UpdateProfileParams struct {
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Currency  *string `json:"currency,omitempty"`
}

type userEnvelope struct {
	User User `json:"user"`
}

type loginEnvelope struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type userListEnvelope struct {
	Users []User `json:"users"`
	pagination.Meta
}

func (s *UsersService) Register(ctx context.Context, params RegisterParams) (User, error) {
	env, err := do[userEnvelope](ctx, s.client, http.MethodPost, "/api/users/register", nil, params)

	return env.User, err
}

// Login authenticates and installs the returned token on the client.
func (s *UsersService) Login(ctx context.Context, username, password string) (User, error) {
	body := map[string]string{"username": username, "password": password}

	env, err := do[loginEnvelope](ctx, s.client, http.MethodPost, "/api/users/login", nil, body)
	if err != nil {
		return User{}, err
	}

	s.client.SetToken(env.Token)

	return env.User, nil
}

func (s *UsersService) Me(ctx context.Context) (User, error) {
	env, err := do[userEnvelope](ctx, s.client, http.MethodGet, "/api/users/me", nil, nil)

	return env.User, err
}

func (s *UsersService) UpdateMe(ctx context.Context, params UpdateProfileParams) (User, error) {
	env, err := do[userEnvelope](ctx, s.client, http.MethodPut, "/api/users/me", nil, params)

	return env.User, err
}

// List is admin-only; non-admin callers get a 403 APIError.
func (s *UsersService) List(ctx context.Context, page, limit int) ([]User, pagination.Meta, error) {
	q := pageQuery(nil, page, limit)

	env, err := do[userListEnvelope](ctx, s.client, http.MethodGet, "/api/users", q, nil)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return env.Users, env.Meta, nil
}
