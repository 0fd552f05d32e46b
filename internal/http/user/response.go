package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/user"
)

// userResponse never carries the password hash.
type userResponse struct {
	ID        uuid.UUID     `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	FirstName string        `json:"firstName,omitempty"`
	LastName  string        `json:"lastName,omitempty"`
	Currency  user.Currency `json:"currency"`
	IsAdmin   bool          `json:"isAdmin"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
}

type singleResponse struct {
	User    userResponse `json:"user"`
	Message string       `json:"message,omitempty"`
}

type loginResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type listResponse struct {
	Users []userResponse `json:"users"`
	pagination.Meta
}

func toResponse(u *user.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Currency:  u.Currency,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toListResponse(users []*user.User, meta pagination.Meta) listResponse {
	resp := listResponse{
		Users: make([]userResponse, len(users)),
		Meta:  meta,
	}
	for i, u := range users {
		resp.Users[i] = toResponse(u)
	}

	return resp
}
