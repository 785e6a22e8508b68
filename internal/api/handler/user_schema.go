package handler

import (
	"time"

	"github.com/wisensor/wisensor-api/internal/core/domain"
)

type createUserRequest struct {
	Username string   `json:"username" validate:"required,min=3,max=50"`
	Email    string   `json:"email"    validate:"required,email,max=100"`
	Password string   `json:"password" validate:"required,min=6"`
	Roles    []string `json:"roles"`
}

// updateUserRequest is a partial merge: absent fields stay untouched.
type updateUserRequest struct {
	Username *string   `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string   `json:"email"    validate:"omitempty,email,max=100"`
	Password *string   `json:"password" validate:"omitempty,min=6"`
	IsActive *bool     `json:"is_active"`
	Roles    *[]string `json:"roles"`
}

type roleSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type userResponse struct {
	ID        uint          `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	IsActive  bool          `json:"is_active"`
	Roles     []roleSummary `json:"roles"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func newUserResponse(u *domain.User) userResponse {
	roles := make([]roleSummary, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, roleSummary{ID: r.ID, Name: r.Name})
	}
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsActive:  u.IsActive,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func newUserListResponse(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, newUserResponse(&users[i]))
	}
	return out
}
