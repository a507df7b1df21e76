// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/users/user/model"
)

/* =========================================================
   Requests
   ========================================================= */

// Create dipakai admin untuk provisioning akun staf/siswa.
// SchoolID dipaksa dari token admin, bukan dari body.
type CreateUserRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin principal teacher clerk student"`
}

func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

func (r *CreateUserRequest) ToModel(schoolID uuid.UUID, passwordHash string) *model.UserModel {
	return &model.UserModel{
		SchoolID: schoolID,
		UserName: r.UserName,
		FullName: r.FullName,
		Email:    r.Email,
		Password: passwordHash,
		Role:     r.Role,
	}
}

type UpdateUserRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin principal teacher clerk student"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`
}

func (r *UpdateUserRequest) Apply(m *model.UserModel) {
	if r.UserName != nil {
		m.UserName = strings.TrimSpace(*r.UserName)
	}
	if r.FullName != nil {
		m.FullName = strings.TrimSpace(*r.FullName)
	}
	if r.Role != nil {
		m.Role = strings.ToLower(strings.TrimSpace(*r.Role))
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

/* =========================================================
   Responses
   ========================================================= */

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	SchoolID  uuid.UUID `json:"school_id"`
	UserName  string    `json:"user_name"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModel(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		SchoolID:  m.SchoolID,
		UserName:  m.UserName,
		FullName:  m.FullName,
		Email:     m.Email,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func FromModels(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
