// file: internals/features/school/schools/dto/school_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/schools/model"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* =========================================================
   Requests
   ========================================================= */

type UpdateSchoolRequest struct {
	SchoolName    *string `json:"school_name" validate:"omitempty,min=3,max=150"`
	SchoolAddress *string `json:"school_address" validate:"omitempty,max=1000"`
	SchoolPhone   *string `json:"school_phone" validate:"omitempty,max=30"`
	SchoolEmail   *string `json:"school_email" validate:"omitempty,email,max=255"`
	SchoolMotto   *string `json:"school_motto" validate:"omitempty,max=1000"`
}

func (r *UpdateSchoolRequest) Normalize() {
	if r.SchoolName != nil {
		v := strings.TrimSpace(*r.SchoolName)
		r.SchoolName = &v
	}
	r.SchoolAddress = trimPtr(r.SchoolAddress)
	r.SchoolPhone = trimPtr(r.SchoolPhone)
	r.SchoolEmail = trimPtr(r.SchoolEmail)
	r.SchoolMotto = trimPtr(r.SchoolMotto)
}

func (r *UpdateSchoolRequest) Apply(m *model.SchoolModel) {
	if r.SchoolName != nil {
		m.SchoolName = *r.SchoolName
	}
	if r.SchoolAddress != nil {
		m.SchoolAddress = r.SchoolAddress
	}
	if r.SchoolPhone != nil {
		m.SchoolPhone = r.SchoolPhone
	}
	if r.SchoolEmail != nil {
		m.SchoolEmail = r.SchoolEmail
	}
	if r.SchoolMotto != nil {
		m.SchoolMotto = r.SchoolMotto
	}
}

/* =========================================================
   Responses
   ========================================================= */

type SchoolResponse struct {
	SchoolID      uuid.UUID `json:"school_id"`
	SchoolName    string    `json:"school_name"`
	SchoolSlug    string    `json:"school_slug"`
	SchoolAddress *string   `json:"school_address,omitempty"`
	SchoolPhone   *string   `json:"school_phone,omitempty"`
	SchoolEmail   *string   `json:"school_email,omitempty"`
	SchoolMotto   *string   `json:"school_motto,omitempty"`
	SchoolIsActive bool     `json:"school_is_active"`
	SchoolCreatedAt time.Time `json:"school_created_at"`
}

func FromModel(m *model.SchoolModel) SchoolResponse {
	return SchoolResponse{
		SchoolID:       m.SchoolID,
		SchoolName:     m.SchoolName,
		SchoolSlug:     m.SchoolSlug,
		SchoolAddress:  m.SchoolAddress,
		SchoolPhone:    m.SchoolPhone,
		SchoolEmail:    m.SchoolEmail,
		SchoolMotto:    m.SchoolMotto,
		SchoolIsActive: m.SchoolIsActive,
		SchoolCreatedAt: m.SchoolCreatedAt,
	}
}
