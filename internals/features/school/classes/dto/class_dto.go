// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/classes/model"
)

/* =========================================================
   Requests
   ========================================================= */

// SchoolID dipaksa dari token; tidak dari body.
type CreateClassRequest struct {
	ClassName         string  `json:"class_name" validate:"required,max=120"`
	ClassLevel        *string `json:"class_level" validate:"omitempty,max=40"`
	ClassAcademicYear string  `json:"class_academic_year" validate:"required,max=20"`
}

func (r *CreateClassRequest) Normalize() {
	r.ClassName = strings.TrimSpace(r.ClassName)
	r.ClassAcademicYear = strings.TrimSpace(r.ClassAcademicYear)
	if r.ClassLevel != nil {
		v := strings.TrimSpace(*r.ClassLevel)
		if v == "" {
			r.ClassLevel = nil
		} else {
			r.ClassLevel = &v
		}
	}
}

func (r *CreateClassRequest) ToModel(schoolID uuid.UUID) *model.ClassModel {
	return &model.ClassModel{
		ClassSchoolID:     schoolID,
		ClassName:         r.ClassName,
		ClassLevel:        r.ClassLevel,
		ClassAcademicYear: r.ClassAcademicYear,
	}
}

type UpdateClassRequest struct {
	ClassName         *string `json:"class_name" validate:"omitempty,max=120"`
	ClassLevel        *string `json:"class_level" validate:"omitempty,max=40"`
	ClassAcademicYear *string `json:"class_academic_year" validate:"omitempty,max=20"`
	ClassIsActive     *bool   `json:"class_is_active" validate:"omitempty"`
}

func (r *UpdateClassRequest) Apply(m *model.ClassModel) {
	if r.ClassName != nil {
		m.ClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.ClassLevel != nil {
		m.ClassLevel = r.ClassLevel
	}
	if r.ClassAcademicYear != nil {
		m.ClassAcademicYear = strings.TrimSpace(*r.ClassAcademicYear)
	}
	if r.ClassIsActive != nil {
		m.ClassIsActive = *r.ClassIsActive
	}
}

/* =========================================================
   Responses
   ========================================================= */

type ClassResponse struct {
	ClassID           uuid.UUID `json:"class_id"`
	ClassName         string    `json:"class_name"`
	ClassLevel        *string   `json:"class_level,omitempty"`
	ClassAcademicYear string    `json:"class_academic_year"`
	ClassIsActive     bool      `json:"class_is_active"`
	ClassCreatedAt    time.Time `json:"class_created_at"`
}

func FromModel(m *model.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:           m.ClassID,
		ClassName:         m.ClassName,
		ClassLevel:        m.ClassLevel,
		ClassAcademicYear: m.ClassAcademicYear,
		ClassIsActive:     m.ClassIsActive,
		ClassCreatedAt:    m.ClassCreatedAt,
	}
}

func FromModels(ms []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
