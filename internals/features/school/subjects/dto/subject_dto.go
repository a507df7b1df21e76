// file: internals/features/school/subjects/dto/subject_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/subjects/model"
)

/* =======================
   Request
======================= */

type CreateSubjectRequest struct {
	SubjectName string `json:"subject_name" validate:"required,min=2,max=120"`
	SubjectCode string `json:"subject_code" validate:"required,min=1,max=30"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.SubjectName = strings.TrimSpace(r.SubjectName)
	r.SubjectCode = strings.ToUpper(strings.TrimSpace(r.SubjectCode))
}

func (r *CreateSubjectRequest) ToModel(schoolID uuid.UUID) *model.SubjectModel {
	return &model.SubjectModel{
		SubjectSchoolID: schoolID,
		SubjectName:     r.SubjectName,
		SubjectCode:     r.SubjectCode,
		SubjectIsActive: true,
	}
}

type UpdateSubjectRequest struct {
	SubjectName     *string `json:"subject_name" validate:"omitempty,min=2,max=120"`
	SubjectCode     *string `json:"subject_code" validate:"omitempty,min=1,max=30"`
	SubjectIsActive *bool   `json:"subject_is_active"`
}

func (r *UpdateSubjectRequest) Apply(m *model.SubjectModel) {
	if r.SubjectName != nil {
		m.SubjectName = strings.TrimSpace(*r.SubjectName)
	}
	if r.SubjectCode != nil {
		m.SubjectCode = strings.ToUpper(strings.TrimSpace(*r.SubjectCode))
	}
	if r.SubjectIsActive != nil {
		m.SubjectIsActive = *r.SubjectIsActive
	}
}

/* =======================
   Response
======================= */

type SubjectResponse struct {
	SubjectID       uuid.UUID `json:"subject_id"`
	SubjectName     string    `json:"subject_name"`
	SubjectCode     string    `json:"subject_code"`
	SubjectIsActive bool      `json:"subject_is_active"`
	SubjectCreatedAt time.Time `json:"subject_created_at"`
}

func FromModel(m *model.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:        m.SubjectID,
		SubjectName:      m.SubjectName,
		SubjectCode:      m.SubjectCode,
		SubjectIsActive:  m.SubjectIsActive,
		SubjectCreatedAt: m.SubjectCreatedAt,
	}
}

func FromModels(ms []model.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
