// file: internals/features/school/curricula/dto/curriculum_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "sekolahku_backend/internals/features/school/curricula/model"
)

type CreateCurriculumRequest struct {
	CurriculumSubjectID    uuid.UUID `json:"curriculum_subject_id" validate:"required"`
	CurriculumLevel        int       `json:"curriculum_level" validate:"required,min=1,max=12"`
	CurriculumAcademicYear string    `json:"curriculum_academic_year" validate:"required,max=20"`
	CurriculumTopics       []string  `json:"curriculum_topics" validate:"required,min=1,dive,required,max=255"`
}

func (r *CreateCurriculumRequest) Normalize() {
	r.CurriculumAcademicYear = strings.TrimSpace(r.CurriculumAcademicYear)
	cleaned := make([]string, 0, len(r.CurriculumTopics))
	for _, t := range r.CurriculumTopics {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	r.CurriculumTopics = cleaned
}

func (r *CreateCurriculumRequest) ToModel(schoolID uuid.UUID) *model.CurriculumModel {
	return &model.CurriculumModel{
		CurriculumSchoolID:     schoolID,
		CurriculumSubjectID:    r.CurriculumSubjectID,
		CurriculumLevel:        r.CurriculumLevel,
		CurriculumAcademicYear: r.CurriculumAcademicYear,
		CurriculumTopics:       pq.StringArray(r.CurriculumTopics),
	}
}

// UpdateCurriculumRequest: ganti daftar topik utuh (urutan = urutan kirim).
type UpdateCurriculumRequest struct {
	CurriculumTopics []string `json:"curriculum_topics" validate:"required,min=1,dive,required,max=255"`
}

func (r *UpdateCurriculumRequest) Normalize() {
	cleaned := make([]string, 0, len(r.CurriculumTopics))
	for _, t := range r.CurriculumTopics {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	r.CurriculumTopics = cleaned
}

func (r *UpdateCurriculumRequest) Apply(m *model.CurriculumModel) {
	m.CurriculumTopics = pq.StringArray(r.CurriculumTopics)
}
