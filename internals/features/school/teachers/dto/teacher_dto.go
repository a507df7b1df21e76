// file: internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/teachers/model"
)

/* =======================
   Teacher
======================= */

type CreateTeacherRequest struct {
	TeacherUserID uuid.UUID `json:"teacher_user_id" validate:"required"`
	TeacherNIP    *string   `json:"teacher_nip" validate:"omitempty,max=30"`
	TeacherTitle  *string   `json:"teacher_title" validate:"omitempty,max=80"`
}

func (r *CreateTeacherRequest) ToModel(schoolID uuid.UUID) *model.TeacherModel {
	return &model.TeacherModel{
		TeacherSchoolID: schoolID,
		TeacherUserID:   r.TeacherUserID,
		TeacherNIP:      trimPtr(r.TeacherNIP),
		TeacherTitle:    trimPtr(r.TeacherTitle),
		TeacherIsActive: true,
	}
}

type UpdateTeacherRequest struct {
	TeacherNIP      *string `json:"teacher_nip" validate:"omitempty,max=30"`
	TeacherTitle    *string `json:"teacher_title" validate:"omitempty,max=80"`
	TeacherIsActive *bool   `json:"teacher_is_active"`
}

func (r *UpdateTeacherRequest) Apply(m *model.TeacherModel) {
	if r.TeacherNIP != nil {
		m.TeacherNIP = trimPtr(r.TeacherNIP)
	}
	if r.TeacherTitle != nil {
		m.TeacherTitle = trimPtr(r.TeacherTitle)
	}
	if r.TeacherIsActive != nil {
		m.TeacherIsActive = *r.TeacherIsActive
	}
}

type TeacherResponse struct {
	TeacherID        uuid.UUID `json:"teacher_id"`
	TeacherUserID    uuid.UUID `json:"teacher_user_id"`
	TeacherNIP       *string   `json:"teacher_nip,omitempty"`
	TeacherTitle     *string   `json:"teacher_title,omitempty"`
	TeacherIsActive  bool      `json:"teacher_is_active"`
	TeacherCreatedAt time.Time `json:"teacher_created_at"`
}

func FromModel(m *model.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:        m.TeacherID,
		TeacherUserID:    m.TeacherUserID,
		TeacherNIP:       m.TeacherNIP,
		TeacherTitle:     m.TeacherTitle,
		TeacherIsActive:  m.TeacherIsActive,
		TeacherCreatedAt: m.TeacherCreatedAt,
	}
}

func FromModels(ms []model.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

/* =======================
   Grants
======================= */

type CreateSubjectAssignmentRequest struct {
	SubjectAssignmentTeacherID uuid.UUID `json:"subject_assignment_teacher_id" validate:"required"`
	SubjectAssignmentSubjectID uuid.UUID `json:"subject_assignment_subject_id" validate:"required"`
	SubjectAssignmentClassID   uuid.UUID `json:"subject_assignment_class_id" validate:"required"`
}

func (r *CreateSubjectAssignmentRequest) ToModel(schoolID uuid.UUID) *model.SubjectAssignmentModel {
	return &model.SubjectAssignmentModel{
		SubjectAssignmentSchoolID:  schoolID,
		SubjectAssignmentTeacherID: r.SubjectAssignmentTeacherID,
		SubjectAssignmentSubjectID: r.SubjectAssignmentSubjectID,
		SubjectAssignmentClassID:   r.SubjectAssignmentClassID,
	}
}

type SetHomeroomRequest struct {
	HomeroomAssignmentTeacherID uuid.UUID `json:"homeroom_assignment_teacher_id" validate:"required"`
	HomeroomAssignmentClassID   uuid.UUID `json:"homeroom_assignment_class_id" validate:"required"`
}

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
