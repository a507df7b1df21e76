// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/students/model"
)

/* =======================
   Request
======================= */

type CreateStudentRequest struct {
	StudentClassID         *uuid.UUID `json:"student_class_id"`
	StudentAdmissionNumber string     `json:"student_admission_number" validate:"required,min=1,max=40"`
	StudentFullName        string     `json:"student_full_name" validate:"required,min=2,max=120"`
	StudentGender          *string    `json:"student_gender" validate:"omitempty,oneof=L P"`
	StudentBirthDate       *time.Time `json:"student_birth_date"`
	StudentGuardianName    *string    `json:"student_guardian_name" validate:"omitempty,max=120"`
	StudentGuardianPhone   *string    `json:"student_guardian_phone" validate:"omitempty,max=30"`
}

func (r *CreateStudentRequest) Normalize() {
	r.StudentAdmissionNumber = strings.TrimSpace(r.StudentAdmissionNumber)
	r.StudentFullName = strings.TrimSpace(r.StudentFullName)
}

func (r *CreateStudentRequest) ToModel(schoolID uuid.UUID) *model.StudentModel {
	return &model.StudentModel{
		StudentSchoolID:        schoolID,
		StudentClassID:         r.StudentClassID,
		StudentAdmissionNumber: r.StudentAdmissionNumber,
		StudentFullName:        r.StudentFullName,
		StudentGender:          r.StudentGender,
		StudentBirthDate:       r.StudentBirthDate,
		StudentGuardianName:    trimPtr(r.StudentGuardianName),
		StudentGuardianPhone:   trimPtr(r.StudentGuardianPhone),
		StudentIsActive:        true,
	}
}

type UpdateStudentRequest struct {
	StudentClassID         *uuid.UUID `json:"student_class_id"`
	StudentAdmissionNumber *string    `json:"student_admission_number" validate:"omitempty,min=1,max=40"`
	StudentFullName        *string    `json:"student_full_name" validate:"omitempty,min=2,max=120"`
	StudentGender          *string    `json:"student_gender" validate:"omitempty,oneof=L P"`
	StudentBirthDate       *time.Time `json:"student_birth_date"`
	StudentGuardianName    *string    `json:"student_guardian_name" validate:"omitempty,max=120"`
	StudentGuardianPhone   *string    `json:"student_guardian_phone" validate:"omitempty,max=30"`
	StudentUserID          *uuid.UUID `json:"student_user_id"`
	StudentIsActive        *bool      `json:"student_is_active"`
}

func (r *UpdateStudentRequest) Apply(m *model.StudentModel) {
	if r.StudentClassID != nil {
		m.StudentClassID = r.StudentClassID
	}
	if r.StudentAdmissionNumber != nil {
		m.StudentAdmissionNumber = strings.TrimSpace(*r.StudentAdmissionNumber)
	}
	if r.StudentFullName != nil {
		m.StudentFullName = strings.TrimSpace(*r.StudentFullName)
	}
	if r.StudentGender != nil {
		m.StudentGender = r.StudentGender
	}
	if r.StudentBirthDate != nil {
		m.StudentBirthDate = r.StudentBirthDate
	}
	if r.StudentGuardianName != nil {
		m.StudentGuardianName = trimPtr(r.StudentGuardianName)
	}
	if r.StudentGuardianPhone != nil {
		m.StudentGuardianPhone = trimPtr(r.StudentGuardianPhone)
	}
	if r.StudentUserID != nil {
		m.StudentUserID = r.StudentUserID
	}
	if r.StudentIsActive != nil {
		m.StudentIsActive = *r.StudentIsActive
	}
}

/* =======================
   Response
======================= */

type StudentResponse struct {
	StudentID              uuid.UUID  `json:"student_id"`
	StudentClassID         *uuid.UUID `json:"student_class_id,omitempty"`
	StudentUserID          *uuid.UUID `json:"student_user_id,omitempty"`
	StudentAdmissionNumber string     `json:"student_admission_number"`
	StudentFullName        string     `json:"student_full_name"`
	StudentGender          *string    `json:"student_gender,omitempty"`
	StudentBirthDate       *time.Time `json:"student_birth_date,omitempty"`
	StudentGuardianName    *string    `json:"student_guardian_name,omitempty"`
	StudentGuardianPhone   *string    `json:"student_guardian_phone,omitempty"`
	StudentIsActive        bool       `json:"student_is_active"`
	StudentCreatedAt       time.Time  `json:"student_created_at"`
}

func FromModel(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:              m.StudentID,
		StudentClassID:         m.StudentClassID,
		StudentUserID:          m.StudentUserID,
		StudentAdmissionNumber: m.StudentAdmissionNumber,
		StudentFullName:        m.StudentFullName,
		StudentGender:          m.StudentGender,
		StudentBirthDate:       m.StudentBirthDate,
		StudentGuardianName:    m.StudentGuardianName,
		StudentGuardianPhone:   m.StudentGuardianPhone,
		StudentIsActive:        m.StudentIsActive,
		StudentCreatedAt:       m.StudentCreatedAt,
	}
}

func FromModels(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
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
