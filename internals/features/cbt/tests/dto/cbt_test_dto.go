// file: internals/features/cbt/tests/dto/cbt_test_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/cbt/tests/model"
)

type CreateTestRequest struct {
	TestClassID         uuid.UUID `json:"test_class_id" validate:"required"`
	TestSubjectID       uuid.UUID `json:"test_subject_id" validate:"required"`
	TestTitle           string    `json:"test_title" validate:"required,min=3,max=200"`
	TestDescription     *string   `json:"test_description"`
	TestDurationMinutes int       `json:"test_duration_minutes" validate:"required,min=5,max=480"`
	TestStartsAt        *time.Time `json:"test_starts_at"`
	TestEndsAt          *time.Time `json:"test_ends_at"`
}

func (r *CreateTestRequest) Normalize() {
	r.TestTitle = strings.TrimSpace(r.TestTitle)
}

// Validate: jadwal opsional; kalau keduanya terisi, selesai harus
// setelah mulai.
func (r *CreateTestRequest) ValidateWindow() map[string][]string {
	if r.TestStartsAt != nil && r.TestEndsAt != nil && !r.TestEndsAt.After(*r.TestStartsAt) {
		return map[string][]string{
			"test_ends_at": {"Jadwal selesai harus setelah jadwal mulai"},
		}
	}
	return nil
}

func (r *CreateTestRequest) ToModel(schoolID, teacherID uuid.UUID) *model.CBTTestModel {
	return &model.CBTTestModel{
		TestSchoolID:        schoolID,
		TestTeacherID:       teacherID,
		TestClassID:         r.TestClassID,
		TestSubjectID:       r.TestSubjectID,
		TestTitle:           r.TestTitle,
		TestDescription:     r.TestDescription,
		TestDurationMinutes: r.TestDurationMinutes,
		TestStartsAt:        r.TestStartsAt,
		TestEndsAt:          r.TestEndsAt,
		TestStatus:          model.TestStatusDraft,
	}
}

type UpdateTestRequest struct {
	TestTitle           *string    `json:"test_title" validate:"omitempty,min=3,max=200"`
	TestDescription     *string    `json:"test_description"`
	TestDurationMinutes *int       `json:"test_duration_minutes" validate:"omitempty,min=5,max=480"`
	TestStartsAt        *time.Time `json:"test_starts_at"`
	TestEndsAt          *time.Time `json:"test_ends_at"`
}

func (r *UpdateTestRequest) Apply(m *model.CBTTestModel) {
	if r.TestTitle != nil {
		m.TestTitle = strings.TrimSpace(*r.TestTitle)
	}
	if r.TestDescription != nil {
		m.TestDescription = r.TestDescription
	}
	if r.TestDurationMinutes != nil {
		m.TestDurationMinutes = *r.TestDurationMinutes
	}
	if r.TestStartsAt != nil {
		m.TestStartsAt = r.TestStartsAt
	}
	if r.TestEndsAt != nil {
		m.TestEndsAt = r.TestEndsAt
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published closed"`
}
