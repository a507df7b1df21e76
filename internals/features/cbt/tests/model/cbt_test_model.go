// file: internals/features/cbt/tests/model/cbt_test_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TestStatusDraft     = "draft"
	TestStatusPublished = "published"
	TestStatusClosed    = "closed"
)

// CBTTestModel: ujian online milik guru, status draft → published → closed.
type CBTTestModel struct {
	TestID       uuid.UUID `json:"test_id" gorm:"column:test_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TestSchoolID uuid.UUID `json:"test_school_id" gorm:"column:test_school_id;type:uuid;not null;index"`

	TestTeacherID uuid.UUID `json:"test_teacher_id" gorm:"column:test_teacher_id;type:uuid;not null;index"`
	TestClassID   uuid.UUID `json:"test_class_id" gorm:"column:test_class_id;type:uuid;not null;index"`
	TestSubjectID uuid.UUID `json:"test_subject_id" gorm:"column:test_subject_id;type:uuid;not null"`

	TestTitle           string `json:"test_title" gorm:"column:test_title;type:varchar(200);not null"`
	TestDescription     *string `json:"test_description" gorm:"column:test_description;type:text"`
	TestDurationMinutes int    `json:"test_duration_minutes" gorm:"column:test_duration_minutes;not null;default:60"`

	// Jadwal opsional: nil = tidak dibatasi di sisi itu.
	TestStartsAt *time.Time `json:"test_starts_at" gorm:"column:test_starts_at"`
	TestEndsAt   *time.Time `json:"test_ends_at" gorm:"column:test_ends_at"`

	TestStatus string `json:"test_status" gorm:"column:test_status;type:varchar(10);not null;default:'draft';index"`

	TestCreatedAt time.Time      `json:"test_created_at" gorm:"column:test_created_at;autoCreateTime"`
	TestUpdatedAt time.Time      `json:"test_updated_at" gorm:"column:test_updated_at;autoUpdateTime"`
	TestDeletedAt gorm.DeletedAt `json:"-" gorm:"column:test_deleted_at;index"`
}

func (CBTTestModel) TableName() string { return "cbt_tests" }

// WindowOpen: attempt hanya boleh dibuat dalam rentang jadwal.
// Sisi jadwal yang nil dianggap terbuka.
func (m *CBTTestModel) WindowOpen(now time.Time) bool {
	if m.TestStartsAt != nil && now.Before(*m.TestStartsAt) {
		return false
	}
	if m.TestEndsAt != nil && !now.Before(*m.TestEndsAt) {
		return false
	}
	return true
}

// WindowOrdered: kalau kedua jadwal terisi, selesai harus SETELAH mulai.
func (m *CBTTestModel) WindowOrdered() bool {
	if m.TestStartsAt == nil || m.TestEndsAt == nil {
		return true
	}
	return m.TestEndsAt.After(*m.TestStartsAt)
}
