// file: internals/features/school/teachers/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SubjectAssignmentModel: grant guru → (mapel, kelas).
type SubjectAssignmentModel struct {
	SubjectAssignmentID       uuid.UUID `json:"subject_assignment_id" gorm:"column:subject_assignment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SubjectAssignmentSchoolID uuid.UUID `json:"subject_assignment_school_id" gorm:"column:subject_assignment_school_id;type:uuid;not null;index"`

	SubjectAssignmentTeacherID uuid.UUID `json:"subject_assignment_teacher_id" gorm:"column:subject_assignment_teacher_id;type:uuid;not null;index;uniqueIndex:uq_subject_assignments,priority:1"`
	SubjectAssignmentSubjectID uuid.UUID `json:"subject_assignment_subject_id" gorm:"column:subject_assignment_subject_id;type:uuid;not null;uniqueIndex:uq_subject_assignments,priority:2"`
	SubjectAssignmentClassID   uuid.UUID `json:"subject_assignment_class_id" gorm:"column:subject_assignment_class_id;type:uuid;not null;uniqueIndex:uq_subject_assignments,priority:3"`

	SubjectAssignmentCreatedAt time.Time `json:"subject_assignment_created_at" gorm:"column:subject_assignment_created_at;autoCreateTime"`
}

func (SubjectAssignmentModel) TableName() string { return "subject_assignments" }

// HomeroomAssignmentModel: wali kelas. Satu kelas satu wali.
type HomeroomAssignmentModel struct {
	HomeroomAssignmentID       uuid.UUID `json:"homeroom_assignment_id" gorm:"column:homeroom_assignment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	HomeroomAssignmentSchoolID uuid.UUID `json:"homeroom_assignment_school_id" gorm:"column:homeroom_assignment_school_id;type:uuid;not null;index"`

	HomeroomAssignmentTeacherID uuid.UUID `json:"homeroom_assignment_teacher_id" gorm:"column:homeroom_assignment_teacher_id;type:uuid;not null;index"`
	HomeroomAssignmentClassID   uuid.UUID `json:"homeroom_assignment_class_id" gorm:"column:homeroom_assignment_class_id;type:uuid;not null;uniqueIndex:uq_homeroom_class"`

	HomeroomAssignmentCreatedAt time.Time `json:"homeroom_assignment_created_at" gorm:"column:homeroom_assignment_created_at;autoCreateTime"`
}

func (HomeroomAssignmentModel) TableName() string { return "homeroom_assignments" }
