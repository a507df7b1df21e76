// file: internals/features/cbt/attempts/model/attempt_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusSubmitted  = "submitted"
)

// CBTAttemptModel: satu siswa satu attempt per ujian.
type CBTAttemptModel struct {
	AttemptID       uuid.UUID `json:"attempt_id" gorm:"column:attempt_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AttemptSchoolID uuid.UUID `json:"attempt_school_id" gorm:"column:attempt_school_id;type:uuid;not null;index"`

	AttemptTestID    uuid.UUID `json:"attempt_test_id" gorm:"column:attempt_test_id;type:uuid;not null;index;uniqueIndex:uq_attempts_per_student,priority:1"`
	AttemptStudentID uuid.UUID `json:"attempt_student_id" gorm:"column:attempt_student_id;type:uuid;not null;uniqueIndex:uq_attempts_per_student,priority:2"`

	AttemptStatus string `json:"attempt_status" gorm:"column:attempt_status;type:varchar(15);not null;default:'in_progress'"`

	// jawaban {question_id: "A"|"B"|"C"|"D"}
	AttemptAnswers datatypes.JSON `json:"attempt_answers" gorm:"column:attempt_answers;type:jsonb"`

	AttemptScore    *int `json:"attempt_score" gorm:"column:attempt_score"`
	AttemptMaxScore *int `json:"attempt_max_score" gorm:"column:attempt_max_score"`

	AttemptStartedAt   time.Time  `json:"attempt_started_at" gorm:"column:attempt_started_at;autoCreateTime"`
	AttemptSubmittedAt *time.Time `json:"attempt_submitted_at" gorm:"column:attempt_submitted_at"`
}

func (CBTAttemptModel) TableName() string { return "cbt_attempts" }
