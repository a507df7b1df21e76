// file: internals/features/cbt/questions/model/question_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CBTQuestionModel: soal pilihan ganda milik satu ujian.
type CBTQuestionModel struct {
	QuestionID       uuid.UUID `json:"question_id" gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey"`
	QuestionSchoolID uuid.UUID `json:"question_school_id" gorm:"column:question_school_id;type:uuid;not null;index"`
	QuestionTestID   uuid.UUID `json:"question_test_id" gorm:"column:question_test_id;type:uuid;not null;index"`

	QuestionText string `json:"question_text" gorm:"column:question_text;type:text;not null"`

	QuestionOptionA string `json:"question_option_a" gorm:"column:question_option_a;type:text;not null"`
	QuestionOptionB string `json:"question_option_b" gorm:"column:question_option_b;type:text;not null"`
	QuestionOptionC string `json:"question_option_c" gorm:"column:question_option_c;type:text;not null"`
	QuestionOptionD string `json:"question_option_d" gorm:"column:question_option_d;type:text;not null"`

	QuestionCorrect string `json:"question_correct" gorm:"column:question_correct;type:varchar(1);not null"` // A/B/C/D
	QuestionPoints  int    `json:"question_points" gorm:"column:question_points;not null;default:1"`

	QuestionCreatedAt time.Time      `json:"question_created_at" gorm:"column:question_created_at;autoCreateTime"`
	QuestionUpdatedAt time.Time      `json:"question_updated_at" gorm:"column:question_updated_at;autoUpdateTime"`
	QuestionDeletedAt gorm.DeletedAt `json:"-" gorm:"column:question_deleted_at;index"`
}

func (CBTQuestionModel) TableName() string { return "cbt_questions" }

const BankQuestionTypeMultipleChoice = "multiple_choice"

// BankQuestionModel: bank soal sekolah, sumber impor ke ujian.
type BankQuestionModel struct {
	BankQuestionID       uuid.UUID `json:"bank_question_id" gorm:"column:bank_question_id;type:uuid;default:gen_random_uuid();primaryKey"`
	BankQuestionSchoolID uuid.UUID `json:"bank_question_school_id" gorm:"column:bank_question_school_id;type:uuid;not null;index"`
	BankQuestionSubjectID uuid.UUID `json:"bank_question_subject_id" gorm:"column:bank_question_subject_id;type:uuid;not null;index"`

	BankQuestionType string `json:"bank_question_type" gorm:"column:bank_question_type;type:varchar(20);not null;default:'multiple_choice'"`

	BankQuestionText    string  `json:"bank_question_text" gorm:"column:bank_question_text;type:text;not null"`
	BankQuestionOptionA *string `json:"bank_question_option_a" gorm:"column:bank_question_option_a;type:text"`
	BankQuestionOptionB *string `json:"bank_question_option_b" gorm:"column:bank_question_option_b;type:text"`
	BankQuestionOptionC *string `json:"bank_question_option_c" gorm:"column:bank_question_option_c;type:text"`
	BankQuestionOptionD *string `json:"bank_question_option_d" gorm:"column:bank_question_option_d;type:text"`
	BankQuestionCorrect *string `json:"bank_question_correct" gorm:"column:bank_question_correct;type:varchar(1)"`
	BankQuestionPoints  int     `json:"bank_question_points" gorm:"column:bank_question_points;not null;default:1"`

	BankQuestionCreatedAt time.Time      `json:"bank_question_created_at" gorm:"column:bank_question_created_at;autoCreateTime"`
	BankQuestionDeletedAt gorm.DeletedAt `json:"-" gorm:"column:bank_question_deleted_at;index"`
}

func (BankQuestionModel) TableName() string { return "cbt_bank_questions" }
