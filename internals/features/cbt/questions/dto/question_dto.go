// file: internals/features/cbt/questions/dto/question_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/cbt/questions/model"
)

type CreateQuestionRequest struct {
	QuestionText    string `json:"question_text" validate:"required,min=3"`
	QuestionOptionA string `json:"question_option_a" validate:"required"`
	QuestionOptionB string `json:"question_option_b" validate:"required"`
	QuestionOptionC string `json:"question_option_c" validate:"required"`
	QuestionOptionD string `json:"question_option_d" validate:"required"`
	QuestionCorrect string `json:"question_correct" validate:"required,oneof=A B C D"`
	QuestionPoints  int    `json:"question_points" validate:"required,min=1,max=100"`
}

func (r *CreateQuestionRequest) Normalize() {
	r.QuestionText = strings.TrimSpace(r.QuestionText)
	r.QuestionCorrect = strings.ToUpper(strings.TrimSpace(r.QuestionCorrect))
}

func (r *CreateQuestionRequest) ToModel(schoolID, testID uuid.UUID) *model.CBTQuestionModel {
	return &model.CBTQuestionModel{
		QuestionSchoolID: schoolID,
		QuestionTestID:   testID,
		QuestionText:     r.QuestionText,
		QuestionOptionA:  r.QuestionOptionA,
		QuestionOptionB:  r.QuestionOptionB,
		QuestionOptionC:  r.QuestionOptionC,
		QuestionOptionD:  r.QuestionOptionD,
		QuestionCorrect:  r.QuestionCorrect,
		QuestionPoints:   r.QuestionPoints,
	}
}

type UpdateQuestionRequest struct {
	QuestionText    *string `json:"question_text" validate:"omitempty,min=3"`
	QuestionOptionA *string `json:"question_option_a" validate:"omitempty,min=1"`
	QuestionOptionB *string `json:"question_option_b" validate:"omitempty,min=1"`
	QuestionOptionC *string `json:"question_option_c" validate:"omitempty,min=1"`
	QuestionOptionD *string `json:"question_option_d" validate:"omitempty,min=1"`
	QuestionCorrect *string `json:"question_correct" validate:"omitempty,oneof=A B C D"`
	QuestionPoints  *int    `json:"question_points" validate:"omitempty,min=1,max=100"`
}

func (r *UpdateQuestionRequest) Apply(m *model.CBTQuestionModel) {
	if r.QuestionText != nil {
		m.QuestionText = strings.TrimSpace(*r.QuestionText)
	}
	if r.QuestionOptionA != nil {
		m.QuestionOptionA = *r.QuestionOptionA
	}
	if r.QuestionOptionB != nil {
		m.QuestionOptionB = *r.QuestionOptionB
	}
	if r.QuestionOptionC != nil {
		m.QuestionOptionC = *r.QuestionOptionC
	}
	if r.QuestionOptionD != nil {
		m.QuestionOptionD = *r.QuestionOptionD
	}
	if r.QuestionCorrect != nil {
		m.QuestionCorrect = strings.ToUpper(strings.TrimSpace(*r.QuestionCorrect))
	}
	if r.QuestionPoints != nil {
		m.QuestionPoints = *r.QuestionPoints
	}
}

type CreateBankQuestionRequest struct {
	BankQuestionSubjectID uuid.UUID `json:"bank_question_subject_id" validate:"required"`
	BankQuestionText      string    `json:"bank_question_text" validate:"required,min=3"`
	BankQuestionOptionA   *string   `json:"bank_question_option_a"`
	BankQuestionOptionB   *string   `json:"bank_question_option_b"`
	BankQuestionOptionC   *string   `json:"bank_question_option_c"`
	BankQuestionOptionD   *string   `json:"bank_question_option_d"`
	BankQuestionCorrect   *string   `json:"bank_question_correct" validate:"omitempty,oneof=A B C D"`
	BankQuestionPoints    int       `json:"bank_question_points" validate:"required,min=1,max=100"`
}

func (r *CreateBankQuestionRequest) ToModel(schoolID uuid.UUID) *model.BankQuestionModel {
	return &model.BankQuestionModel{
		BankQuestionSchoolID:  schoolID,
		BankQuestionSubjectID: r.BankQuestionSubjectID,
		BankQuestionType:      model.BankQuestionTypeMultipleChoice,
		BankQuestionText:      strings.TrimSpace(r.BankQuestionText),
		BankQuestionOptionA:   r.BankQuestionOptionA,
		BankQuestionOptionB:   r.BankQuestionOptionB,
		BankQuestionOptionC:   r.BankQuestionOptionC,
		BankQuestionOptionD:   r.BankQuestionOptionD,
		BankQuestionCorrect:   r.BankQuestionCorrect,
		BankQuestionPoints:    r.BankQuestionPoints,
	}
}

type ImportFromBankRequest struct {
	BankQuestionIDs []uuid.UUID `json:"bank_question_ids" validate:"required,min=1"`
}
