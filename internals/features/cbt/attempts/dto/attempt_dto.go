// file: internals/features/cbt/attempts/dto/attempt_dto.go
package dto

import (
	"github.com/google/uuid"
)

type StartAttemptRequest struct {
	TestID uuid.UUID `json:"test_id" validate:"required"`
}

// SubmitAttemptRequest: jawaban {question_id: pilihan}.
type SubmitAttemptRequest struct {
	Answers map[string]string `json:"answers" validate:"required,min=1"`
}
