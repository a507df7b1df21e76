// file: internals/features/cbt/attempts/service/scoring_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	questionModel "sekolahku_backend/internals/features/cbt/questions/model"
)

func question(correct string, points int) questionModel.CBTQuestionModel {
	return questionModel.CBTQuestionModel{
		QuestionID:      uuid.New(),
		QuestionCorrect: correct,
		QuestionPoints:  points,
	}
}

func TestScore_AllCorrect(t *testing.T) {
	q1 := question("A", 2)
	q2 := question("C", 3)

	score, max := Score([]questionModel.CBTQuestionModel{q1, q2}, map[string]string{
		q1.QuestionID.String(): "A",
		q2.QuestionID.String(): "c", // case-insensitive
	})

	assert.Equal(t, 5, score)
	assert.Equal(t, 5, max)
}

func TestScore_PartialAndUnanswered(t *testing.T) {
	q1 := question("B", 1)
	q2 := question("D", 4)
	q3 := question("A", 2)

	score, max := Score([]questionModel.CBTQuestionModel{q1, q2, q3}, map[string]string{
		q1.QuestionID.String(): "B",
		q2.QuestionID.String(): "A", // salah
		// q3 tidak dijawab
	})

	assert.Equal(t, 1, score)
	assert.Equal(t, 7, max)
}

func TestScore_UnknownChoiceCountsWrong(t *testing.T) {
	q1 := question("A", 2)

	score, max := Score([]questionModel.CBTQuestionModel{q1}, map[string]string{
		q1.QuestionID.String(): "E",
	})

	assert.Equal(t, 0, score)
	assert.Equal(t, 2, max)
}

func TestScore_NoQuestions(t *testing.T) {
	score, max := Score(nil, nil)
	assert.Zero(t, score)
	assert.Zero(t, max)
}
