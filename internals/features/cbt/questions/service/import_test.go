// file: internals/features/cbt/questions/service/import_test.go
package service

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "sekolahku_backend/internals/features/cbt/questions/model"
)

func ptr(s string) *string { return &s }

func bankQuestion(schoolID uuid.UUID, text string) model.BankQuestionModel {
	return model.BankQuestionModel{
		BankQuestionID:       uuid.New(),
		BankQuestionSchoolID: schoolID,
		BankQuestionType:     model.BankQuestionTypeMultipleChoice,
		BankQuestionText:     text,
		BankQuestionOptionA:  ptr("a"),
		BankQuestionOptionB:  ptr("b"),
		BankQuestionOptionC:  ptr("c"),
		BankQuestionOptionD:  ptr("d"),
		BankQuestionCorrect:  ptr("A"),
		BankQuestionPoints:   2,
	}
}

func TestBuildImport_HappyPath(t *testing.T) {
	schoolID, testID := uuid.New(), uuid.New()

	qs, summary := BuildImport([]model.BankQuestionModel{
		bankQuestion(schoolID, "Soal 1"),
		bankQuestion(schoolID, "Soal 2"),
	}, schoolID, testID, nil)

	require.Len(t, qs, 2)
	assert.Equal(t, 2, summary.Imported)
	assert.Empty(t, summary.Skipped)
	assert.Equal(t, testID, qs[0].QuestionTestID)
	assert.Equal(t, 2, qs[0].QuestionPoints)
}

func TestBuildImport_SkipWrongSchool(t *testing.T) {
	schoolID, testID := uuid.New(), uuid.New()

	qs, summary := BuildImport([]model.BankQuestionModel{
		bankQuestion(uuid.New(), "Soal asing"),
	}, schoolID, testID, nil)

	assert.Empty(t, qs)
	require.Len(t, summary.Skipped, 1)
	assert.Equal(t, SkipReasonWrongSchool, summary.Skipped[0].Reason)
}

func TestBuildImport_SkipWrongType(t *testing.T) {
	schoolID, testID := uuid.New(), uuid.New()
	bq := bankQuestion(schoolID, "Esai")
	bq.BankQuestionType = "essay"

	qs, summary := BuildImport([]model.BankQuestionModel{bq}, schoolID, testID, nil)

	assert.Empty(t, qs)
	require.Len(t, summary.Skipped, 1)
	assert.Equal(t, SkipReasonWrongType, summary.Skipped[0].Reason)
}

func TestBuildImport_SkipIncompleteOptions(t *testing.T) {
	schoolID, testID := uuid.New(), uuid.New()

	missingOption := bankQuestion(schoolID, "Tanpa opsi C")
	missingOption.BankQuestionOptionC = nil

	badKey := bankQuestion(schoolID, "Kunci aneh")
	badKey.BankQuestionCorrect = ptr("E")

	qs, summary := BuildImport([]model.BankQuestionModel{missingOption, badKey}, schoolID, testID, nil)

	assert.Empty(t, qs)
	require.Len(t, summary.Skipped, 2)
	assert.Equal(t, SkipReasonIncompleteOptions, summary.Skipped[0].Reason)
	assert.Equal(t, SkipReasonIncompleteOptions, summary.Skipped[1].Reason)
}

func TestBuildImport_SkipDuplicateAgainstExisting(t *testing.T) {
	schoolID, testID := uuid.New(), uuid.New()

	existing := map[string]struct{}{"Soal lama": {}}
	qs, summary := BuildImport([]model.BankQuestionModel{
		bankQuestion(schoolID, "Soal lama"),
		bankQuestion(schoolID, "Soal baru"),
	}, schoolID, testID, existing)

	require.Len(t, qs, 1)
	assert.Equal(t, "Soal baru", qs[0].QuestionText)
	require.Len(t, summary.Skipped, 1)
	assert.Equal(t, SkipReasonDuplicate, summary.Skipped[0].Reason)
}

func TestImportSummaryCounts_AggregateOnly(t *testing.T) {
	schoolID, testID := uuid.New(), uuid.New()

	_, summary := BuildImport([]model.BankQuestionModel{
		bankQuestion(schoolID, "Soal 1"),
		bankQuestion(uuid.New(), "Soal asing"), // sekolah lain
		bankQuestion(schoolID, "Soal 1"),       // duplikat
	}, schoolID, testID, nil)

	counts := summary.Counts()
	assert.Equal(t, 1, counts.Imported)
	assert.Equal(t, 2, counts.Skipped)

	// bentuk yang keluar ke client: angka saja, tanpa id/alasan per item
	raw, err := sonic.Marshal(counts)
	require.NoError(t, err)
	assert.JSONEq(t, `{"imported":1,"skipped":2}`, string(raw))
	assert.NotContains(t, string(raw), SkipReasonWrongSchool)
}

func TestBuildImport_IdempotentWithinBatch(t *testing.T) {
	schoolID, testID := uuid.New(), uuid.New()

	qs, summary := BuildImport([]model.BankQuestionModel{
		bankQuestion(schoolID, "Soal kembar"),
		bankQuestion(schoolID, "Soal kembar"),
	}, schoolID, testID, nil)

	require.Len(t, qs, 1)
	assert.Equal(t, 1, summary.Imported)
	require.Len(t, summary.Skipped, 1)
	assert.Equal(t, SkipReasonDuplicate, summary.Skipped[0].Reason)
}
