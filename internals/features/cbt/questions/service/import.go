// file: internals/features/cbt/questions/service/import.go
package service

import (
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/cbt/questions/model"
)

const (
	SkipReasonWrongSchool       = "beda sekolah"
	SkipReasonWrongType         = "bukan pilihan ganda"
	SkipReasonDuplicate         = "soal sudah ada di ujian"
	SkipReasonIncompleteOptions = "opsi jawaban tidak lengkap"
)

// SkippedQuestion dipakai internal (log + audit) saja, tidak pernah
// dikirim ke client: alasan per-id bisa membocorkan keberadaan soal
// milik sekolah lain.
type SkippedQuestion struct {
	BankQuestionID uuid.UUID
	Reason         string
}

type ImportSummary struct {
	Imported int
	Skipped  []SkippedQuestion
}

// ImportCounts: satu-satunya bentuk yang boleh keluar lewat API —
// agregat saja, tanpa alasan per item.
type ImportCounts struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

func (s ImportSummary) Counts() ImportCounts {
	return ImportCounts{Imported: s.Imported, Skipped: len(s.Skipped)}
}

// BuildImport: saring soal bank sebelum masuk ujian. Aturan skip:
// beda sekolah, bukan pilihan ganda, duplikat teks persis dengan soal
// yang sudah ada, atau opsi/kunci tidak lengkap. Impor ulang bank yang
// sama tidak menggandakan soal (duplikat ke-skip).
func BuildImport(bankQuestions []model.BankQuestionModel, schoolID, testID uuid.UUID, existingTexts map[string]struct{}) ([]model.CBTQuestionModel, ImportSummary) {
	if existingTexts == nil {
		existingTexts = make(map[string]struct{})
	}

	out := make([]model.CBTQuestionModel, 0, len(bankQuestions))
	summary := ImportSummary{Skipped: make([]SkippedQuestion, 0)}

	for _, bq := range bankQuestions {
		if bq.BankQuestionSchoolID != schoolID {
			summary.Skipped = append(summary.Skipped, SkippedQuestion{bq.BankQuestionID, SkipReasonWrongSchool})
			continue
		}
		if bq.BankQuestionType != model.BankQuestionTypeMultipleChoice {
			summary.Skipped = append(summary.Skipped, SkippedQuestion{bq.BankQuestionID, SkipReasonWrongType})
			continue
		}
		if !optionsComplete(&bq) {
			summary.Skipped = append(summary.Skipped, SkippedQuestion{bq.BankQuestionID, SkipReasonIncompleteOptions})
			continue
		}
		text := strings.TrimSpace(bq.BankQuestionText)
		if _, dup := existingTexts[text]; dup {
			summary.Skipped = append(summary.Skipped, SkippedQuestion{bq.BankQuestionID, SkipReasonDuplicate})
			continue
		}
		existingTexts[text] = struct{}{}

		out = append(out, model.CBTQuestionModel{
			QuestionSchoolID: schoolID,
			QuestionTestID:   testID,
			QuestionText:     text,
			QuestionOptionA:  *bq.BankQuestionOptionA,
			QuestionOptionB:  *bq.BankQuestionOptionB,
			QuestionOptionC:  *bq.BankQuestionOptionC,
			QuestionOptionD:  *bq.BankQuestionOptionD,
			QuestionCorrect:  strings.ToUpper(strings.TrimSpace(*bq.BankQuestionCorrect)),
			QuestionPoints:   bq.BankQuestionPoints,
		})
		summary.Imported++
	}

	return out, summary
}

func optionsComplete(bq *model.BankQuestionModel) bool {
	for _, opt := range []*string{bq.BankQuestionOptionA, bq.BankQuestionOptionB, bq.BankQuestionOptionC, bq.BankQuestionOptionD} {
		if opt == nil || strings.TrimSpace(*opt) == "" {
			return false
		}
	}
	if bq.BankQuestionCorrect == nil {
		return false
	}
	switch strings.ToUpper(strings.TrimSpace(*bq.BankQuestionCorrect)) {
	case "A", "B", "C", "D":
		return true
	}
	return false
}
