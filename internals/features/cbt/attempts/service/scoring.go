// file: internals/features/cbt/attempts/service/scoring.go
package service

import (
	"strings"

	questionModel "sekolahku_backend/internals/features/cbt/questions/model"
)

// Score: nilai = jumlah poin soal yang dijawab benar; jawaban kosong
// atau pilihan tak dikenal dihitung salah. Max = total poin semua soal.
func Score(questions []questionModel.CBTQuestionModel, answers map[string]string) (score, maxScore int) {
	for _, q := range questions {
		maxScore += q.QuestionPoints
		picked, ok := answers[q.QuestionID.String()]
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(picked), q.QuestionCorrect) {
			score += q.QuestionPoints
		}
	}
	return score, maxScore
}
