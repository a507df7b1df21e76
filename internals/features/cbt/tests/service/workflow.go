// file: internals/features/cbt/tests/service/workflow.go
package service

import (
	"github.com/gofiber/fiber/v2"

	model "sekolahku_backend/internals/features/cbt/tests/model"
)

// allowedTransitions: closed final, tidak ada jalan keluar.
var allowedTransitions = map[string]map[string]bool{
	model.TestStatusDraft: {
		model.TestStatusPublished: true,
		model.TestStatusClosed:    true,
	},
	model.TestStatusPublished: {
		model.TestStatusDraft:  true,
		model.TestStatusClosed: true,
	},
	model.TestStatusClosed: {},
}

// ValidateTransition: cek tabel transisi + syarat publish
// (minimal satu soal sebelum dipublikasikan).
func ValidateTransition(currentStatus, nextStatus string, questionCount int64) error {
	next, ok := allowedTransitions[currentStatus]
	if !ok {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Status ujian tidak dikenal")
	}
	if currentStatus == model.TestStatusClosed {
		return fiber.NewError(fiber.StatusConflict, "Ujian sudah ditutup dan tidak bisa diubah lagi")
	}
	if !next[nextStatus] {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Perubahan status tidak diizinkan")
	}
	if nextStatus == model.TestStatusPublished && questionCount < 1 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Tambahkan minimal satu soal sebelum mempublikasikan ujian")
	}
	return nil
}

// CanModifyQuestions: soal hanya boleh diubah saat draft.
func CanModifyQuestions(status string) error {
	if status != model.TestStatusDraft {
		return fiber.NewError(fiber.StatusConflict, "Soal hanya bisa diubah saat ujian berstatus draft")
	}
	return nil
}
