// file: internals/features/school/content_coverage/service/coverage_workflow.go
package service

import (
	"github.com/gofiber/fiber/v2"

	model "sekolahku_backend/internals/features/school/content_coverage/model"
)

// CanDecide: laporan hanya bisa diputuskan sekali; setelah
// approved/rejected statusnya final.
func CanDecide(currentStatus, nextStatus string) error {
	if nextStatus != model.CoverageStatusApproved && nextStatus != model.CoverageStatusRejected {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Status keputusan tidak dikenal")
	}
	if currentStatus != model.CoverageStatusPending {
		return fiber.NewError(fiber.StatusConflict, "Laporan sudah diputuskan dan tidak bisa diubah")
	}
	return nil
}
