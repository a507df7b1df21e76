// file: internals/route/details/misc_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentRoute "sekolahku_backend/internals/features/finance/payments/route"
	newsRoute "sekolahku_backend/internals/features/news/posts/route"
	permissionRoute "sekolahku_backend/internals/features/permissions/requests/route"
)

// PermissionStaffRoutes: pengajuan izin semua pegawai.
func PermissionStaffRoutes(r fiber.Router, db *gorm.DB) {
	permissionRoute.PermissionStaffRoutes(r, db)
}

// PermissionApproverRoutes: keputusan izin.
func PermissionApproverRoutes(r fiber.Router, db *gorm.DB) {
	permissionRoute.PermissionApproverRoutes(r, db)
}

// FinancePublicRoutes: webhook gateway pembayaran.
func FinancePublicRoutes(r fiber.Router, db *gorm.DB) {
	paymentRoute.PaymentPublicRoutes(r, db)
}

// FinanceClerkRoutes: tagihan dikelola TU ke atas.
func FinanceClerkRoutes(r fiber.Router, db *gorm.DB) {
	paymentRoute.PaymentClerkRoutes(r, db)
}

// NewsPublicRoutes: berita published per sekolah.
func NewsPublicRoutes(r fiber.Router, db *gorm.DB) {
	newsRoute.NewsPublicRoutes(r, db)
}

// NewsStaffRoutes: kelola berita.
func NewsStaffRoutes(r fiber.Router, db *gorm.DB) {
	newsRoute.NewsStaffRoutes(r, db)
}
