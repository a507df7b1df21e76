// file: internals/features/finance/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceController "sekolahku_backend/internals/features/finance/payments/controller"
)

// PaymentPublicRoutes: webhook gateway, tanpa JWT (diverifikasi signature).
func PaymentPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := invoiceController.NewInvoiceController(db)

	r.Post("/payments/notification", ctrl.MidtransWebhook)
}

// PaymentClerkRoutes: TU kelola tagihan & minta token pembayaran.
func PaymentClerkRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := invoiceController.NewInvoiceController(db)

	invoices := r.Group("/invoices")
	invoices.Get("/", ctrl.List)
	invoices.Post("/", ctrl.Create)
	invoices.Post("/:id/pay", ctrl.Pay)
}
