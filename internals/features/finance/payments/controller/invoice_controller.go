// file: internals/features/finance/payments/controller/invoice_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	dto "sekolahku_backend/internals/features/finance/payments/dto"
	model "sekolahku_backend/internals/features/finance/payments/model"
	paymentService "sekolahku_backend/internals/features/finance/payments/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type InvoiceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /invoices?student_id=&status=
func (ctrl *InvoiceController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.InvoiceModel{}).
		Where("invoice_school_id = ?", schoolID)

	if s := strings.TrimSpace(c.Query("student_id")); s != "" {
		id, perr := uuid.Parse(s)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("invoice_student_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("invoice_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}

	var invoices []model.InvoiceModel
	if err := q.Order("invoice_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&invoices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}

	return helper.JsonList(c, "", invoices,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /invoices (CLERK/ADMIN)
func (ctrl *InvoiceController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var body dto.CreateInvoiceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	// siswa harus milik sekolah ini
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Table("students").
		Where("student_id = ? AND student_school_id = ? AND student_deleted_at IS NULL",
			body.InvoiceStudentID, schoolID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data siswa")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
	}

	orderID := fmt.Sprintf("INV-%d-%s", time.Now().Unix(), strings.ToUpper(uuid.NewString()[:8]))
	m := body.ToModel(schoolID, orderID)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat tagihan")
	}

	return helper.JsonCreated(c, "Tagihan dibuat", m)
}

// POST /invoices/:id/pay — minta Snap token untuk bayar
func (ctrl *InvoiceController) Pay(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.InvoiceModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "invoice_id = ? AND invoice_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}
	if m.InvoiceStatus == model.InvoiceStatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, "Tagihan sudah lunas")
	}

	userName, _ := c.Locals(helperAuth.LocUserName).(string)
	token, redirectURL, err := paymentService.GenerateSnapToken(&m, paymentService.CustomerInput{
		FirstName: userName,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}

	m.InvoiceSnapToken = &token
	m.InvoiceStatus = model.InvoiceStatusPending
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan token pembayaran")
	}

	return helper.JsonOK(c, "Token pembayaran dibuat", fiber.Map{
		"invoice_id":   m.InvoiceID,
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

/* =======================================================================
   Webhook Midtrans
======================================================================= */

// POST /payments/notification — endpoint publik, diverifikasi via signature
func (ctrl *InvoiceController) MidtransWebhook(c *fiber.Ctx) error {
	var notif dto.MidtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}

	serverKey := configs.GetEnv("MIDTRANS_SERVER_KEY", "")
	if !paymentService.VerifySignature(notif.OrderID, notif.StatusCode, notif.GrossAmount, notif.SignatureKey, serverKey) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid signature")
	}

	var m model.InvoiceModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "invoice_order_id = ?", notif.OrderID).Error; err != nil {
		// balas 200 supaya gateway tidak retry terus
		return helper.JsonOK(c, "ignored: invoice not found", fiber.Map{
			"order_id": notif.OrderID,
			"status":   "ignored",
		})
	}

	newStatus := paymentService.MapTransactionStatus(notif.TransactionStatus, notif.FraudStatus)
	if newStatus == "" {
		return helper.JsonOK(c, "ignored: unknown transaction_status", fiber.Map{
			"order_id": notif.OrderID,
			"status":   "ignored",
		})
	}

	m.InvoiceStatus = newStatus
	if newStatus == model.InvoiceStatusPaid && m.InvoicePaidAt == nil {
		now := time.Now()
		m.InvoicePaidAt = &now
	}
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "update invoice failed")
	}

	return helper.JsonOK(c, "webhook processed", fiber.Map{
		"invoice_id":         m.InvoiceID,
		"invoice_status":     m.InvoiceStatus,
		"transaction_status": notif.TransactionStatus,
	})
}
