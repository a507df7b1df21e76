// file: internals/features/finance/payments/dto/invoice_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/finance/payments/model"
)

type CreateInvoiceRequest struct {
	InvoiceStudentID uuid.UUID `json:"invoice_student_id" validate:"required"`
	InvoiceTitle     string    `json:"invoice_title" validate:"required,min=3,max=200"`
	InvoiceAmount    int64     `json:"invoice_amount" validate:"required,min=1000"`
}

func (r *CreateInvoiceRequest) Normalize() {
	r.InvoiceTitle = strings.TrimSpace(r.InvoiceTitle)
}

func (r *CreateInvoiceRequest) ToModel(schoolID uuid.UUID, orderID string) *model.InvoiceModel {
	return &model.InvoiceModel{
		InvoiceSchoolID:  schoolID,
		InvoiceStudentID: r.InvoiceStudentID,
		InvoiceTitle:     r.InvoiceTitle,
		InvoiceAmount:    r.InvoiceAmount,
		InvoiceOrderID:   orderID,
		InvoiceStatus:    model.InvoiceStatusUnpaid,
	}
}

// MidtransNotification: payload webhook dari gateway.
type MidtransNotification struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"`
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
	TransactionID     string `json:"transaction_id"`
	SettlementTime    string `json:"settlement_time"`
}
