// file: internals/features/finance/payments/model/invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InvoiceStatusUnpaid   = "unpaid"
	InvoiceStatusPending  = "pending"
	InvoiceStatusPaid     = "paid"
	InvoiceStatusExpired  = "expired"
	InvoiceStatusCanceled = "canceled"
)

// InvoiceModel: tagihan sekolah (SPP, seragam, dsb) per siswa.
type InvoiceModel struct {
	InvoiceID       uuid.UUID `json:"invoice_id" gorm:"column:invoice_id;type:uuid;default:gen_random_uuid();primaryKey"`
	InvoiceSchoolID uuid.UUID `json:"invoice_school_id" gorm:"column:invoice_school_id;type:uuid;not null;index"`

	InvoiceStudentID uuid.UUID `json:"invoice_student_id" gorm:"column:invoice_student_id;type:uuid;not null;index"`

	InvoiceTitle  string `json:"invoice_title" gorm:"column:invoice_title;type:varchar(200);not null"`
	InvoiceAmount int64  `json:"invoice_amount" gorm:"column:invoice_amount;not null"` // rupiah

	// order id yang dikirim ke gateway, dipakai mencocokkan notifikasi
	InvoiceOrderID string `json:"invoice_order_id" gorm:"column:invoice_order_id;type:varchar(64);not null;uniqueIndex:uq_invoices_order_id"`

	InvoiceStatus    string     `json:"invoice_status" gorm:"column:invoice_status;type:varchar(10);not null;default:'unpaid';index"`
	InvoiceSnapToken *string    `json:"invoice_snap_token,omitempty" gorm:"column:invoice_snap_token;type:varchar(128)"`
	InvoicePaidAt    *time.Time `json:"invoice_paid_at" gorm:"column:invoice_paid_at"`

	InvoiceCreatedAt time.Time      `json:"invoice_created_at" gorm:"column:invoice_created_at;autoCreateTime"`
	InvoiceUpdatedAt time.Time      `json:"invoice_updated_at" gorm:"column:invoice_updated_at;autoUpdateTime"`
	InvoiceDeletedAt gorm.DeletedAt `json:"-" gorm:"column:invoice_deleted_at;index"`
}

func (InvoiceModel) TableName() string { return "invoices" }
