// file: internals/features/finance/payments/service/midtrans.go
package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strings"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	model "sekolahku_backend/internals/features/finance/payments/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

type CustomerInput struct {
	FirstName string
	Email     string
	Phone     string
}

// GenerateSnapToken: buat transaksi Snap untuk satu tagihan.
func GenerateSnapToken(inv *model.InvoiceModel, cust CustomerInput) (string, string, error) {
	if inv.InvoiceAmount <= 0 {
		return "", "", errors.New("invalid invoice_amount")
	}
	if inv.InvoiceOrderID == "" {
		return "", "", errors.New("invoice_order_id is required (used as OrderID)")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  inv.InvoiceOrderID,
			GrossAmt: inv.InvoiceAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.FirstName,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       inv.InvoiceOrderID,
				Price:    inv.InvoiceAmount,
				Qty:      1,
				Name:     truncate(inv.InvoiceTitle, 50),
				Category: "Tagihan Sekolah",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

/* =========================================================
   Webhook helpers
========================================================= */

// VerifySignature: SHA512(order_id + status_code + gross_amount + ServerKey).
func VerifySignature(orderID, statusCode, grossAmount, signatureKey, serverKey string) bool {
	want := strings.ToLower(strings.TrimSpace(signatureKey))
	if want == "" {
		return false
	}
	h := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(h[:]) == want
}

// MapTransactionStatus: status gateway → status tagihan internal.
// Status yang tidak dikenal tidak mengubah apa-apa ("").
func MapTransactionStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" || fraudStatus == "" {
			return model.InvoiceStatusPaid
		}
		return model.InvoiceStatusPending
	case "settlement":
		return model.InvoiceStatusPaid
	case "pending":
		return model.InvoiceStatusPending
	case "deny", "cancel", "failure":
		return model.InvoiceStatusCanceled
	case "expire":
		return model.InvoiceStatusExpired
	}
	return ""
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
