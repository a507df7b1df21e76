// file: internals/features/finance/payments/service/midtrans_test.go
package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	model "sekolahku_backend/internals/features/finance/payments/model"
)

func TestVerifySignature(t *testing.T) {
	orderID, statusCode, gross, serverKey := "INV-001", "200", "150000.00", "sk-test"
	h := sha512.Sum512([]byte(orderID + statusCode + gross + serverKey))
	valid := hex.EncodeToString(h[:])

	assert.True(t, VerifySignature(orderID, statusCode, gross, valid, serverKey))
	assert.False(t, VerifySignature(orderID, statusCode, gross, "deadbeef", serverKey))
	assert.False(t, VerifySignature(orderID, statusCode, gross, "", serverKey))
	assert.False(t, VerifySignature("INV-002", statusCode, gross, valid, serverKey))
}

func TestMapTransactionStatus(t *testing.T) {
	assert.Equal(t, model.InvoiceStatusPaid, MapTransactionStatus("settlement", ""))
	assert.Equal(t, model.InvoiceStatusPaid, MapTransactionStatus("capture", "accept"))
	assert.Equal(t, model.InvoiceStatusPending, MapTransactionStatus("capture", "challenge"))
	assert.Equal(t, model.InvoiceStatusPending, MapTransactionStatus("pending", ""))
	assert.Equal(t, model.InvoiceStatusCanceled, MapTransactionStatus("deny", ""))
	assert.Equal(t, model.InvoiceStatusCanceled, MapTransactionStatus("cancel", ""))
	assert.Equal(t, model.InvoiceStatusCanceled, MapTransactionStatus("failure", ""))
	assert.Equal(t, model.InvoiceStatusExpired, MapTransactionStatus("expire", ""))
	assert.Equal(t, "", MapTransactionStatus("refund", ""))
}
