// file: internals/features/permissions/requests/dto/permission_request_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDates(t *testing.T) {
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	multi := CreatePermissionRequest{StartDate: today, EndDate: today.AddDate(0, 0, 2)}
	assert.Nil(t, multi.ValidateDates())

	// izin satu hari: start == end valid
	oneDay := CreatePermissionRequest{StartDate: today, EndDate: today}
	assert.Nil(t, oneDay.ValidateDates())

	// selesai sebelum mulai
	bad := CreatePermissionRequest{StartDate: today, EndDate: today.AddDate(0, 0, -1)}
	errs := bad.ValidateDates()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "end_date")
}

func TestCreatePermissionRequest_Normalize(t *testing.T) {
	r := CreatePermissionRequest{Reason: "  sakit demam  "}
	r.Normalize()
	assert.Equal(t, "sakit demam", r.Reason)
}
