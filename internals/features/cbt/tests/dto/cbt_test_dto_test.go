// file: internals/features/cbt/tests/dto/cbt_test_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tp(t time.Time) *time.Time { return &t }

func TestValidateWindow(t *testing.T) {
	now := time.Now()

	ok := CreateTestRequest{TestStartsAt: tp(now), TestEndsAt: tp(now.Add(2 * time.Hour))}
	assert.Nil(t, ok.ValidateWindow())

	// selesai sebelum mulai
	bad := CreateTestRequest{TestStartsAt: tp(now), TestEndsAt: tp(now.Add(-time.Hour))}
	errs := bad.ValidateWindow()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "test_ends_at")

	// selesai == mulai juga ditolak
	same := CreateTestRequest{TestStartsAt: tp(now), TestEndsAt: tp(now)}
	assert.NotNil(t, same.ValidateWindow())
}

func TestValidateWindow_Optional(t *testing.T) {
	now := time.Now()

	// tanpa jadwal sama sekali: valid
	none := CreateTestRequest{}
	assert.Nil(t, none.ValidateWindow())

	// satu sisi saja: valid (jadwal setengah terbuka)
	onlyStart := CreateTestRequest{TestStartsAt: tp(now)}
	assert.Nil(t, onlyStart.ValidateWindow())
	onlyEnd := CreateTestRequest{TestEndsAt: tp(now)}
	assert.Nil(t, onlyEnd.ValidateWindow())
}

func TestCreateTestRequest_WindowlessPassesValidation(t *testing.T) {
	v := validator.New()
	req := CreateTestRequest{
		TestClassID:         uuid.New(),
		TestSubjectID:       uuid.New(),
		TestTitle:           "UTS Matematika",
		TestDurationMinutes: 90,
	}
	assert.NoError(t, v.Struct(&req))
	assert.Nil(t, req.ValidateWindow())
}

func TestUpdateTestRequestApply_WindowRecheck(t *testing.T) {
	now := time.Now()
	req := CreateTestRequest{
		TestTitle:    "  UTS Matematika  ",
		TestStartsAt: tp(now),
		TestEndsAt:   tp(now.Add(time.Hour)),
	}
	req.Normalize()
	assert.Equal(t, "UTS Matematika", req.TestTitle)
	assert.Nil(t, req.ValidateWindow())
}
