// file: internals/features/school/content_coverage/service/coverage_workflow_test.go
package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "sekolahku_backend/internals/features/school/content_coverage/model"
)

func TestCanDecide_PendingToApproved(t *testing.T) {
	assert.NoError(t, CanDecide(model.CoverageStatusPending, model.CoverageStatusApproved))
}

func TestCanDecide_PendingToRejected(t *testing.T) {
	assert.NoError(t, CanDecide(model.CoverageStatusPending, model.CoverageStatusRejected))
}

func TestCanDecide_AlreadyDecidedIsFinal(t *testing.T) {
	for _, decided := range []string{model.CoverageStatusApproved, model.CoverageStatusRejected} {
		err := CanDecide(decided, model.CoverageStatusApproved)
		require.Error(t, err)
		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusConflict, fe.Code)
	}
}

func TestCanDecide_UnknownTarget(t *testing.T) {
	err := CanDecide(model.CoverageStatusPending, "pending")
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
}
