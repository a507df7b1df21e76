// file: internals/features/cbt/tests/service/workflow_test.go
package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "sekolahku_backend/internals/features/cbt/tests/model"
)

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T", err)
	return fe.Code
}

func TestValidateTransition_DraftToPublished(t *testing.T) {
	assert.NoError(t, ValidateTransition(model.TestStatusDraft, model.TestStatusPublished, 3))
}

func TestValidateTransition_PublishNeedsQuestions(t *testing.T) {
	err := ValidateTransition(model.TestStatusDraft, model.TestStatusPublished, 0)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
}

func TestValidateTransition_PublishedBackToDraft(t *testing.T) {
	assert.NoError(t, ValidateTransition(model.TestStatusPublished, model.TestStatusDraft, 5))
}

func TestValidateTransition_CloseFromDraftAndPublished(t *testing.T) {
	assert.NoError(t, ValidateTransition(model.TestStatusDraft, model.TestStatusClosed, 0))
	assert.NoError(t, ValidateTransition(model.TestStatusPublished, model.TestStatusClosed, 2))
}

func TestValidateTransition_ClosedIsTerminal(t *testing.T) {
	for _, next := range []string{model.TestStatusDraft, model.TestStatusPublished, model.TestStatusClosed} {
		err := ValidateTransition(model.TestStatusClosed, next, 10)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
	}
}

func TestValidateTransition_UnknownStatus(t *testing.T) {
	err := ValidateTransition("archived", model.TestStatusPublished, 1)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
}

func TestValidateTransition_NoSelfTransition(t *testing.T) {
	err := ValidateTransition(model.TestStatusDraft, model.TestStatusDraft, 1)
	require.Error(t, err)
}

func TestCanModifyQuestions(t *testing.T) {
	assert.NoError(t, CanModifyQuestions(model.TestStatusDraft))
	assert.Error(t, CanModifyQuestions(model.TestStatusPublished))
	assert.Error(t, CanModifyQuestions(model.TestStatusClosed))
}
