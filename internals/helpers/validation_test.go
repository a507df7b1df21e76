package helper

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorMap(t *testing.T) {
	type form struct {
		Name   string `validate:"required,min=3"`
		Email  string `validate:"required,email"`
		Gender string `validate:"oneof=L P"`
	}

	v := validator.New()
	err := v.Struct(form{Name: "ab", Email: "bukan-email", Gender: "X"})
	require.Error(t, err)

	out := ValidationErrorMap(err)
	assert.Contains(t, out["name"], "terlalu pendek (min 3)")
	assert.Contains(t, out["email"], "format email tidak valid")
	assert.Contains(t, out["gender"], "nilai harus salah satu dari: L P")
}

func TestValidationErrorMap_NonValidatorError(t *testing.T) {
	out := ValidationErrorMap(errors.New("unexpected EOF"))
	assert.Equal(t, []string{"invalid input"}, out["body"])
}
