package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorMap mengubah error validator.v10 jadi map field → pesan,
// siap dikirim lewat JsonValidationError.
func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["body"] = []string{"invalid input"}
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "wajib diisi"
		case "email":
			msg = "format email tidak valid"
		case "min":
			msg = "terlalu pendek (min " + fe.Param() + ")"
		case "max":
			msg = "terlalu panjang (max " + fe.Param() + ")"
		case "oneof":
			msg = "nilai harus salah satu dari: " + fe.Param()
		case "uuid":
			msg = "harus berupa UUID"
		default:
			msg = "tidak valid (" + fe.Tag() + ")"
		}
		out[field] = append(out[field], msg)
	}
	return out
}
