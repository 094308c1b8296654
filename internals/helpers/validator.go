// file: internals/helpers/validator.go
package helper

import (
	"github.com/go-playground/validator/v10"
)

// Validator instance global (dipakai semua controller)
var Validate = validator.New()

// MapValidationErrors ubah validator.ValidationErrors jadi map field → pesan,
// bentuknya cocok untuk JsonValidationError.
func MapValidationErrors(err error) map[string][]string {
	out := map[string][]string{}
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"Invalid input"}
		return out
	}
	for _, fe := range ves {
		field := fe.Field()
		var msg string
		switch fe.Tag() {
		case "required":
			msg = field + " wajib diisi."
		case "email":
			msg = "Format email tidak valid."
		case "min":
			msg = field + " harus minimal " + fe.Param() + " karakter."
		case "max":
			msg = field + " harus kurang dari " + fe.Param() + " karakter."
		case "oneof":
			msg = field + " harus salah satu dari " + fe.Param() + "."
		case "uuid":
			msg = field + " harus berupa UUID."
		default:
			msg = "Format tidak valid."
		}
		out[field] = append(out[field], msg)
	}
	return out
}
