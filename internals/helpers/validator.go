package helper

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct runs the shared validator.v10 instance over a DTO.
// Pair with ValidationError for the response side.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
