package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct ตรวจ struct ตาม validate tags
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

// GetValidationErrors แปลง validator error เป็นรายการ field-level errors
func GetValidationErrors(err error) []ValidationError {
	var result []ValidationError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			result = append(result, ValidationError{
				Field: fieldError.Field(),
				Tag:   fieldError.Tag(),
				Param: fieldError.Param(),
			})
		}
	}

	return result
}
