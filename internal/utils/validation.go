package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("rating", validateRating)
	validate.RegisterValidation("vehicle_type", validateVehicleType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidationErrors flattens validator errors into a field->message map for
// the API error envelope.
func ValidationErrors(err error) map[string]string {
	details := make(map[string]string)
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			details[strings.ToLower(fe.Field())] = "failed on '" + fe.Tag() + "' validation"
		}
	}
	return details
}

func validateRating(fl validator.FieldLevel) bool {
	rating := fl.Field().Float()
	return rating >= 0 && rating <= 5
}

func validateVehicleType(fl validator.FieldLevel) bool {
	vt := fl.Field().String()
	return vt == "bike" || vt == "car"
}
