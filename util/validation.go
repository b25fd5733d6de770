package util

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate    *validator.Validate
	mobileRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("mobile", validateMobile); err != nil {
		panic(err)
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

func validateMobile(fl validator.FieldLevel) bool {
	return mobileRegex.MatchString(fl.Field().String())
}
