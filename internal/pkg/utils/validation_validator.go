package utils

import (
	"dialysis-portal-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate        *validator.Validate
	nationalIDRegex = regexp.MustCompile(`^[12][0-9]{11}$`)
	libyanPhone     = regexp.MustCompile(`^(\+218|00218|0)?9[1-6][0-9]{7}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("national_id", validateNationalID)
	validate.RegisterValidation("libyan_phone", validateLibyanPhone)
	validate.RegisterValidation("date_key", validateDateKey)
	validate.RegisterValidation("clock", validateClock)
	validate.RegisterValidation("birth_date", validateBirthDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

func validateNationalID(fl validator.FieldLevel) bool {
	return nationalIDRegex.MatchString(fl.Field().String())
}

func validateLibyanPhone(fl validator.FieldLevel) bool {
	phone := strings.ReplaceAll(fl.Field().String(), " ", "")
	return libyanPhone.MatchString(phone)
}

func validateDateKey(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateKeyLayout, fl.Field().String())
	return err == nil
}

func validateClock(fl validator.FieldLevel) bool {
	_, ok := NormalizeClock(fl.Field().String())
	return ok
}

func validateBirthDate(fl validator.FieldLevel) bool {
	parsed, ok := ParseFlexibleDate(fl.Field().String())
	return ok && parsed.Before(time.Now())
}
