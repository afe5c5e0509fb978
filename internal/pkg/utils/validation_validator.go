package utils

import (
	"carepulse-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate         *validator.Validate
	personNameRegexp = regexp.MustCompile(constvars.RegexPersonName)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("person_name", validatePersonName)
	validate.RegisterValidation("pk_phone", validatePakistaniPhone)
	validate.RegisterValidation("datetime_coercible", validateDateTimeCoercible)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func validatePersonName(fl validator.FieldLevel) bool {
	return personNameRegexp.MatchString(fl.Field().String())
}

func validatePakistaniPhone(fl validator.FieldLevel) bool {
	return IsValidPakistaniPhone(fl.Field().String())
}

func validateDateTimeCoercible(fl validator.FieldLevel) bool {
	_, err := ParseSchedule(fl.Field().String())
	return err == nil
}
