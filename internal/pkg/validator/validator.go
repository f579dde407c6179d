package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

// ContentTypes lists the service-line content types served by the proxy.
var ContentTypes = []string{"family", "baby", "remindWedding"}

var phonePattern = regexp.MustCompile(`^0\d{1,2}-?\d{3,4}-?\d{4}$`)

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	validate.RegisterValidation("content_type", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), ContentTypes)
	})

	validate.RegisterValidation("shoot_type", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), []string{"family", "remind", "baby"})
	})

	// Group size select: 1-4 or "5+", empty when not chosen
	validate.RegisterValidation("headcount", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), []string{"", "1", "2", "3", "4", "5+"})
	})

	validate.RegisterValidation("phone_kr", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errors := make(map[string]string)
	for _, err := range validationErrors {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "필수 입력 항목입니다."
		case "email":
			errors[field] = "이메일 형식이 올바르지 않습니다."
		case "min":
			errors[field] = "최소 " + err.Param() + "자 이상 입력해주세요."
		case "max":
			errors[field] = "최대 " + err.Param() + "자까지 입력할 수 있습니다."
		case "datetime":
			errors[field] = "날짜 형식이 올바르지 않습니다. (YYYY-MM-DD)"
		case "content_type":
			errors[field] = "허용되는 타입: " + strings.Join(ContentTypes, ", ")
		case "shoot_type":
			errors[field] = "촬영 종류를 선택해주세요."
		case "headcount":
			errors[field] = "인원 수를 다시 선택해주세요."
		case "phone_kr":
			errors[field] = "연락처 형식이 올바르지 않습니다."
		default:
			errors[field] = "올바르지 않은 값입니다."
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
