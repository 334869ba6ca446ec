package util

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type ApiError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func messageForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%v is required", field)
	case "email":
		return "Invalid email"
	case "min", "cmin":
		return fmt.Sprintf("%v must be at least %v characters", field, fe.Param())
	case "max", "cmax":
		return fmt.Sprintf("%v must be at most %v characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%v must be greater than or equal to %v", field, fe.Param())
	case "strNotEmpty":
		return fmt.Sprintf("%v must not be empty or contain only whitespace characters", field)
	case "datetime":
		return fmt.Sprintf("%v must be a date formatted as %v", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%v must be one of %v", field, fe.Param())
	case "certtype":
		return fmt.Sprintf("%v must be one of %v, %v, %v", field, constant.CertificateTypeCCTV, constant.CertificateTypeHardware, constant.CertificateTypeRacks)
	case "certstatus":
		return fmt.Sprintf("%v must be one of %v, %v, %v", field, constant.CertificateStatusPending, constant.CertificateStatusIssued, constant.CertificateStatusRejected)
	}

	return fe.Error()
}

/*
GenerateErrorMessages turns a binding or repository error into a list of ApiError.

Validation errors produce one entry per failing field, named after the json key of the request:

	[
	  {
		"field": "tipo_codigo",
		"message": "tipo_codigo must be one of cctv, hardware, racks"
	  }
	]

Any other error produces a single entry. The optional field names that entry, "Unknown" otherwise.
*/
func GenerateErrorMessages(err error, field ...string) []ApiError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]ApiError, len(ve))
		for i, fe := range ve {
			out[i] = ApiError{Field: fe.Field(), Message: messageForTag(fe)}
		}
		return out
	}

	name := "Unknown"
	if len(field) > 0 && field[0] != "" {
		name = field[0]
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []ApiError{{Field: name, Message: "Record not found"}}
	}

	return []ApiError{{Field: name, Message: err.Error()}}
}

func trimmedString(fl validator.FieldLevel) (string, bool) {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return "", false
	}
	return strings.TrimSpace(field.String()), true
}

// Usage: `binding:"strNotEmpty"`
func StrNotEmpty(fl validator.FieldLevel) bool {
	str, ok := trimmedString(fl)
	return ok && str != ""
}

// Length check after trimming spaces. Usage: `binding:"cmin=3"`
func CustomMin(fl validator.FieldLevel) bool {
	str, ok := trimmedString(fl)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(fl.Param())
	return err == nil && len(str) >= n
}

// Usage: `binding:"cmax=3"`
func CustomMax(fl validator.FieldLevel) bool {
	str, ok := trimmedString(fl)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(fl.Param())
	return err == nil && len(str) <= n
}

// Usage: `binding:"certtype"`
func CertificateTypeValidator(fl validator.FieldLevel) bool {
	str, ok := trimmedString(fl)
	return ok && constant.CertificateType(str).IsValid()
}

// Usage: `binding:"certstatus"`
func CertificateStatusValidator(fl validator.FieldLevel) bool {
	str, ok := trimmedString(fl)
	return ok && constant.CertificateStatus(str).IsValid()
}

// jsonFieldName reports fields by their json key so errors match the request body
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// RegisterValidators adds the custom tags to v, usually gin's binding engine
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)

	tags := map[string]validator.Func{
		"strNotEmpty": StrNotEmpty,
		"cmin":        CustomMin,
		"cmax":        CustomMax,
		"certtype":    CertificateTypeValidator,
		"certstatus":  CertificateStatusValidator,
	}

	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register validator %s: %w", tag, err)
		}
	}

	return nil
}
