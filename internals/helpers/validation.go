package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError: satu pesan validasi per field (path memakai nama json).
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Messages maps "field.tag" (json name) to a custom message.
type Messages map[string]string

func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidationErrors mengubah error validator jadi []FieldError. Nil kalau err bukan ValidationErrors.
func ValidationErrors(err error, msgs Messages) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		path := fieldPath(fe)
		msg, ok := msgs[path+"."+fe.Tag()]
		if !ok {
			msg = defaultMessage(path, fe)
		}
		out = append(out, FieldError{Path: path, Message: msg})
	}
	return out
}

// Namespace bentuknya "Struct.field.sub"; buang nama struct di depan.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func defaultMessage(path string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", path)
	case "email":
		return "Invalid email address"
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", path)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", path, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", path, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", path, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", path, fe.Param())
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid id", path)
	default:
		return fmt.Sprintf("%s is invalid", path)
	}
}
