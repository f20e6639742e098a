package request

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"hotel-booking/internal/domain/room"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidations installs the custom rules on gin's validator engine.
// Field errors then report json names instead of Go field names.
func RegisterValidations() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("room_type", func(fl validator.FieldLevel) bool {
			return room.Type(fl.Field().String()).IsValid()
		})
	})
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// FieldMessage picks the message registered for the first offending field of a
// binding error, falling back when the field is unknown or the body is unreadable.
func FieldMessage(err error, messages map[string]string, fallback string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := messages[verrs[0].Field()]; ok {
			return msg
		}
		return fallback
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if i := strings.LastIndex(field, "."); i >= 0 {
			field = field[i+1:]
		}
		if msg, ok := messages[field]; ok {
			return msg
		}
	}
	return fallback
}
