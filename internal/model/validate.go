package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "festival-lineup/pkg/app_errors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 錯誤訊息使用 JSON 欄位名稱（websiteUrl 而不是 WebsiteURL）
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	// notblank: string must contain a non-space character; a nil pointer is "not supplied" and passes.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() == reflect.Ptr {
			if field.IsNil() {
				return true
			}
			field = field.Elem()
		}
		return field.Kind() == reflect.String && strings.TrimSpace(field.String()) != ""
	}, true)

	return v
}

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s is required", apperrors.ErrInvalidInput, verrs[0].Field())
	}
	return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
}
