// Package validation wraps go-playground/validator with the storefront's
// custom tags and maps failures onto typed validation errors.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/angelmondragon/shopfront/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopfront/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation("order_status", orderStatus)
	return v
}

// Struct validates dest and returns a CodeValidation error whose details map
// field names to human readable messages.
func Struct(dest any) error {
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// decimalValue lets numeric tags such as gte=0 apply to decimal amounts.
func decimalValue(field reflect.Value) any {
	amount, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	f, _ := amount.Float64()
	return f
}

func orderStatus(fl validator.FieldLevel) bool {
	status, ok := fl.Field().Interface().(enums.OrderStatus)
	if !ok {
		return false
	}
	return status.IsValid()
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "email":
		return "must be a valid email"
	case "numeric":
		return "must contain digits only"
	case "order_status":
		return "must be a known order status"
	}
	return "is invalid"
}
