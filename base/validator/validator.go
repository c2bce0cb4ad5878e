package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/ens"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// NewCustomValidator adds the "address" and "duration" tags to v
func NewCustomValidator(v *validator.Validate) echo.Validator {
	v.RegisterTagNameFunc(fieldName)
	_ = v.RegisterValidation("address", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		_, ok := ens.ParseDuration(fl.Field().String())
		return ok
	})
	return &CustomValidator{v}
}

// fieldName reports a field by the name the caller sent it with
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "query"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

type CustomValidator struct {
	validator *validator.Validate
}

// Validate returns a MISSING_PARAM or INVALID_PARAM *domain.Error for the first failed field
func (v *CustomValidator) Validate(i interface{}) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.WrapError(domain.KindInvalidParam, err, "invalid request")
	}
	fe := verrs[0]
	if strings.HasPrefix(fe.Tag(), "required") {
		return domain.NewError(domain.KindMissingParam, "%s is required", fe.Field())
	}
	return domain.NewError(domain.KindInvalidParam, "invalid %s %q", fe.Field(), fe.Value())
}
