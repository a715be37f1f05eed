package validator

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// IsValidAddress reports whether address is a well-formed hex address.
// Casing is not significant; handlers lowercase addresses on ingest.
func IsValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// IsBigInt reports whether s is a base-10 integer as used for token
// amounts and prices in smallest units
func IsBigInt(s string) bool {
	_, ok := new(big.Int).SetString(s, 10)
	return ok
}

type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator binds go-playground validation to echo, with `address`
// and `bigint` tags for the wire formats this service deals in.
func NewCustomValidator(v *validator.Validate) echo.Validator {
	v.RegisterValidation("address", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	v.RegisterValidation("bigint", func(fl validator.FieldLevel) bool {
		return IsBigInt(fl.Field().String())
	})
	return &CustomValidator{v}
}

func (v *CustomValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
