package api

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"

	"github.com/go-playground/validator/v10"
)

// validateMoney проверяет, что строковое поле - корректная положительная
// денежная сумма. Суммы ходят по проводу строками, тэг numeric для них
// слишком слаб: пропускает экспоненциальную запись и минус.
func validateMoney(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	amount, err := decimal.NewFromString(str)
	if err != nil {
		return false
	}
	return amount.IsPositive()
}

func registerValidators() error {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	if err := v.RegisterValidation("money", validateMoney); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
