package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
)

// Monetary values are carried as strings on the wire and stored as int64
// paise internally to avoid floating point precision issues.

// MaxDecimalPlaces defines the maximum number of decimal places allowed for amounts
const MaxDecimalPlaces = 2

// ValidateAndConvertAmount validates a string amount and converts it to paise.
// Handles the decimal part by string manipulation:
// - no decimal point: append "00"
// - one digit after the point: append "0"
// - two digits: strip the point
// Returns the amount in paise or an error when validation fails.
func ValidateAndConvertAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string
	if len(parts) == 1 {
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			integerValue = parts[0] + "00"
		case 1:
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// PaiseToString converts an integer paise amount to a decimal string.
// For example 1015 becomes "10.15" and 1000 becomes "10.00".
func PaiseToString(paise int64) string {
	isNegative := paise < 0
	if isNegative {
		paise = -paise
	}

	amountStr := fmt.Sprintf("%d", paise)
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if wholePart == "" {
		wholePart = "0"
	}

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}
