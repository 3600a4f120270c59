// utils/validation.go
package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateRUT checks a Chilean RUT like "12.345.678-5" or "12345678-5",
// including its mod-11 check digit.
func ValidateRUT(rut string) bool {
	cleaned := strings.ToUpper(strings.ReplaceAll(rut, ".", ""))
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	parts := strings.Split(cleaned, "-")
	if len(parts) != 2 {
		return false
	}
	body, dv := parts[0], parts[1]
	if len(body) < 7 || len(body) > 8 || len(dv) != 1 {
		return false
	}

	n, err := strconv.Atoi(body)
	if err != nil {
		return false
	}

	sum := 0
	factor := 2
	for n > 0 {
		sum += (n % 10) * factor
		n /= 10
		factor++
		if factor > 7 {
			factor = 2
		}
	}

	rest := 11 - (sum % 11)
	var expected string
	switch rest {
	case 11:
		expected = "0"
	case 10:
		expected = "K"
	default:
		expected = strconv.Itoa(rest)
	}
	return dv == expected
}
