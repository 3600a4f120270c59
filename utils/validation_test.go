package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+56912345678",
		"56912345678",
		"+56 9 1234 5678",
		"(2) 2345-6789",
	}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), "expected %q to be valid", phone)
	}

	invalid := []string{
		"",
		"abc",
		"+",
		"0123456",
		"+5691234567890123456",
	}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), "expected %q to be invalid", phone)
	}
}

func TestValidateRUT(t *testing.T) {
	valid := []string{
		"12.345.678-5",
		"12345678-5",
		"11.111.111-1",
		"1.000.005-K",
		"1.000.005-k",
	}
	for _, rut := range valid {
		assert.True(t, ValidateRUT(rut), "expected %q to be valid", rut)
	}

	invalid := []string{
		"",
		"12.345.678-9", // wrong check digit
		"12345678",     // no check digit
		"12.345.678-55",
		"123-4",
		"abcdefgh-5",
	}
	for _, rut := range invalid {
		assert.False(t, ValidateRUT(rut), "expected %q to be invalid", rut)
	}
}
