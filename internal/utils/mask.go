package utils

import "strings"

// MaskAccountNumber hides all but the last four digits.
func MaskAccountNumber(accountNumber string) string {
	return maskTail(accountNumber)
}

// MaskPhoneNumber hides all but the last four digits.
func MaskPhoneNumber(phone string) string {
	return maskTail(phone)
}

func maskTail(s string) string {
	if len(s) < 4 {
		return s
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
