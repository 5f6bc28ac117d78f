package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"paisa/internal/models"
)

// PaymentAddress validates a virtual payment address of form user@provider.
func PaymentAddress(value string) Result {
	if value == "" {
		return fail("Payment address is required")
	}
	if !addressRegex.MatchString(value) {
		return fail("Invalid payment address format. Use format: username@provider")
	}

	local, provider, _ := strings.Cut(value, "@")
	if len(local) < MinAddressLocalLength || len(local) > MaxAddressLocalLength {
		return fail(fmt.Sprintf("Username must be between %d and %d characters",
			MinAddressLocalLength, MaxAddressLocalLength))
	}
	if len(provider) < MinAddressProviderLength || len(provider) > MaxAddressProviderLength {
		return fail(fmt.Sprintf("Provider must be between %d and %d characters",
			MinAddressProviderLength, MaxAddressProviderLength))
	}
	if !KnownProvider(provider) {
		return fail("Unknown payment provider")
	}
	return ok()
}

var phoneCleaner = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// PhoneNumber validates a 10-digit mobile number starting with 6-9.
// Spaces, dashes and parentheses are stripped before matching.
func PhoneNumber(value string) Result {
	if value == "" {
		return fail("Phone number is required")
	}
	if !phoneRegex.MatchString(phoneCleaner.Replace(value)) {
		return fail("Please enter a valid 10-digit mobile number")
	}
	return ok()
}

// Amount validates a monetary amount string against the default ceiling.
func Amount(value string) Result {
	return AmountLimit(value, DefaultAmountCeiling)
}

// AmountLimit validates a monetary amount string against an explicit ceiling.
// Checks run in order: required, parseable, positive, ceiling, precision.
func AmountLimit(value string, ceiling decimal.Decimal) Result {
	if value == "" {
		return fail("Amount is required")
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return fail("Please enter a valid amount")
	}
	if amount.Sign() <= 0 {
		return fail("Amount must be greater than 0")
	}
	if amount.GreaterThan(ceiling) {
		return fail(fmt.Sprintf("Amount cannot exceed %s", ceiling.String()))
	}
	if amount.Exponent() < -MaxAmountScale {
		return fail(fmt.Sprintf("Amount can have maximum %d decimal places", MaxAmountScale))
	}
	return ok()
}

var accountCleaner = strings.NewReplacer(" ", "", "-", "")

// AccountNumber validates a bank account number of 9-18 digits. Spaces and
// dashes are stripped before matching.
func AccountNumber(value string) Result {
	if value == "" {
		return fail("Account number is required")
	}
	if !accountNumberRegex.MatchString(accountCleaner.Replace(value)) {
		return fail("Account number must be 9-18 digits")
	}
	return ok()
}

// RoutingCode validates an IFSC-style routing code: 4 letters, a literal 0,
// then 6 alphanumerics. Matching is done on the upper-cased value.
func RoutingCode(value string) Result {
	if value == "" {
		return fail("Routing code is required")
	}
	if !routingCodeRegex.MatchString(strings.ToUpper(value)) {
		return fail("Invalid routing code format")
	}
	return ok()
}

// Description validates an optional free-text note. Empty is valid. The
// length limit counts characters, not bytes; notes may be non-ASCII.
func Description(value string) Result {
	if value == "" {
		return ok()
	}
	if utf8.RuneCountInString(value) > MaxDescriptionLength {
		return fail(fmt.Sprintf("Description cannot exceed %d characters", MaxDescriptionLength))
	}
	if descriptionRegex.MatchString(value) {
		return fail("Description contains invalid characters")
	}
	return ok()
}

// ScannedPayload validates a scanned payment code payload.
func ScannedPayload(value string) Result {
	if value == "" {
		return fail("QR data is required")
	}
	if !strings.HasPrefix(value, models.QRScheme) {
		return fail("Invalid UPI QR code format")
	}
	return ok()
}

// Email validates an email address with a deliberately permissive
// local@domain.tld pattern; consecutive dots are not rejected.
func Email(value string) Result {
	if value == "" {
		return fail("Email is required")
	}
	if !emailRegex.MatchString(value) {
		return fail("Please enter a valid email address")
	}
	return ok()
}

// DisplayName validates a person's display name: letters, spaces, dots and
// hyphens only.
func DisplayName(value string) Result {
	if value == "" {
		return fail("Name is required")
	}
	if utf8.RuneCountInString(value) < MinNameLength {
		return fail(fmt.Sprintf("Name must be at least %d characters", MinNameLength))
	}
	if utf8.RuneCountInString(value) > MaxNameLength {
		return fail(fmt.Sprintf("Name cannot exceed %d characters", MaxNameLength))
	}
	if !nameRegex.MatchString(value) {
		return fail("Name can only contain letters, spaces, dots, and hyphens")
	}
	return ok()
}
