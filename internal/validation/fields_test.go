package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPaymentAddress(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		valid   bool
		errPart string
	}{
		{"valid hdfc address", "rahul.sharma@hdfc", true, ""},
		{"valid with provider in mixed case", "rahul.sharma@HDFC", true, ""},
		{"valid with dots underscores hyphens", "a_b-c.d@paytm", true, ""},
		{"empty", "", false, "required"},
		{"missing at", "rahulsharma", false, "format"},
		{"two ats", "a@b@hdfc", false, "format"},
		{"space in local part", "rahul sharma@hdfc", false, "format"},
		{"local part too short", "ab@hdfc", false, "between 3 and 50"},
		{"local part too long", strings.Repeat("a", 51) + "@hdfc", false, "between 3 and 50"},
		{"unknown provider", "rahul@unknownbank", false, "Unknown payment provider"},
		{"provider too long is rejected before allow-list", "rahul@" + strings.Repeat("a", 21), false, "between 2 and 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PaymentAddress(tt.value)
			assert.Equal(t, tt.valid, result.Valid)
			if tt.errPart != "" {
				assert.Contains(t, strings.ToLower(result.Err), strings.ToLower(tt.errPart))
			} else {
				assert.Empty(t, result.Err)
			}
		})
	}
}

func TestPhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"plain ten digits", "9876543210", true},
		{"starts with six", "6123456789", true},
		{"with spaces", "98765 43210", true},
		{"with dashes and parens", "(987) 654-3210", true},
		{"empty", "", false},
		{"starts with five", "5876543210", false},
		{"nine digits", "987654321", false},
		{"eleven digits", "98765432101", false},
		{"letters", "98765abcde", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, PhoneNumber(tt.value).Valid)
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		valid   bool
		errPart string
	}{
		{"whole number", "100", true, ""},
		{"two decimals", "100.50", true, ""},
		{"at ceiling", "100000", true, ""},
		{"empty", "", false, "required"},
		{"not a number", "abc", false, "valid amount"},
		{"zero", "0", false, "greater than 0"},
		{"negative", "-5", false, "greater than 0"},
		{"over ceiling", "100000.01", false, "cannot exceed"},
		{"three decimals", "100.555", false, "decimal places"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Amount(tt.value)
			assert.Equal(t, tt.valid, result.Valid, result.Err)
			if tt.errPart != "" {
				assert.Contains(t, strings.ToLower(result.Err), strings.ToLower(tt.errPart))
			}
		})
	}
}

func TestAmountLimit(t *testing.T) {
	ceiling := decimal.NewFromInt(500)

	assert.True(t, AmountLimit("500", ceiling).Valid)
	assert.False(t, AmountLimit("500.01", ceiling).Valid)
	// Ordering: the ceiling check runs before the precision check.
	result := AmountLimit("600.555", ceiling)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Err, "cannot exceed")
}

func TestAccountNumber(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"nine digits", "123456789", true},
		{"eighteen digits", "123456789012345678", true},
		{"with spaces and dashes", "1234-5678-9012", true},
		{"empty", "", false},
		{"eight digits", "12345678", false},
		{"twenty digits", "12345678901234567890", false},
		{"letters", "12345678a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, AccountNumber(tt.value).Valid)
		})
	}
}

func TestRoutingCode(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"standard", "HDFC0001234", true},
		{"lower case is upper-cased first", "hdfc0001234", true},
		{"alphanumeric branch", "ICIC0A1B2C3", true},
		{"empty", "", false},
		{"fifth char not zero", "HDFC1001234", false},
		{"too short", "HDFC000123", false},
		{"too long", "HDFC00012345", false},
		{"digits in bank part", "HD4C0001234", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, RoutingCode(tt.value).Valid)
		})
	}
}

func TestDescription(t *testing.T) {
	assert.True(t, Description("").Valid, "description is optional")
	assert.True(t, Description("Lunch payment").Valid)
	assert.False(t, Description(strings.Repeat("a", 51)).Valid)
	assert.False(t, Description("pay <script>").Valid)
	assert.False(t, Description("a{b}").Valid)

	// The limit counts characters, not bytes.
	assert.True(t, Description(strings.Repeat("क", 50)).Valid)
	assert.True(t, Description("चाय का भुगतान").Valid)
	assert.False(t, Description(strings.Repeat("क", 51)).Valid)
}

func TestScannedPayload(t *testing.T) {
	assert.True(t, ScannedPayload("upi://rahul.sharma@hdfc").Valid)
	assert.True(t, ScannedPayload("upi://a@b?am=100&tn=Lunch").Valid)
	assert.False(t, ScannedPayload("").Valid)
	assert.False(t, ScannedPayload("http://example.com").Valid)
	assert.False(t, ScannedPayload("UPI://a@b").Valid, "scheme is case-sensitive")
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("rahul.sharma@example.com").Valid)
	assert.False(t, Email("").Valid)
	assert.False(t, Email("not-an-email").Valid)
	assert.False(t, Email("a@b").Valid, "needs a dot after the at")
	// Deliberately permissive: consecutive dots are accepted.
	assert.True(t, Email("a..b@example.com").Valid)
}

func TestDisplayName(t *testing.T) {
	assert.True(t, DisplayName("Rahul Sharma").Valid)
	assert.True(t, DisplayName("J. R. D. Tata-Jr").Valid)
	assert.False(t, DisplayName("").Valid)
	assert.False(t, DisplayName("R").Valid)
	assert.False(t, DisplayName(strings.Repeat("a", 51)).Valid)
	assert.False(t, DisplayName("Rahul123").Valid)

	// Length is measured in characters, so a single multibyte character
	// still reports the too-short message rather than the charset one.
	assert.Equal(t, "Name must be at least 2 characters", DisplayName("क").Err)
}

func TestValidatorsAreIdempotent(t *testing.T) {
	inputs := []string{"", "rahul.sharma@hdfc", "9876543210", "100.555", "abc"}
	for _, in := range inputs {
		assert.Equal(t, PaymentAddress(in), PaymentAddress(in))
		assert.Equal(t, PhoneNumber(in), PhoneNumber(in))
		assert.Equal(t, Amount(in), Amount(in))
		assert.Equal(t, AccountNumber(in), AccountNumber(in))
		assert.Equal(t, Email(in), Email(in))
	}
}
