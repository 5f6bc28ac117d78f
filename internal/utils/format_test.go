package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1,234.50", FormatAmount(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "12,34,567.89", FormatAmount(decimal.RequireFromString("1234567.89")))
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "₹2,500.00", FormatCurrency(decimal.NewFromInt(2500)))
}

func TestFormatBalance(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"25000000", "2.5Cr"},
		{"250000", "2.5L"},
		{"2500", "2.5K"},
		{"950", "950"},
		{"0", "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBalance(decimal.RequireFromString(tt.in)), tt.in)
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	assert.Equal(t, "+91 98765 43210", FormatPhoneNumber("9876543210"))
	assert.Equal(t, "+91 98765 43210", FormatPhoneNumber("919876543210"))
	assert.Equal(t, "+91 98765 43210", FormatPhoneNumber("98765-43210"))
	assert.Equal(t, "12345", FormatPhoneNumber("12345"), "unrecognized shapes pass through")
}

func TestFormatAccountNumber(t *testing.T) {
	assert.Equal(t, "1234 5678 9012", FormatAccountNumber("123456789012"))
	assert.Equal(t, "1234 5678 9", FormatAccountNumber("1234-5678-9"))
}

func TestMasking(t *testing.T) {
	assert.Equal(t, "********9012", MaskAccountNumber("123456789012"))
	assert.Equal(t, "******3210", MaskPhoneNumber("9876543210"))
	assert.Equal(t, "123", MaskAccountNumber("123"), "short values pass through")
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "Just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{2 * 24 * time.Hour, "2d ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRelativeTime(now, now.Add(-tt.ago)))
	}
	assert.Equal(t, "1 Mar 2024", FormatRelativeTime(now, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Payment", TransactionTypeLabel("pay"))
	assert.Equal(t, "Collection", TransactionTypeLabel("collect"))
	assert.Equal(t, "Refund", TransactionTypeLabel("refund"), "unknown kinds are capitalized")
	assert.Equal(t, "Successful", TransactionStatusLabel("success"))
	assert.Equal(t, "Declined", TransactionStatusLabel("declined"))
}

func TestTruncateAndCapitalize(t *testing.T) {
	assert.Equal(t, "hello", TruncateText("hello", 10))
	assert.Equal(t, "hel...", TruncateText("hello world", 3))
	assert.Equal(t, "चाय का...", TruncateText("चाय का भुगतान", 6))
	assert.Equal(t, "चाय", TruncateText("चाय", 3))
	assert.Equal(t, "Savings", CapitalizeFirst("sAVINGS"))
	assert.Equal(t, "", CapitalizeFirst(""))
}
