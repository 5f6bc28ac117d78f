package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var indianPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatAmount renders an amount with Indian digit grouping and exactly two
// fractional digits, e.g. 1234567.5 -> "12,34,567.50".
func FormatAmount(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return indianPrinter.Sprintf("%v",
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatCurrency renders an amount as Indian rupees.
func FormatCurrency(amount decimal.Decimal) string {
	return "₹" + FormatAmount(amount)
}

var (
	crore = decimal.NewFromInt(10000000)
	lakh  = decimal.NewFromInt(100000)
	thou  = decimal.NewFromInt(1000)
)

// FormatBalance renders a balance compactly using Indian units:
// crores, lakhs, thousands.
func FormatBalance(balance decimal.Decimal) string {
	switch {
	case balance.GreaterThanOrEqual(crore):
		return balance.Div(crore).StringFixed(1) + "Cr"
	case balance.GreaterThanOrEqual(lakh):
		return balance.Div(lakh).StringFixed(1) + "L"
	case balance.GreaterThanOrEqual(thou):
		return balance.Div(thou).StringFixed(1) + "K"
	default:
		return balance.String()
	}
}

// FormatDate renders a date as "15 Mar 2024".
func FormatDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}

// FormatDateTime renders a timestamp as "15 Mar 2024, 12:30".
func FormatDateTime(t time.Time) string {
	return t.Format("2 Jan 2006, 15:04")
}

// FormatRelativeTime renders how long ago t was relative to now.
func FormatRelativeTime(now, t time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return FormatDate(t)
	}
}

// FormatPhoneNumber renders a mobile number as "+91 98765 43210". Inputs
// that are not a bare 10-digit or 91-prefixed 12-digit number are returned
// unchanged.
func FormatPhoneNumber(phone string) string {
	cleaned := digitsOnly(phone)
	switch {
	case len(cleaned) == 10:
		return "+91 " + cleaned[:5] + " " + cleaned[5:]
	case len(cleaned) == 12 && strings.HasPrefix(cleaned, "91"):
		return "+91 " + cleaned[2:7] + " " + cleaned[7:]
	default:
		return phone
	}
}

// FormatAccountNumber groups account digits in blocks of four.
func FormatAccountNumber(accountNumber string) string {
	cleaned := digitsOnly(accountNumber)
	var b strings.Builder
	for i, r := range cleaned {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatRoutingCode normalizes a routing code for display.
func FormatRoutingCode(code string) string {
	return strings.ToUpper(code)
}

// CapitalizeFirst upper-cases the first character and lower-cases the rest.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// TruncateText shortens s to maxLen characters with an ellipsis. Cutting is
// done on runes so multibyte text is never split mid-character.
func TruncateText(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

var transactionTypeLabels = map[string]string{
	"pay":     "Payment",
	"request": "Request",
	"collect": "Collection",
}

var transactionStatusLabels = map[string]string{
	"pending":  "Pending",
	"success":  "Successful",
	"failed":   "Failed",
	"accepted": "Accepted",
	"declined": "Declined",
	"expired":  "Expired",
}

// TransactionTypeLabel renders a transaction kind for display.
func TransactionTypeLabel(kind string) string {
	if label, found := transactionTypeLabels[kind]; found {
		return label
	}
	return CapitalizeFirst(kind)
}

// TransactionStatusLabel renders a transaction or request status for display.
func TransactionStatusLabel(status string) string {
	if label, found := transactionStatusLabels[status]; found {
		return label
	}
	return CapitalizeFirst(status)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
