package validation

import "github.com/shopspring/decimal"

const (
	// Payment address part lengths.
	MinAddressLocalLength    = 3
	MaxAddressLocalLength    = 50
	MinAddressProviderLength = 2
	MaxAddressProviderLength = 20

	// Free-text description.
	MaxDescriptionLength = 50

	// Display names.
	MinNameLength = 2
	MaxNameLength = 50

	// Amount precision (fractional digits).
	MaxAmountScale = 2
)

// DefaultAmountCeiling is the per-transaction cap applied when the caller
// does not supply a tighter one.
var DefaultAmountCeiling = decimal.NewFromInt(100000)
