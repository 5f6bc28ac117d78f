package validation

import "strings"

// knownProviders is the fixed allow-list of payment address provider
// suffixes. Membership is checked case-insensitively.
var knownProviders = map[string]struct{}{
	"okicici":      {},
	"paytm":        {},
	"phonepe":      {},
	"gpay":         {},
	"amazonpay":    {},
	"bhim":         {},
	"axis":         {},
	"hdfc":         {},
	"sbi":          {},
	"icici":        {},
	"kotak":        {},
	"yesbank":      {},
	"pnb":          {},
	"unionbank":    {},
	"canara":       {},
	"bankofbaroda": {},
	"idfc":         {},
	"federal":      {},
}

// KnownProvider reports whether provider is in the allow-list.
func KnownProvider(provider string) bool {
	_, found := knownProviders[strings.ToLower(provider)]
	return found
}
