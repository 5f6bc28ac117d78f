// Package validation is the pure field validation engine. Every validator is
// a synchronous function over a raw string that runs its checks in a fixed
// order and returns on the first failure; no accumulation, no I/O, no state.
package validation

import "regexp"

// Result is the outcome of a single field validation. Err is empty exactly
// when Valid is true.
type Result struct {
	Valid bool   `json:"is_valid"`
	Err   string `json:"error,omitempty"`
}

func ok() Result {
	return Result{Valid: true}
}

func fail(msg string) Result {
	return Result{Valid: false, Err: msg}
}

var (
	addressRegex       = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+$`)
	phoneRegex         = regexp.MustCompile(`^[6-9]\d{9}$`)
	accountNumberRegex = regexp.MustCompile(`^\d{9,18}$`)
	routingCodeRegex   = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	descriptionRegex   = regexp.MustCompile(`[<>{}]`)
	emailRegex         = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nameRegex          = regexp.MustCompile(`^[a-zA-Z\s.\-]+$`)
)
