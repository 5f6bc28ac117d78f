// Package utils holds identifier minting and display formatting helpers
// shared across the application.
package utils

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Record ID prefixes.
const (
	PrefixUser        = "user"
	PrefixAccount     = "acc"
	PrefixAddress     = "vpa"
	PrefixTransaction = "txn"
	PrefixRequest     = "req"
	PrefixQR          = "qr"
	PrefixContact     = "contact"
	PrefixBeneficiary = "ben"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewID mints a prefixed opaque record identifier. ULIDs are time-ordered
// and safe under rapid succession, unlike raw millisecond timestamps.
func NewID(prefix string) string {
	entropyMu.Lock()
	id := ulid.MustNew(ulid.Now(), entropy)
	entropyMu.Unlock()
	return prefix + "-" + strings.ToLower(id.String())
}

// NewReferenceID mints the customer-facing transaction reference: base36
// timestamp plus a random suffix, upper-cased.
func NewReferenceID(now time.Time) string {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36) + hex.EncodeToString(suffix))
}

var protocolRefMax = big.NewInt(1000000)

// NewProtocolRefID mints the protocol-level (RRN-style) numeric reference.
func NewProtocolRefID(now time.Time) string {
	n, err := rand.Int(rand.Reader, protocolRefMax)
	if err != nil {
		panic(err)
	}
	return strconv.FormatInt(now.UnixMilli(), 10) + n.String()
}
