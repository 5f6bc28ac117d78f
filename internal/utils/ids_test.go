package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDUniqueUnderRapidSuccession(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 10000; i++ {
		id := NewID(PrefixTransaction)
		require.True(t, strings.HasPrefix(id, "txn-"))
		_, dup := seen[id]
		require.False(t, dup, "id collision: %s", id)
		seen[id] = struct{}{}
	}
}

func TestNewReferenceID(t *testing.T) {
	now := time.Now()
	ref := NewReferenceID(now)
	assert.Equal(t, strings.ToUpper(ref), ref, "reference ids are upper-cased")
	assert.NotEqual(t, ref, NewReferenceID(now), "random suffix differs per mint")
}

func TestNewProtocolRefID(t *testing.T) {
	ref := NewProtocolRefID(time.Now())
	for _, r := range ref {
		assert.True(t, r >= '0' && r <= '9', "protocol refs are numeric: %s", ref)
	}
}
