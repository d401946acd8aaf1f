package helper

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderNumberPattern = regexp.MustCompile(`^PO-[A-Z0-9]+-[a-z0-9]{8}$`)

func TestGenerateOrderNumberFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := GenerateOrderNumber()
		require.True(t, orderNumberPattern.MatchString(n), "bad order number %q", n)
	}
}

func TestGenerateOrderNumberUnique(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		n := GenerateOrderNumber()
		_, dup := seen[n]
		assert.False(t, dup, "duplicate order number %q", n)
		seen[n] = struct{}{}
	}
}
