package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTrackingCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := GenerateTrackingCode()
		assert.True(t, strings.HasPrefix(code, "DSP-"))
		assert.Len(t, code, len("DSP-")+12)
		assert.Equal(t, strings.ToUpper(code), code)
		assert.False(t, seen[code], "tracking codes must not repeat")
		seen[code] = true
	}
}
