package autils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToStringTrimLower(t *testing.T) {
	assert.Equal(t, "core", ToStringTrimLower("  CORE  "))
	assert.Equal(t, "", ToStringTrimLower("   "))
}
