package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortHash(t *testing.T) {
	assert.Equal(t, "0123456", ShortHash("0123456789abcdef"))
	assert.Equal(t, "abc", ShortHash("abc"))
	assert.Equal(t, "unknown", ShortHash(""))
}

func TestGetFullVersion(t *testing.T) {
	version := GetFullVersion()
	assert.NotEmpty(t, version)
	assert.True(t, strings.Contains(version, "-"))
}
