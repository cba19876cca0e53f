package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstToken(t *testing.T) {
	assert.Equal(t, "", firstToken(""))
	assert.Equal(t, "", firstToken("   "))
	assert.Equal(t, "1aBcD", firstToken("1aBcD"))
	assert.Equal(t, "1aBcD", firstToken("1aBcD (copy from drive)"))
	assert.Equal(t, "1aBcD", firstToken("  1aBcD\tsheet"))
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Equal(t, []string{"http://a", "http://b"}, splitAndTrim("http://a, http://b"))
	assert.Equal(t, []string{"http://a"}, splitAndTrim("http://a,,  "))
}
