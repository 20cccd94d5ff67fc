package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShorten(t *testing.T) {
	assert.Equal(t, "short", Shorten("short"))
	assert.Equal(t, "0123456789abcdef", Shorten("0123456789abcdef"))
	assert.Equal(t, "9pVCGj4T...tz4h1U7j", Shorten("9pVCGj4TJ26R69ivxvWkGEb63EymsCqxjWsstz4h1U7j"))
}
