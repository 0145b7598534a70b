package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$39.99", formatPrice(39.99))
	assert.Equal(t, "$0.00", formatPrice(0))
	assert.Equal(t, "$145.97", formatPrice(39.99+65.99+39.99))
}

func TestThemeCycle(t *testing.T) {
	start := themes[0].Name
	name := start
	for range themes {
		name = NextTheme(name)
	}
	assert.Equal(t, start, name)

	// Unknown names fall back to the first theme.
	assert.Equal(t, themes[0], GetTheme("nope"))
	assert.Equal(t, themes[0].Name, NextTheme("nope"))
}
