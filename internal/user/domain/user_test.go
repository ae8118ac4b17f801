package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"luiza@example.com", "luiza@example.com"},
		{"Luiza@EXAMPLE.COM", "Luiza@example.com"},
		{"  luiza@Example.Com  ", "luiza@example.com"},
		{"with@multiple@Example.COM", "with@multiple@example.com"},
		{"no-at-sign", "no-at-sign"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.in), "input %q", tt.in)
	}
}
