package format

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bold and underline",
			in:   "\x02bold\x02 and \x1funder\x1f",
			want: "bold and under",
		},
		{
			name: "color with arguments",
			in:   "\x0304red\x03 \x0304,01red on black\x03",
			want: "red red on black",
		},
		{
			name: "reverse monospace reset",
			in:   "\x16r\x16\x11m\x11\x0f",
			want: "rm",
		},
		{
			name: "plain text untouched",
			in:   "plain",
			want: "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.in))
		})
	}
}

func TestANSI(t *testing.T) {
	// Escape sequences depend on the terminal profile, so assert over the
	// stripped text: every IRC code must be consumed, every character kept.
	tests := []struct {
		name string
		in   string
	}{
		{name: "bold", in: "\x02hi\x02 there"},
		{name: "underline", in: "\x1fhi\x1f"},
		{name: "color", in: "\x0304red\x03 plain"},
		{name: "color with background", in: "\x0300,04alert\x03"},
		{name: "reset mid string", in: "\x02a\x0fb"},
		{name: "unbalanced codes", in: "\x02never closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Strip(tt.in), ansi.Strip(ANSI(tt.in)))
		})
	}

	assert.Equal(t, "plain", ANSI("plain"))
	assert.Equal(t, "", ANSI(""))
}
