package jsonschemer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValidators(t *testing.T) {
	tests := []struct {
		format string
		value  string
		valid  bool
	}{
		{"date-time", "2024-01-15T10:30:00Z", true},
		{"date-time", "2024-01-15 10:30:00", false},
		{"date", "2024-01-15", true},
		{"date", "2024-13-01", false},
		{"time", "10:30:00Z", true},
		{"time", "25:00:00Z", false},
		{"email", "user@example.com", true},
		{"email", "plainaddress", false},
		{"hostname", "example.com", true},
		{"hostname", "-bad-.com", false},
		{"ipv4", "192.168.0.1", true},
		{"ipv4", "192.168.0.256", false},
		{"ipv4", "01.2.3.4", false},
		{"ipv6", "::1", true},
		{"ipv6", "127.0.0.1", false},
		{"uri", "https://example.com/a", true},
		{"uri", "relative/path", false},
		{"uri-reference", "relative/path", true},
		{"json-pointer", "/a/b~0c", true},
		{"json-pointer", "a/b", false},
		{"json-pointer", "/a~2", false},
		{"relative-json-pointer", "0#", true},
		{"relative-json-pointer", "2/a/b", true},
		{"relative-json-pointer", "#", false},
		{"regex", "ab+c", true},
		{"regex", "a(b", false},
	}

	for _, tt := range tests {
		t.Run(tt.format+"/"+tt.value, func(t *testing.T) {
			fn := Formats[tt.format]
			assert.NotNil(t, fn)
			assert.Equal(t, tt.valid, fn(tt.value))
		})
	}
}

func TestFormatValidatorsIgnoreNonStrings(t *testing.T) {
	for name, fn := range Formats {
		assert.True(t, fn(12), "format %q passes non-strings through", name)
	}
}
