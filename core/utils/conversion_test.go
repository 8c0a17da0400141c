package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
		ok    bool
	}{
		{"string", "red", "red", true},
		{"float", 12.5, "12.5", true},
		{"whole float", float64(3), "3", true},
		{"int", 4, "4", true},
		{"json number", json.Number("9.90"), "9.90", true},
		{"bool", true, "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToString(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToInt64(t *testing.T) {
	n, ok := ToInt64(float64(42))
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)

	n, ok = ToInt64(" 513 ")
	assert.True(t, ok)
	assert.Equal(t, int64(513), n)

	_, ok = ToInt64(1.5)
	assert.False(t, ok)

	_, ok = ToInt64("abc")
	assert.False(t, ok)
}

func TestToStrings(t *testing.T) {
	got, ok := ToStrings([]any{"a", " ", 2.0, " b "})
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "2", "b"}, got)

	_, ok = ToStrings([]any{"a", map[string]any{}})
	assert.False(t, ok)

	_, ok = ToStrings("a")
	assert.False(t, ok)
}
