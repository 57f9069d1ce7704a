package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntOrStringUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want IntOrString
	}{
		{"number", `4`, FromInt(4)},
		{"float truncates", `4.5`, FromInt(4)},
		{"range text", `"8-12"`, FromString("8-12")},
		{"duration text", `"5 min"`, FromString("5 min")},
		{"numeric text stays text", `"12"`, FromString("12")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got IntOrString
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntOrStringRoundTrip(t *testing.T) {
	for _, in := range []string{`4`, `"8-12"`, `"5 min"`, `"40 sec"`, `0`} {
		var v IntOrString
		require.NoError(t, json.Unmarshal([]byte(in), &v))
		out, err := json.Marshal(v)
		require.NoError(t, err)
		assert.Equal(t, in, string(out))
	}
}

func TestIntOrStringCoercion(t *testing.T) {
	tests := []struct {
		in   IntOrString
		want int
	}{
		{FromInt(3), 3},
		{FromString("10"), 10},
		{FromString("8-12"), 8},
		{FromString("5 min"), 5},
		{FromString("40 sec"), 40},
		{FromString("abc"), 0},
		{FromString(""), 0},
		{FromString("  15"), 15},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Int(), "coercing %q", tt.in.String())
	}
}
