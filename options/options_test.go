package options

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewFormat(t *testing.T) {
	f := NewFormat()

	assert.Equal(t, "\t", f.VerbArgSpacing)
	assert.Equal(t, "", f.ArgSpacing)
	assert.Equal(t, Hex, f.Immediate)
	assert.Equal(t, ABINames, f.Registers)
}

func TestFormatOverridesReturnCopies(t *testing.T) {
	base := NewFormat()

	raw := base.WithRegisters(RawNames)
	signed := base.WithImmediate(SignedDecimal)
	spaced := base.WithSpacing(" ", " ")

	assert.Equal(t, RawNames, raw.Registers)
	assert.Equal(t, SignedDecimal, signed.Immediate)
	assert.Equal(t, " ", spaced.VerbArgSpacing)
	assert.Equal(t, " ", spaced.ArgSpacing)

	// the base value stays untouched
	assert.Equal(t, NewFormat(), base)
}

func TestFormatStrings(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{ String() string }
		expected string
	}{
		{"hex", Hex, "hex"},
		{"signed", SignedDecimal, "signed"},
		{"unsigned", UnsignedDecimal, "unsigned"},
		{"binary", Binary, "binary"},
		{"invalid immediate", ImmediateFormat(42), "unknown"},
		{"abi", ABINames, "abi"},
		{"raw", RawNames, "raw"},
		{"invalid naming", RegisterNaming(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}
