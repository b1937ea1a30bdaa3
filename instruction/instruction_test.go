package instruction

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/rvdisasm/operand"
	"github.com/retroenv/rvdisasm/options"
)

type fakeInstruction struct {
	name     string
	mnemonic string
	operands []operand.Operand
}

func (f fakeInstruction) Name() string                { return f.name }
func (f fakeInstruction) Mnemonic() string            { return f.mnemonic }
func (f fakeInstruction) Operands() []operand.Operand { return f.operands }

func TestRender(t *testing.T) {
	three := fakeInstruction{
		name:     "addi",
		mnemonic: "addi",
		operands: []operand.Operand{operand.Reg(10), operand.Reg(11), operand.Immediate(-1)},
	}
	memory := fakeInstruction{
		name:     "lw",
		mnemonic: "lw",
		operands: []operand.Operand{operand.Reg(5), operand.Offset(-8, 2)},
	}
	none := fakeInstruction{name: "ecall", mnemonic: "ecall"}

	def := options.NewFormat()

	tests := []struct {
		name     string
		ins      Instruction
		format   options.Format
		expected string
	}{
		{"default", three, def, "addi\ta0,a1,0xffffffffffffffff"},
		{"raw signed", three, def.WithRegisters(options.RawNames).WithImmediate(options.SignedDecimal), "addi\tx10,x11,-1"},
		{"spaced", three, def.WithSpacing(" ", " ").WithImmediate(options.SignedDecimal), "addi a0, a1, -1"},
		{"memory", memory, def.WithImmediate(options.SignedDecimal), "lw\tt0,-8(sp)"},
		{"no operands", none, def, "ecall"},
		{"no operands spaced", none, def.WithSpacing("    ", " "), "ecall"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.ins, tt.format))
		})
	}
}

func TestSpacingOnlyChangesWhitespace(t *testing.T) {
	ins := fakeInstruction{
		name:     "sw",
		mnemonic: "sw",
		operands: []operand.Operand{operand.Reg(1), operand.Offset(12, 2), operand.Label("x")},
	}
	def := options.NewFormat()

	tight := Render(ins, def.WithSpacing("", ""))
	wide := Render(ins, def.WithSpacing("\t\t", "  "))

	assert.Equal(t, strings.Join(strings.Fields(tight), ""), strings.Join(strings.Fields(wide), ""))
	assert.Equal(t, "swra,0xc(sp),x", tight)
}

func TestCanonicalize(t *testing.T) {
	ins := fakeInstruction{
		name:     "addi",
		mnemonic: "li",
		operands: []operand.Operand{operand.Reg(5), operand.Immediate(7)},
	}

	c := Canonicalize(ins)
	assert.Equal(t, "li", c.Mnemonic)
	assert.Equal(t, 2, len(c.Operands))
	assert.Equal(t, "li\tx5,0x7", c.Format(options.NewFormat().WithRegisters(options.RawNames)))
	assert.True(t, IsAlias(ins))
	assert.False(t, IsAlias(fakeInstruction{name: "add", mnemonic: "add"}))
}
