// Package instruction contains the canonical form of a decoded instruction
// and the renderer that turns it into a line of assembly text.
package instruction

import (
	"strings"

	"github.com/retroenv/rvdisasm/operand"
	"github.com/retroenv/rvdisasm/options"
)

// Instruction represents a decoded CPU instruction that can be rendered.
type Instruction interface {
	// Name returns the name of the base instruction, independent of any
	// pseudo-instruction substitution.
	Name() string
	// Mnemonic returns the mnemonic to print, which can be a pseudo-instruction
	// alias depending on the operand fields.
	Mnemonic() string
	// Operands returns the ordered operands that belong to the mnemonic.
	Operands() []operand.Operand
}

// Relative is implemented by instructions that reference a target relative
// to their own address, like branches and jumps.
type Relative interface {
	// Offset returns the signed byte offset of the target.
	Offset() int64
}

// Canonical is the mnemonic and operand list selected for an instruction.
type Canonical struct {
	Mnemonic string
	Operands []operand.Operand
}

// Canonicalize returns the canonical form of an instruction.
func Canonicalize(ins Instruction) Canonical {
	return Canonical{
		Mnemonic: ins.Mnemonic(),
		Operands: ins.Operands(),
	}
}

// Format returns the assembly text of the canonical form. Operands are
// separated by a comma followed by the operand spacing, the mnemonic is only
// followed by its separator if operands follow.
func (c Canonical) Format(format options.Format) string {
	if len(c.Operands) == 0 {
		return c.Mnemonic
	}

	var b strings.Builder
	b.WriteString(c.Mnemonic)
	b.WriteString(format.VerbArgSpacing)

	for i, op := range c.Operands {
		if i > 0 {
			b.WriteByte(',')
			b.WriteString(format.ArgSpacing)
		}
		b.WriteString(op.Format(format))
	}
	return b.String()
}

// Render returns the assembly text of an instruction.
func Render(ins Instruction, format options.Format) string {
	return Canonicalize(ins).Format(format)
}

// IsAlias returns whether the instruction is printed using a
// pseudo-instruction mnemonic instead of its base name.
func IsAlias(ins Instruction) bool {
	return ins.Mnemonic() != ins.Name()
}
