// Package operand implements the operand types of a rendered instruction.
package operand

import (
	"strconv"

	"github.com/retroenv/rvdisasm/options"
	"github.com/retroenv/rvdisasm/register"
)

// Operand is a single operand of a rendered instruction.
// The set of operand types is closed, the types are Label, Immediate,
// Register and OffsetImmediate.
type Operand interface {
	// Format returns the operand text for the given format options.
	Format(format options.Format) string

	operand()
}

// Label is a symbolic or absolute target that is printed verbatim.
type Label string

// Immediate is an immediate value, printed in the configured number base.
type Immediate int64

// Register is a register reference, printed with the configured naming.
type Register struct {
	Reg register.Register
}

// OffsetImmediate is a memory reference of the form offset(base).
type OffsetImmediate struct {
	Offset int64
	Base   register.Register
}

// Compile-time checks to ensure all operand types implement Operand.
var (
	_ Operand = Label("")
	_ Operand = Immediate(0)
	_ Operand = Register{}
	_ Operand = OffsetImmediate{}
)

func (Label) operand()           {}
func (Immediate) operand()       {}
func (Register) operand()        {}
func (OffsetImmediate) operand() {}

// Format returns the label text.
func (l Label) Format(_ options.Format) string {
	return string(l)
}

// Format returns the immediate in the configured number base.
func (i Immediate) Format(format options.Format) string {
	return FormatImmediate(int64(i), format.Immediate)
}

// Format returns the register name for the configured naming policy.
func (r Register) Format(format options.Format) string {
	return r.Reg.Name(format.Registers)
}

// Format returns the memory reference as offset(base), the offset uses the
// configured number base.
func (o OffsetImmediate) Format(format options.Format) string {
	return FormatImmediate(o.Offset, format.Immediate) + "(" + o.Base.Name(format.Registers) + ")"
}

// FormatImmediate returns the text of an immediate value in the given number
// base. Hex and binary print the two's complement bit pattern, so negative
// values show up as 64 bit wide numbers.
func FormatImmediate(value int64, format options.ImmediateFormat) string {
	switch format {
	case options.SignedDecimal:
		return strconv.FormatInt(value, 10)
	case options.UnsignedDecimal:
		return strconv.FormatUint(uint64(value), 10)
	case options.Binary:
		return "0b" + strconv.FormatUint(uint64(value), 2)
	default:
		return "0x" + strconv.FormatUint(uint64(value), 16)
	}
}

// Reg returns a register operand for a raw register field. It panics if the
// field is out of range, see register.MustNew.
func Reg(index uint8) Register {
	return Register{Reg: register.MustNew(index)}
}

// Offset returns a memory reference operand for an offset and a raw base
// register field. It panics if the field is out of range, see register.MustNew.
func Offset(offset int64, base uint8) OffsetImmediate {
	return OffsetImmediate{
		Offset: offset,
		Base:   register.MustNew(base),
	}
}
