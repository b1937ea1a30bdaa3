package rv32i

import (
	"github.com/retroenv/rvdisasm/instruction"
	"github.com/retroenv/rvdisasm/operand"
)

// Lui is load upper immediate.
type Lui U

// AuiPc is add upper immediate to pc.
type AuiPc U

// Jal is jump and link.
type Jal J

// JalR is jump and link register.
type JalR I

// Compile-time checks to ensure the types implement the needed interfaces.
var (
	_ Instruction          = Lui{}
	_ Instruction          = AuiPc{}
	_ Instruction          = Jal{}
	_ Instruction          = JalR{}
	_ instruction.Relative = Jal{}
)

func (Lui) rv32i()   {}
func (AuiPc) rv32i() {}
func (Jal) rv32i()   {}
func (JalR) rv32i()  {}

func (Lui) Opcode() Opcode   { return OpLui }
func (AuiPc) Opcode() Opcode { return OpAuiPc }
func (Jal) Opcode() Opcode   { return OpJal }
func (JalR) Opcode() Opcode  { return OpJalR }

func (Lui) Name() string   { return OpLui.String() }
func (AuiPc) Name() string { return OpAuiPc.String() }
func (Jal) Name() string   { return OpJal.String() }
func (JalR) Name() string  { return OpJalR.String() }

// upper returns the 20 bit upper immediate value of an immediate that is
// stored in its encoded bit position. The shift is arithmetic, the operand
// shows the sign extended 20 bit value.
func upper(value int32) operand.Operand {
	return operand.Immediate(int64(value) >> 12)
}

func (i Lui) Mnemonic() string { return "lui" }

func (i Lui) Operands() []operand.Operand {
	return ops(reg(i.Rd), upper(i.Imm))
}

func (i AuiPc) Mnemonic() string { return "auipc" }

func (i AuiPc) Operands() []operand.Operand {
	return ops(reg(i.Rd), upper(i.Imm))
}

// Mnemonic returns j for a jump that discards the return address.
func (i Jal) Mnemonic() string {
	if i.Rd == zeroRegister {
		return "j"
	}
	return "jal"
}

func (i Jal) Operands() []operand.Operand {
	if i.Rd == zeroRegister {
		return ops(imm(i.Imm))
	}
	return ops(reg(i.Rd), imm(i.Imm))
}

// Offset returns the jump offset relative to the instruction address.
func (i Jal) Offset() int64 {
	return int64(i.Imm)
}

// Mnemonic returns ret for jalr ra,ra,0 and jr for a jump without link and
// offset.
func (i JalR) Mnemonic() string {
	switch {
	case i.isReturn():
		return "ret"
	case i.Imm == 0 && i.Rd == zeroRegister:
		return "jr"
	default:
		return "jalr"
	}
}

func (i JalR) Operands() []operand.Operand {
	switch {
	case i.isReturn():
		return nil
	case i.Imm == 0 && i.Rd == zeroRegister:
		return ops(reg(i.Rs1))
	default:
		return ops(reg(i.Rd), reg(i.Rs1), imm(i.Imm))
	}
}

func (i JalR) isReturn() bool {
	return i.Imm == 0 && i.Rd == linkRegister && i.Rs1 == linkRegister
}
