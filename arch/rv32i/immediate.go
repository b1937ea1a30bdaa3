package rv32i

import "github.com/retroenv/rvdisasm/operand"

// Addi is add immediate.
type Addi I

// Slti is set if less than immediate, signed.
type Slti I

// Sltiu is set if less than immediate, unsigned.
type Sltiu I

// Xori is exclusive or immediate.
type Xori I

// Ori is or immediate.
type Ori I

// Andi is and immediate.
type Andi I

// Slli is shift left logical by immediate.
type Slli Shift

// Srli is shift right logical by immediate.
type Srli Shift

// Srai is shift right arithmetic by immediate.
type Srai Shift

// Compile-time checks to ensure the types implement Instruction.
var (
	_ Instruction = Addi{}
	_ Instruction = Slti{}
	_ Instruction = Sltiu{}
	_ Instruction = Xori{}
	_ Instruction = Ori{}
	_ Instruction = Andi{}
	_ Instruction = Slli{}
	_ Instruction = Srli{}
	_ Instruction = Srai{}
)

// immediateMask covers the 12 bit immediate field of the I format.
const immediateMask = 0xfff

func (Addi) rv32i()  {}
func (Slti) rv32i()  {}
func (Sltiu) rv32i() {}
func (Xori) rv32i()  {}
func (Ori) rv32i()   {}
func (Andi) rv32i()  {}
func (Slli) rv32i()  {}
func (Srli) rv32i()  {}
func (Srai) rv32i()  {}

func (Addi) Opcode() Opcode  { return OpAddi }
func (Slti) Opcode() Opcode  { return OpSlti }
func (Sltiu) Opcode() Opcode { return OpSltiu }
func (Xori) Opcode() Opcode  { return OpXori }
func (Ori) Opcode() Opcode   { return OpOri }
func (Andi) Opcode() Opcode  { return OpAndi }
func (Slli) Opcode() Opcode  { return OpSlli }
func (Srli) Opcode() Opcode  { return OpSrli }
func (Srai) Opcode() Opcode  { return OpSrai }

func (Addi) Name() string  { return OpAddi.String() }
func (Slti) Name() string  { return OpSlti.String() }
func (Sltiu) Name() string { return OpSltiu.String() }
func (Xori) Name() string  { return OpXori.String() }
func (Ori) Name() string   { return OpOri.String() }
func (Andi) Name() string  { return OpAndi.String() }
func (Slli) Name() string  { return OpSlli.String() }
func (Srli) Name() string  { return OpSrli.String() }
func (Srai) Name() string  { return OpSrai.String() }

func immediateOperands(i I) []operand.Operand {
	return ops(reg(i.Rd), reg(i.Rs1), imm(i.Imm))
}

func shiftOperands(s Shift) []operand.Operand {
	return ops(reg(s.Rd), reg(s.Rs1), operand.Immediate(s.Shamt))
}

// Mnemonic returns nop for addi zero,zero,0, li for an add to x0 and mv for an
// add of zero.
func (i Addi) Mnemonic() string {
	switch {
	case i.Rd == zeroRegister && i.Rs1 == zeroRegister && i.Imm == 0:
		return "nop"
	case i.Rs1 == zeroRegister:
		return "li"
	case i.Imm == 0:
		return "mv"
	default:
		return "addi"
	}
}

func (i Addi) Operands() []operand.Operand {
	switch {
	case i.Rd == zeroRegister && i.Rs1 == zeroRegister && i.Imm == 0:
		return nil
	case i.Rs1 == zeroRegister:
		return ops(reg(i.Rd), imm(i.Imm))
	case i.Imm == 0:
		return ops(reg(i.Rd), reg(i.Rs1))
	default:
		return immediateOperands(I(i))
	}
}

func (i Slti) Mnemonic() string { return "slti" }

func (i Slti) Operands() []operand.Operand {
	return immediateOperands(I(i))
}

// Mnemonic returns seqz for a compare against 1, which is only true for a
// source register value of zero.
func (i Sltiu) Mnemonic() string {
	if i.Imm == 1 {
		return "seqz"
	}
	return "sltiu"
}

func (i Sltiu) Operands() []operand.Operand {
	if i.Imm == 1 {
		return ops(reg(i.Rd), reg(i.Rs1))
	}
	return immediateOperands(I(i))
}

// Mnemonic returns not for an exclusive or with all 12 immediate bits set.
func (i Xori) Mnemonic() string {
	if i.isNot() {
		return "not"
	}
	return "xori"
}

func (i Xori) Operands() []operand.Operand {
	if i.isNot() {
		return ops(reg(i.Rd), reg(i.Rs1))
	}
	return immediateOperands(I(i))
}

// isNot matches both the sign extended -1 and the raw field value 0xfff.
func (i Xori) isNot() bool {
	return i.Imm&immediateMask == immediateMask
}

func (i Ori) Mnemonic() string { return "ori" }

func (i Ori) Operands() []operand.Operand {
	return immediateOperands(I(i))
}

func (i Andi) Mnemonic() string { return "andi" }

func (i Andi) Operands() []operand.Operand {
	return immediateOperands(I(i))
}

func (i Slli) Mnemonic() string { return "slli" }
func (i Srli) Mnemonic() string { return "srli" }
func (i Srai) Mnemonic() string { return "srai" }

func (i Slli) Operands() []operand.Operand { return shiftOperands(Shift(i)) }
func (i Srli) Operands() []operand.Operand { return shiftOperands(Shift(i)) }
func (i Srai) Operands() []operand.Operand { return shiftOperands(Shift(i)) }
