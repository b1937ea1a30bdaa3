package rv32i

import (
	"github.com/retroenv/rvdisasm/instruction"
	"github.com/retroenv/rvdisasm/operand"
)

// Beq is branch if equal.
type Beq B

// Bne is branch if not equal.
type Bne B

// Blt is branch if less than, signed.
type Blt B

// Bge is branch if greater or equal, signed.
type Bge B

// Bltu is branch if less than, unsigned.
type Bltu B

// Bgeu is branch if greater or equal, unsigned.
type Bgeu B

// Compile-time checks to ensure the types implement the needed interfaces.
var (
	_ Instruction = Beq{}
	_ Instruction = Bne{}
	_ Instruction = Blt{}
	_ Instruction = Bge{}
	_ Instruction = Bltu{}
	_ Instruction = Bgeu{}

	_ instruction.Relative = Beq{}
	_ instruction.Relative = Bne{}
	_ instruction.Relative = Blt{}
	_ instruction.Relative = Bge{}
	_ instruction.Relative = Bltu{}
	_ instruction.Relative = Bgeu{}
)

func (Beq) rv32i()  {}
func (Bne) rv32i()  {}
func (Blt) rv32i()  {}
func (Bge) rv32i()  {}
func (Bltu) rv32i() {}
func (Bgeu) rv32i() {}

func (Beq) Opcode() Opcode  { return OpBeq }
func (Bne) Opcode() Opcode  { return OpBne }
func (Blt) Opcode() Opcode  { return OpBlt }
func (Bge) Opcode() Opcode  { return OpBge }
func (Bltu) Opcode() Opcode { return OpBltu }
func (Bgeu) Opcode() Opcode { return OpBgeu }

func (Beq) Name() string  { return OpBeq.String() }
func (Bne) Name() string  { return OpBne.String() }
func (Blt) Name() string  { return OpBlt.String() }
func (Bge) Name() string  { return OpBge.String() }
func (Bltu) Name() string { return OpBltu.String() }
func (Bgeu) Name() string { return OpBgeu.String() }

func (i Beq) Offset() int64  { return int64(i.Imm) }
func (i Bne) Offset() int64  { return int64(i.Imm) }
func (i Blt) Offset() int64  { return int64(i.Imm) }
func (i Bge) Offset() int64  { return int64(i.Imm) }
func (i Bltu) Offset() int64 { return int64(i.Imm) }
func (i Bgeu) Offset() int64 { return int64(i.Imm) }

// zeroBranchMnemonic selects the mnemonic of a signed branch. Comparing
// against x0 on the left or the right side has a different meaning for
// ordered comparisons, so both sides get their own alias.
func zeroBranchMnemonic(b B, name, leftZero, rightZero string) string {
	switch {
	case b.Rs1 == zeroRegister:
		return leftZero
	case b.Rs2 == zeroRegister:
		return rightZero
	default:
		return name
	}
}

// zeroBranchOperands drops the x0 operand of a branch that compares against
// zero.
func zeroBranchOperands(b B) []operand.Operand {
	switch {
	case b.Rs1 == zeroRegister:
		return ops(reg(b.Rs2), imm(b.Imm))
	case b.Rs2 == zeroRegister:
		return ops(reg(b.Rs1), imm(b.Imm))
	default:
		return branchOperands(b)
	}
}

func branchOperands(b B) []operand.Operand {
	return ops(reg(b.Rs1), reg(b.Rs2), imm(b.Imm))
}

func (i Beq) Mnemonic() string {
	return zeroBranchMnemonic(B(i), "beq", "beqz", "beqz")
}

func (i Beq) Operands() []operand.Operand {
	return zeroBranchOperands(B(i))
}

func (i Bne) Mnemonic() string {
	return zeroBranchMnemonic(B(i), "bne", "bnez", "bnez")
}

func (i Bne) Operands() []operand.Operand {
	return zeroBranchOperands(B(i))
}

// Mnemonic returns bgtz for 0 < rs2 and bltz for rs1 < 0.
func (i Blt) Mnemonic() string {
	return zeroBranchMnemonic(B(i), "blt", "bgtz", "bltz")
}

func (i Blt) Operands() []operand.Operand {
	return zeroBranchOperands(B(i))
}

// Mnemonic returns blez for 0 >= rs2 and bgez for rs1 >= 0.
func (i Bge) Mnemonic() string {
	return zeroBranchMnemonic(B(i), "bge", "blez", "bgez")
}

func (i Bge) Operands() []operand.Operand {
	return zeroBranchOperands(B(i))
}

func (i Bltu) Mnemonic() string { return "bltu" }

func (i Bltu) Operands() []operand.Operand {
	return branchOperands(B(i))
}

func (i Bgeu) Mnemonic() string { return "bgeu" }

func (i Bgeu) Operands() []operand.Operand {
	return branchOperands(B(i))
}
