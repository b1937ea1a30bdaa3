package rv32i

import "github.com/retroenv/rvdisasm/operand"

// Lb is load byte, sign extended.
type Lb I

// Lh is load halfword, sign extended.
type Lh I

// Lw is load word.
type Lw I

// Lbu is load byte, zero extended.
type Lbu I

// Lhu is load halfword, zero extended.
type Lhu I

// Sb is store byte.
type Sb S

// Sh is store halfword.
type Sh S

// Sw is store word.
type Sw S

// Compile-time checks to ensure the types implement Instruction.
var (
	_ Instruction = Lb{}
	_ Instruction = Lh{}
	_ Instruction = Lw{}
	_ Instruction = Lbu{}
	_ Instruction = Lhu{}
	_ Instruction = Sb{}
	_ Instruction = Sh{}
	_ Instruction = Sw{}
)

func (Lb) rv32i()  {}
func (Lh) rv32i()  {}
func (Lw) rv32i()  {}
func (Lbu) rv32i() {}
func (Lhu) rv32i() {}
func (Sb) rv32i()  {}
func (Sh) rv32i()  {}
func (Sw) rv32i()  {}

func (Lb) Opcode() Opcode  { return OpLb }
func (Lh) Opcode() Opcode  { return OpLh }
func (Lw) Opcode() Opcode  { return OpLw }
func (Lbu) Opcode() Opcode { return OpLbu }
func (Lhu) Opcode() Opcode { return OpLhu }
func (Sb) Opcode() Opcode  { return OpSb }
func (Sh) Opcode() Opcode  { return OpSh }
func (Sw) Opcode() Opcode  { return OpSw }

func (Lb) Name() string  { return OpLb.String() }
func (Lh) Name() string  { return OpLh.String() }
func (Lw) Name() string  { return OpLw.String() }
func (Lbu) Name() string { return OpLbu.String() }
func (Lhu) Name() string { return OpLhu.String() }
func (Sb) Name() string  { return OpSb.String() }
func (Sh) Name() string  { return OpSh.String() }
func (Sw) Name() string  { return OpSw.String() }

func (Lb) Mnemonic() string  { return "lb" }
func (Lh) Mnemonic() string  { return "lh" }
func (Lw) Mnemonic() string  { return "lw" }
func (Lbu) Mnemonic() string { return "lbu" }
func (Lhu) Mnemonic() string { return "lhu" }
func (Sb) Mnemonic() string  { return "sb" }
func (Sh) Mnemonic() string  { return "sh" }
func (Sw) Mnemonic() string  { return "sw" }

// loadOperands returns the destination register and the memory reference.
func loadOperands(i I) []operand.Operand {
	return ops(reg(i.Rd), operand.Offset(int64(i.Imm), i.Rs1))
}

// storeOperands returns the register to store and the memory reference.
func storeOperands(s S) []operand.Operand {
	return ops(reg(s.Rs2), operand.Offset(int64(s.Imm), s.Rs1))
}

func (i Lb) Operands() []operand.Operand  { return loadOperands(I(i)) }
func (i Lh) Operands() []operand.Operand  { return loadOperands(I(i)) }
func (i Lw) Operands() []operand.Operand  { return loadOperands(I(i)) }
func (i Lbu) Operands() []operand.Operand { return loadOperands(I(i)) }
func (i Lhu) Operands() []operand.Operand { return loadOperands(I(i)) }
func (i Sb) Operands() []operand.Operand  { return storeOperands(S(i)) }
func (i Sh) Operands() []operand.Operand  { return storeOperands(S(i)) }
func (i Sw) Operands() []operand.Operand  { return storeOperands(S(i)) }
