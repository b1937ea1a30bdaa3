package rv32i

import "github.com/retroenv/rvdisasm/operand"

// Add is add.
type Add R

// Sub is subtract.
type Sub R

// Sll is shift left logical.
type Sll R

// Slt is set if less than, signed.
type Slt R

// Sltu is set if less than, unsigned.
type Sltu R

// Xor is exclusive or.
type Xor R

// Srl is shift right logical.
type Srl R

// Sra is shift right arithmetic.
type Sra R

// Or is or.
type Or R

// And is and.
type And R

// Compile-time checks to ensure the types implement Instruction.
var (
	_ Instruction = Add{}
	_ Instruction = Sub{}
	_ Instruction = Sll{}
	_ Instruction = Slt{}
	_ Instruction = Sltu{}
	_ Instruction = Xor{}
	_ Instruction = Srl{}
	_ Instruction = Sra{}
	_ Instruction = Or{}
	_ Instruction = And{}
)

func (Add) rv32i()  {}
func (Sub) rv32i()  {}
func (Sll) rv32i()  {}
func (Slt) rv32i()  {}
func (Sltu) rv32i() {}
func (Xor) rv32i()  {}
func (Srl) rv32i()  {}
func (Sra) rv32i()  {}
func (Or) rv32i()   {}
func (And) rv32i()  {}

func (Add) Opcode() Opcode  { return OpAdd }
func (Sub) Opcode() Opcode  { return OpSub }
func (Sll) Opcode() Opcode  { return OpSll }
func (Slt) Opcode() Opcode  { return OpSlt }
func (Sltu) Opcode() Opcode { return OpSltu }
func (Xor) Opcode() Opcode  { return OpXor }
func (Srl) Opcode() Opcode  { return OpSrl }
func (Sra) Opcode() Opcode  { return OpSra }
func (Or) Opcode() Opcode   { return OpOr }
func (And) Opcode() Opcode  { return OpAnd }

func (Add) Name() string  { return OpAdd.String() }
func (Sub) Name() string  { return OpSub.String() }
func (Sll) Name() string  { return OpSll.String() }
func (Slt) Name() string  { return OpSlt.String() }
func (Sltu) Name() string { return OpSltu.String() }
func (Xor) Name() string  { return OpXor.String() }
func (Srl) Name() string  { return OpSrl.String() }
func (Sra) Name() string  { return OpSra.String() }
func (Or) Name() string   { return OpOr.String() }
func (And) Name() string  { return OpAnd.String() }

func (Add) Mnemonic() string  { return "add" }
func (Sub) Mnemonic() string  { return "sub" }
func (Sll) Mnemonic() string  { return "sll" }
func (Slt) Mnemonic() string  { return "slt" }
func (Sltu) Mnemonic() string { return "sltu" }
func (Xor) Mnemonic() string  { return "xor" }
func (Srl) Mnemonic() string  { return "srl" }
func (Sra) Mnemonic() string  { return "sra" }
func (Or) Mnemonic() string   { return "or" }
func (And) Mnemonic() string  { return "and" }

func registerOperands(r R) []operand.Operand {
	return ops(reg(r.Rd), reg(r.Rs1), reg(r.Rs2))
}

func (i Add) Operands() []operand.Operand  { return registerOperands(R(i)) }
func (i Sub) Operands() []operand.Operand  { return registerOperands(R(i)) }
func (i Sll) Operands() []operand.Operand  { return registerOperands(R(i)) }
func (i Slt) Operands() []operand.Operand  { return registerOperands(R(i)) }
func (i Sltu) Operands() []operand.Operand { return registerOperands(R(i)) }
func (i Xor) Operands() []operand.Operand  { return registerOperands(R(i)) }
func (i Srl) Operands() []operand.Operand  { return registerOperands(R(i)) }
func (i Sra) Operands() []operand.Operand  { return registerOperands(R(i)) }
func (i Or) Operands() []operand.Operand   { return registerOperands(R(i)) }
func (i And) Operands() []operand.Operand  { return registerOperands(R(i)) }
