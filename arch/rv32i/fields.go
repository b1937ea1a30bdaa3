package rv32i

import (
	"errors"
	"fmt"
)

// ErrUnknownOpcode is returned for an opcode that is not an RV32I opcode class.
var ErrUnknownOpcode = errors.New("unknown opcode")

// Fields contains the decoded fields of any instruction format. Fields that
// are not part of the format of an opcode class are ignored.
type Fields struct {
	Rd    uint8
	Rs1   uint8
	Rs2   uint8
	Imm   int32 // sign extended, upper immediates in their encoded bit position
	Shamt uint8
}

// New returns the instruction of the given opcode class, built from the
// decoded fields.
func New(op Opcode, f Fields) (Instruction, error) {
	u := U{Rd: f.Rd, Imm: f.Imm}
	i := I{Rd: f.Rd, Rs1: f.Rs1, Imm: f.Imm}
	b := B{Rs1: f.Rs1, Rs2: f.Rs2, Imm: f.Imm}
	s := S{Rs1: f.Rs1, Rs2: f.Rs2, Imm: f.Imm}
	sh := Shift{Rd: f.Rd, Rs1: f.Rs1, Shamt: f.Shamt}
	r := R{Rd: f.Rd, Rs1: f.Rs1, Rs2: f.Rs2}

	switch op {
	case OpLui:
		return Lui(u), nil
	case OpAuiPc:
		return AuiPc(u), nil
	case OpJal:
		return Jal{Rd: f.Rd, Imm: f.Imm}, nil
	case OpJalR:
		return JalR(i), nil

	case OpBeq:
		return Beq(b), nil
	case OpBne:
		return Bne(b), nil
	case OpBlt:
		return Blt(b), nil
	case OpBge:
		return Bge(b), nil
	case OpBltu:
		return Bltu(b), nil
	case OpBgeu:
		return Bgeu(b), nil

	case OpLb:
		return Lb(i), nil
	case OpLh:
		return Lh(i), nil
	case OpLw:
		return Lw(i), nil
	case OpLbu:
		return Lbu(i), nil
	case OpLhu:
		return Lhu(i), nil
	case OpSb:
		return Sb(s), nil
	case OpSh:
		return Sh(s), nil
	case OpSw:
		return Sw(s), nil

	case OpAddi:
		return Addi(i), nil
	case OpSlti:
		return Slti(i), nil
	case OpSltiu:
		return Sltiu(i), nil
	case OpXori:
		return Xori(i), nil
	case OpOri:
		return Ori(i), nil
	case OpAndi:
		return Andi(i), nil
	case OpSlli:
		return Slli(sh), nil
	case OpSrli:
		return Srli(sh), nil
	case OpSrai:
		return Srai(sh), nil

	case OpAdd:
		return Add(r), nil
	case OpSub:
		return Sub(r), nil
	case OpSll:
		return Sll(r), nil
	case OpSlt:
		return Slt(r), nil
	case OpSltu:
		return Sltu(r), nil
	case OpXor:
		return Xor(r), nil
	case OpSrl:
		return Srl(r), nil
	case OpSra:
		return Sra(r), nil
	case OpOr:
		return Or(r), nil
	case OpAnd:
		return And(r), nil

	case OpFence:
		return Fence{}, nil
	case OpFenceTso:
		return FenceTso{}, nil
	case OpPause:
		return Pause{}, nil
	case OpECall:
		return ECall{}, nil
	case OpEBreak:
		return EBreak{}, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownOpcode, int(op))
	}
}
