package rv32i

// Opcode identifies an RV32I opcode class.
type Opcode int

// Opcode classes of the RV32I base instruction set.
const (
	OpLui Opcode = iota
	OpAuiPc
	OpJal
	OpJalR
	OpBeq
	OpBne
	OpBlt
	OpBge
	OpBltu
	OpBgeu
	OpLb
	OpLh
	OpLw
	OpLbu
	OpLhu
	OpSb
	OpSh
	OpSw
	OpAddi
	OpSlti
	OpSltiu
	OpXori
	OpOri
	OpAndi
	OpSlli
	OpSrli
	OpSrai
	OpAdd
	OpSub
	OpSll
	OpSlt
	OpSltu
	OpXor
	OpSrl
	OpSra
	OpOr
	OpAnd
	OpFence
	OpFenceTso
	OpPause
	OpECall
	OpEBreak

	opcodeCount
)

var opcodeNames = [opcodeCount]string{
	OpLui:      "lui",
	OpAuiPc:    "auipc",
	OpJal:      "jal",
	OpJalR:     "jalr",
	OpBeq:      "beq",
	OpBne:      "bne",
	OpBlt:      "blt",
	OpBge:      "bge",
	OpBltu:     "bltu",
	OpBgeu:     "bgeu",
	OpLb:       "lb",
	OpLh:       "lh",
	OpLw:       "lw",
	OpLbu:      "lbu",
	OpLhu:      "lhu",
	OpSb:       "sb",
	OpSh:       "sh",
	OpSw:       "sw",
	OpAddi:     "addi",
	OpSlti:     "slti",
	OpSltiu:    "sltiu",
	OpXori:     "xori",
	OpOri:      "ori",
	OpAndi:     "andi",
	OpSlli:     "slli",
	OpSrli:     "srli",
	OpSrai:     "srai",
	OpAdd:      "add",
	OpSub:      "sub",
	OpSll:      "sll",
	OpSlt:      "slt",
	OpSltu:     "sltu",
	OpXor:      "xor",
	OpSrl:      "srl",
	OpSra:      "sra",
	OpOr:       "or",
	OpAnd:      "and",
	OpFence:    "fence",
	OpFenceTso: "fence.tso",
	OpPause:    "pause",
	OpECall:    "ecall",
	OpEBreak:   "ebreak",
}

// String returns the base mnemonic of the opcode class.
func (o Opcode) String() string {
	if o < 0 || o >= opcodeCount {
		return "unknown"
	}
	return opcodeNames[o]
}

// Opcodes returns all opcode classes in encoding table order.
func Opcodes() []Opcode {
	opcodes := make([]Opcode, 0, opcodeCount)
	for o := range opcodeCount {
		opcodes = append(opcodes, o)
	}
	return opcodes
}
