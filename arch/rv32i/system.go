package rv32i

import "github.com/retroenv/rvdisasm/operand"

// Fence is a memory ordering fence. The predecessor and successor sets are
// not printed.
type Fence struct{}

// FenceTso is a fence with total store ordering.
type FenceTso struct{}

// Pause is the spin loop hint.
type Pause struct{}

// ECall is the environment call.
type ECall struct{}

// EBreak is the environment breakpoint.
type EBreak struct{}

// Compile-time checks to ensure the types implement Instruction.
var (
	_ Instruction = Fence{}
	_ Instruction = FenceTso{}
	_ Instruction = Pause{}
	_ Instruction = ECall{}
	_ Instruction = EBreak{}
)

func (Fence) rv32i()    {}
func (FenceTso) rv32i() {}
func (Pause) rv32i()    {}
func (ECall) rv32i()    {}
func (EBreak) rv32i()   {}

func (Fence) Opcode() Opcode    { return OpFence }
func (FenceTso) Opcode() Opcode { return OpFenceTso }
func (Pause) Opcode() Opcode    { return OpPause }
func (ECall) Opcode() Opcode    { return OpECall }
func (EBreak) Opcode() Opcode   { return OpEBreak }

func (Fence) Name() string    { return OpFence.String() }
func (FenceTso) Name() string { return OpFenceTso.String() }
func (Pause) Name() string    { return OpPause.String() }
func (ECall) Name() string    { return OpECall.String() }
func (EBreak) Name() string   { return OpEBreak.String() }

func (Fence) Mnemonic() string    { return "fence" }
func (FenceTso) Mnemonic() string { return "fence.tso" }
func (Pause) Mnemonic() string    { return "pause" }
func (ECall) Mnemonic() string    { return "ecall" }
func (EBreak) Mnemonic() string   { return "ebreak" }

func (Fence) Operands() []operand.Operand    { return nil }
func (FenceTso) Operands() []operand.Operand { return nil }
func (Pause) Operands() []operand.Operand    { return nil }
func (ECall) Operands() []operand.Operand    { return nil }
func (EBreak) Operands() []operand.Operand   { return nil }
