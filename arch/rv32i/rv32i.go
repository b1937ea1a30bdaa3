// Package rv32i implements the canonical assembly form of the RV32I base
// integer instruction set.
//
// Every opcode class is a distinct type that carries the already decoded
// instruction fields. The types select the mnemonic and operands that the
// reference toolchain prints, including the pseudo-instruction aliases like
// nop, li, mv, ret, j, jr, beqz or not.
//
// Register fields are 5 bit wide and must be in the range 0..31. An out of
// range register field is treated as a broken decoder and causes a panic.
package rv32i

import (
	"github.com/retroenv/rvdisasm/instruction"
	"github.com/retroenv/rvdisasm/operand"
)

// Instruction is a decoded RV32I instruction of one of the opcode class types
// of this package.
type Instruction interface {
	instruction.Instruction

	// Opcode returns the opcode class of the instruction.
	Opcode() Opcode

	rv32i()
}

// U contains the fields of the upper immediate format. Imm holds the
// immediate in its encoded position, bits 31..12, with the lower 12 bits
// being zero.
type U struct {
	Rd  uint8
	Imm int32
}

// J contains the fields of the jump format. Imm is the sign extended byte
// offset of the target.
type J struct {
	Rd  uint8
	Imm int32
}

// I contains the fields of the immediate format. Imm is the sign extended
// 12 bit immediate.
type I struct {
	Rd  uint8
	Rs1 uint8
	Imm int32
}

// B contains the fields of the branch format. Imm is the sign extended byte
// offset of the target.
type B struct {
	Rs1 uint8
	Rs2 uint8
	Imm int32
}

// S contains the fields of the store format. Imm is the sign extended 12 bit
// offset.
type S struct {
	Rs1 uint8
	Rs2 uint8
	Imm int32
}

// Shift contains the fields of the shift by immediate format.
type Shift struct {
	Rd    uint8
	Rs1   uint8
	Shamt uint8
}

// R contains the fields of the register-register format.
type R struct {
	Rd  uint8
	Rs1 uint8
	Rs2 uint8
}

// zeroRegister is the hardwired zero register x0, writes to it are discarded.
const zeroRegister = 0

// linkRegister is the return address register x1 of the calling convention.
const linkRegister = 1

func reg(index uint8) operand.Operand {
	return operand.Reg(index)
}

func imm(value int32) operand.Operand {
	return operand.Immediate(value)
}

func ops(operands ...operand.Operand) []operand.Operand {
	return operands
}
