// Package register contains the RV32I integer register set and its naming.
package register

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/rvdisasm/options"
)

// Register is an integer register x0..x31 or the program counter.
// Values outside of this set can only be created by a conversion, which is
// rejected by New.
type Register uint8

// General purpose registers, named by position. The ABI names are listed in
// the comments.
const (
	X0  Register = iota // zero
	X1                  // ra
	X2                  // sp
	X3                  // gp
	X4                  // tp
	X5                  // t0
	X6                  // t1
	X7                  // t2
	X8                  // s0, fp
	X9                  // s1
	X10                 // a0
	X11                 // a1
	X12                 // a2
	X13                 // a3
	X14                 // a4
	X15                 // a5
	X16                 // a6
	X17                 // a7
	X18                 // s2
	X19                 // s3
	X20                 // s4
	X21                 // s5
	X22                 // s6
	X23                 // s7
	X24                 // s8
	X25                 // s9
	X26                 // s10
	X27                 // s11
	X28                 // t3
	X29                 // t4
	X30                 // t5
	X31                 // t6

	PC // program counter
)

// Count is the number of general purpose registers.
const Count = 32

// Well known registers of the calling convention.
const (
	Zero = X0
	RA   = X1
	SP   = X2
)

// ErrInvalidIndex is returned for a register index outside of 0..31.
var ErrInvalidIndex = errors.New("invalid register index")

var abiNames = [Count]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// alternative names that are accepted by Parse but never printed.
var aliases = map[string]Register{
	"fp": X8,
}

// New converts a raw register index as found in an instruction field to a
// register.
func New(index uint8) (Register, error) {
	if index >= Count {
		return 0, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	return Register(index), nil
}

// MustNew converts a raw register index to a register and panics if the index
// is out of range. Instruction fields are 5 bits wide, an out of range index
// means that the decoder producing the field is broken.
func MustNew(index uint8) Register {
	reg, err := New(index)
	if err != nil {
		panic(fmt.Sprintf("register field out of range: %s", err))
	}
	return reg
}

// Name returns the display name of the register for the given naming policy.
func (r Register) Name(naming options.RegisterNaming) string {
	if r == PC {
		return "pc"
	}
	if r >= Count {
		panic(fmt.Sprintf("register value out of range: %d", uint8(r)))
	}
	if naming == options.RawNames {
		return "x" + strconv.Itoa(int(r))
	}
	return abiNames[r]
}

// String returns the ABI name of the register.
func (r Register) String() string {
	return r.Name(options.ABINames)
}

// Parse returns the register for a raw name like x10, an ABI name like a0,
// the fp alias or pc.
func Parse(name string) (Register, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "pc" {
		return PC, nil
	}
	if reg, ok := aliases[name]; ok {
		return reg, nil
	}

	if index, ok := strings.CutPrefix(name, "x"); ok {
		i, err := strconv.ParseUint(index, 10, 8)
		if err == nil {
			return New(uint8(i))
		}
	}

	for i, abi := range abiNames {
		if abi == name {
			return Register(i), nil
		}
	}
	return 0, fmt.Errorf("unknown register name '%s'", name)
}
