// Package options contains the formatting options of the assembly renderer.
package options

// ImmediateFormat selects the number base used to print immediate values.
type ImmediateFormat int

// Immediate formats.
const (
	Hex             ImmediateFormat = iota // 0x prefixed lowercase hex of the two's complement bit pattern
	SignedDecimal                          // decimal with a minus sign for negative values
	UnsignedDecimal                        // decimal of the value reinterpreted as uint64
	Binary                                 // 0b prefixed binary of the two's complement bit pattern
)

func (f ImmediateFormat) String() string {
	switch f {
	case Hex:
		return "hex"
	case SignedDecimal:
		return "signed"
	case UnsignedDecimal:
		return "unsigned"
	case Binary:
		return "binary"
	default:
		return "unknown"
	}
}

// RegisterNaming selects how register references are printed.
type RegisterNaming int

// Register naming policies.
const (
	ABINames RegisterNaming = iota // calling convention aliases like zero, ra, sp, a0
	RawNames                       // positional names x0..x31
)

func (n RegisterNaming) String() string {
	switch n {
	case ABINames:
		return "abi"
	case RawNames:
		return "raw"
	default:
		return "unknown"
	}
}

// Format defines how a rendered instruction is laid out.
// It is a plain value that is copied into every render call and never modified
// by the renderer, so it can be shared between goroutines.
type Format struct {
	VerbArgSpacing string // separator between the mnemonic and the first operand
	ArgSpacing     string // whitespace following the comma between operands

	Immediate ImmediateFormat
	Registers RegisterNaming
}

// NewFormat returns the default format: tab after the mnemonic, no spacing
// between operands, hex immediates and ABI register names.
func NewFormat() Format {
	return Format{
		VerbArgSpacing: "\t",
		ArgSpacing:     "",
		Immediate:      Hex,
		Registers:      ABINames,
	}
}

// WithImmediate returns a copy of the format using the given immediate format.
func (f Format) WithImmediate(immediate ImmediateFormat) Format {
	f.Immediate = immediate
	return f
}

// WithRegisters returns a copy of the format using the given register naming.
func (f Format) WithRegisters(naming RegisterNaming) Format {
	f.Registers = naming
	return f
}

// WithSpacing returns a copy of the format using the given separators.
func (f Format) WithSpacing(verbArg, arg string) Format {
	f.VerbArgSpacing = verbArg
	f.ArgSpacing = arg
	return f
}
