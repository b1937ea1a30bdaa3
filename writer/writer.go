// Package writer implements writing of rendered instructions as an assembly
// listing.
package writer

import (
	"fmt"
	"io"
	"slices"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
	"github.com/retroenv/rvdisasm/instruction"
	"github.com/retroenv/rvdisasm/operand"
	"github.com/retroenv/rvdisasm/options"
)

// Line is an instruction at an address.
type Line struct {
	Address     uint32
	Instruction instruction.Instruction
}

// Options of the writer.
type Options struct {
	Format          options.Format
	AddressComments bool              // append the instruction address as comment
	Labels          map[uint32]string // labels by address, used for label lines and relative targets
}

// NewOptions returns the default writer options.
func NewOptions() Options {
	return Options{
		Format:          options.NewFormat(),
		AddressComments: true,
	}
}

// Writer writes rendered instructions to an io.Writer.
type Writer struct {
	logger  *log.Logger
	options Options
	writer  io.Writer

	linesWritten  int
	missingLabels set.Set[uint32] // relative targets that were referenced without a label
	missingOrder  []uint32
}

// New creates a new writer.
func New(logger *log.Logger, writer io.Writer, options Options) *Writer {
	return &Writer{
		logger:        logger,
		options:       options,
		writer:        writer,
		missingLabels: set.New[uint32](),
	}
}

// WriteListing writes all lines in order and stops at the first error.
func (w *Writer) WriteListing(lines []Line) error {
	for _, line := range lines {
		if err := w.WriteInstruction(line.Address, line.Instruction); err != nil {
			return fmt.Errorf("writing instruction at $%08X: %w", line.Address, err)
		}
	}
	return nil
}

// WriteInstruction writes the label of the address if one exists, followed by
// the rendered instruction.
func (w *Writer) WriteInstruction(address uint32, ins instruction.Instruction) error {
	if err := w.writeLabel(address); err != nil {
		return err
	}

	canonical := instruction.Canonicalize(ins)
	if instruction.IsAlias(ins) {
		w.logger.Debug("Pseudo-instruction",
			log.String("address", fmt.Sprintf("0x%08X", address)),
			log.String("instruction", ins.Name()),
			log.String("mnemonic", canonical.Mnemonic))
	}

	if relative, ok := ins.(instruction.Relative); ok {
		w.resolveTarget(address, relative, &canonical)
	}

	if err := w.writeCodeLine(address, canonical.Format(w.options.Format)); err != nil {
		return err
	}
	w.linesWritten++
	return nil
}

// MissingLabels returns the sorted addresses of all relative targets that were
// referenced but had no label.
func (w *Writer) MissingLabels() []uint32 {
	addresses := slices.Clone(w.missingOrder)
	slices.Sort(addresses)
	return addresses
}

// resolveTarget replaces the target immediate of a relative instruction by
// the label of the target address.
func (w *Writer) resolveTarget(address uint32, relative instruction.Relative, canonical *instruction.Canonical) {
	target := uint32(int64(address) + relative.Offset())

	name, ok := w.options.Labels[target]
	if !ok {
		if !w.missingLabels.Contains(target) {
			w.missingLabels.Add(target)
			w.missingOrder = append(w.missingOrder, target)
		}
		return
	}

	last := len(canonical.Operands) - 1
	if last < 0 {
		return
	}
	if _, ok := canonical.Operands[last].(operand.Immediate); !ok {
		return
	}

	canonical.Operands[last] = operand.Label(name)
	w.logger.Debug("Relative target",
		log.String("address", fmt.Sprintf("0x%08X", address)),
		log.String("target", fmt.Sprintf("0x%08X", target)),
		log.String("label", name))
}

func (w *Writer) writeLabel(address uint32) error {
	name, ok := w.options.Labels[address]
	if !ok {
		return nil
	}

	if w.linesWritten > 0 {
		if _, err := fmt.Fprintln(w.writer); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w.writer, "%s:\n", name); err != nil {
		return fmt.Errorf("writing label: %w", err)
	}
	return nil
}

func (w *Writer) writeCodeLine(address uint32, code string) error {
	if !w.options.AddressComments {
		if _, err := fmt.Fprintf(w.writer, "  %s\n", code); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(w.writer, "  %-30s ; $%08X\n", code, address); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}
