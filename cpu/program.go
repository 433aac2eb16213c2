package cpu

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/alek/memory"
)

// Link is a label reference to patch once all labels are known.
type Link struct {
	Index int    // Index into Opcode.Codes.
	Label string // Label name.
}

// Opcode is a single assembled line.
type Opcode struct {
	LineNo int      // Source line number.
	Addr   Word     // Load address of the first code.
	Words  []string // Mnemonic and operands, after substitution.
	Codes  []Word   // Emitted words.
	Links  []Link   // Label references, resolved into Codes.
}

// String returns the listing line for the opcode.
func (op Opcode) String() string {
	var codes []string
	for _, code := range op.Codes {
		codes = append(codes, fmt.Sprintf("%03d", code))
	}

	text := op.Words[0]
	if len(op.Words) > 1 {
		text += " " + strings.Join(op.Words[1:], ", ")
	}

	return fmt.Sprintf("%03d: %-16s ; %4d: %v", op.Addr, strings.Join(codes, " "), op.LineNo, text)
}

// Program is an assembled program listing.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the word at an address within the listing.
type Debug struct {
	*Opcode
	Index int
}

// Debug returns the opcode containing the address, if any.
func (prog *Program) Debug(addr Word) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(addr) >= int(op.Addr) && int(addr) < int(op.Addr)+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(addr - op.Addr),
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program, from address 0 to the
// highest address written.
func (prog *Program) Binary() (image []Word) {
	for addr, code := range prog.Codes() {
		if int(addr) >= len(image) {
			image = append(image, make([]Word, int(addr)+1-len(image))...)
		}
		image[addr] = code % memory.SIZE
	}

	return
}

// Codes iterates over every emitted word, by address.
func (prog *Program) Codes() iter.Seq2[Word, Word] {
	return func(yield func(addr Word, code Word) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Codes {
				if !yield(op.Addr+Word(n), code) {
					return
				}
			}
		}
	}
}
