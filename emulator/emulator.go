// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator combines the processor, its memory and the text window
// into a machine that loads and runs programs.
package emulator

import (
	"context"
	"io"
	"iter"

	"github.com/ezrec/alek/charset"
	"github.com/ezrec/alek/cpu"
	"github.com/ezrec/alek/internal"
	"github.com/ezrec/alek/video"
)

const (
	LOAD_CLEAR = 100    // Cells cleared from address 0 before a load.
	TICK_LIMIT = 100000 // Default instruction budget of a run.
)

// Emulator state. CPU + memory + text window.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the loaded program listing.
	Video    *video.Text  // Text window over memory.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(nil),
		Program: &cpu.Program{},
		Video:   video.NewText(),
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.MergeDefines(
		emu.Cpu.Defines(),
		emu.Video.Defines(),
	)
}

// Assemble a program, with the emulator defines as equates.
func (emu *Emulator) Assemble(input io.Reader) (prog *cpu.Program, err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	return asm.Parse(input)
}

// Reset the CPU and clear the text window. The CPU is left running.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Video.Clear(emu.Memory)
}

// Load a memory image at address 0, and reset.
func (emu *Emulator) Load(words []cpu.Word) {
	emu.Program = &cpu.Program{}
	emu.Memory.Clear(0, LOAD_CLEAR)
	emu.Memory.Load(0, words)
	emu.Reset()
}

// LoadProgram loads an assembled program, and resets.
func (emu *Emulator) LoadProgram(prog *cpu.Program) {
	emu.Program = prog
	emu.Memory.Clear(0, LOAD_CLEAR)
	for _, op := range prog.Opcodes {
		emu.Memory.Load(op.Addr, op.Codes)
	}
	emu.Reset()
}

// ClearMemory zeroes the logical range [from, to).
func (emu *Emulator) ClearMemory(from, to int) {
	emu.Memory.Clear(from, to)
}

// SetMemoryText stores editor text into a memory cell.
func (emu *Emulator) SetMemoryText(addr cpu.Word, text string) {
	emu.Memory.Write(addr, charset.ParseCell(text))
}

// SetRegisterText stores editor text into a register.
func (emu *Emulator) SetRegisterText(reg cpu.Register, text string) {
	emu.Register.Set(reg, charset.ParseNumber(text))
}

// Screen returns the rows of the text window.
func (emu *Emulator) Screen() []string {
	return emu.Video.Lines(emu.Memory)
}

// lineAt returns the line number of the listing at an address.
func (emu *Emulator) lineAt(addr cpu.Word) int {
	dbg := emu.Program.Debug(addr)
	if dbg.Opcode == nil {
		return 0
	}
	return dbg.LineNo
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	return emu.lineAt(emu.Ip())
}

// Tick performs a single tick of the emulator. It is done when the CPU is
// no longer running.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	addr := emu.Ip()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Addr: addr, LineNo: emu.lineAt(addr), Err: err}
		}
	}()

	switch emu.State {
	case cpu.STATE_RUNNING:
	case cpu.STATE_ERROR:
		addr, _ = emu.Instruction()
		done = true
		err = emu.Fault
		return
	default:
		done = true
		return
	}

	err = emu.Cpu.Tick()
	done = emu.State != cpu.STATE_RUNNING

	return
}

// Run ticks until the CPU stops, or limit instructions run.
func (emu *Emulator) Run(limit int) (err error) {
	return emu.RunContext(context.Background(), limit)
}

// RunContext ticks until the CPU stops, limit instructions run, or the
// context is done.
func (emu *Emulator) RunContext(ctx context.Context, limit int) (err error) {
	for n := 0; ; n++ {
		if n%256 == 0 {
			err = ctx.Err()
			if err != nil {
				return
			}
		}
		if n >= limit && emu.State == cpu.STATE_RUNNING {
			err = ErrTickLimit(limit)
			return
		}

		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}
}
