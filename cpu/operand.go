package cpu

// location is a resolved operand: a register, or a memory cell.
type location struct {
	memory bool
	reg    Register
	addr   Word
}

// operands consumes operand words from the fetch buffer in the order the
// instruction resolves them.
type operands struct {
	cpu   *Cpu
	words *[FETCH_SIZE]Word
	next  int
}

func (ops *operands) word() (value Word) {
	value = ops.words[ops.next%FETCH_SIZE]
	ops.next++
	return
}

// resolve a destination mode. Mode 0 is the SP register.
func (ops *operands) resolve(mode Mode) (loc location) {
	switch {
	case mode < MODE_INDIRECT:
		loc.reg = Register(mode)
	case mode < MODE_EXTENDED:
		loc.memory = true
		loc.addr = ops.cpu.Register.Get(Register(mode - MODE_INDIRECT + 1))
	default:
		loc.memory = true
		loc.addr = ops.word()
	}

	return
}

// source reads a source mode. Mode 0 is an immediate word.
func (ops *operands) source(mode Mode) Word {
	if mode == MODE_IMMEDIATE {
		return ops.word()
	}
	return ops.cpu.read(ops.resolve(mode))
}

func (cpu *Cpu) read(loc location) Word {
	if loc.memory {
		return cpu.Memory.Read(loc.addr)
	}
	return cpu.Register.Get(loc.reg)
}

func (cpu *Cpu) write(loc location, value Word) {
	if loc.memory {
		cpu.dirty = int(cpu.Memory.Write(loc.addr, value))
		return
	}
	cpu.Register.Set(loc.reg, value)
}
