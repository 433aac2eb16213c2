// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/alek/memory"
	"github.com/ezrec/alek/transcode"
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%d", memory.SIZE),
	"WORD_MAX":    fmt.Sprintf("%d", memory.WORD_MAX),
	"FLAG_LT":     fmt.Sprintf("%d", FLAG_LT),
	"FLAG_GT":     fmt.Sprintf("%d", FLAG_GT),
	"FLAG_EQ":     fmt.Sprintf("%d", FLAG_EQ),
	"PREFIX_BITS": fmt.Sprintf("%d", PREFIX_BITS),
	"PREFIX_TEST": fmt.Sprintf("%d", PREFIX_TEST),
}

// Cpu is the simulation context for the decimal processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   *memory.Memory // Memory and address translator.
	Register RegisterFile   // Register bank, including IP, SP and FLAGS.
	State    State          // Run state.
	Fault    error          // Why the CPU entered STATE_ERROR.

	Ticks int // Instructions executed since reset.

	fetchIp Word        // Address of the fetched instruction.
	inst    Instruction // Fetched instruction.
	dirty   int         // Physical address written by the last execute, or -1.
}

// NewCpu creates an idle CPU attached to a memory.
func NewCpu(mem *memory.Memory) (cpu *Cpu) {
	if mem == nil {
		mem = memory.NewMemory()
	}

	cpu = &Cpu{
		Memory: mem,
		dirty:  -1,
	}
	cpu.Register.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("% 6s: %v\n", "state", cpu.State)
	for reg := range Register(REG_COUNT) {
		var strval string
		switch reg {
		case REG_FLAGS:
			flags := Flags(cpu.Register.Get(reg))
			strval = fmt.Sprintf("%03d %v", flags, flags)
		default:
			strval = fmt.Sprintf("%03d", cpu.Register.Get(reg))
		}
		text += fmt.Sprintf("% 6s: %v\n", reg, strval)
	}

	return
}

// Ip returns the instruction pointer.
func (cpu *Cpu) Ip() Word {
	return cpu.Register.Get(REG_IP)
}

// Flags returns the comparison flags.
func (cpu *Cpu) Flags() Flags {
	return Flags(cpu.Register.Get(REG_FLAGS))
}

// Instruction returns the last fetched instruction and its address.
func (cpu *Cpu) Instruction() (addr Word, inst Instruction) {
	return cpu.fetchIp, cpu.inst
}

// Dirty returns the physical memory address written by a destination
// operand during the last execute.
func (cpu *Cpu) Dirty() (addr Word, ok bool) {
	if cpu.dirty < 0 {
		return
	}
	return Word(cpu.dirty), true
}

// Reset the CPU state.
// - Clears the registers, sets FLAGS to equal and VER to the version.
// - IP is 0.
// - Zeros statistics counters.
// - State becomes running.
// Memory is not cleared.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Ticks = 0
	cpu.Fault = nil
	cpu.dirty = -1
	cpu.fetchIp = 0
	cpu.inst = Instruction{}
	cpu.State = STATE_RUNNING
}

// Fetch the instruction at IP into the opcode buffer, and advance IP past
// the decoded instruction length.
func (cpu *Cpu) Fetch() {
	ip := cpu.Ip()

	var words [FETCH_SIZE]Word
	for n := range words {
		words[n] = cpu.Memory.Read(memory.Wrap(int(ip) + n))
	}

	cpu.fetchIp = ip
	cpu.inst = Decode(words)
	cpu.Register.Set(REG_IP, memory.Wrap(int(ip)+cpu.inst.Length))
}

// Tick performs a fetch and execute cycle.
func (cpu *Cpu) Tick() (err error) {
	if cpu.State != STATE_RUNNING {
		err = ErrNotRunning
		return
	}

	cpu.Fetch()
	cpu.Execute()

	if cpu.State == STATE_ERROR {
		err = cpu.Fault
	}

	return
}

// fault moves the CPU to the error state.
func (cpu *Cpu) fault(err error) {
	words := slices.Clone(cpu.inst.Words[:max(cpu.inst.Length, cpu.inst.operandStart())])
	cpu.Fault = fmt.Errorf("%w: %w", ErrOpcode{Addr: cpu.fetchIp, Words: words}, err)
	cpu.State = STATE_ERROR

	if cpu.Verbose {
		log.Printf("cpu: error at %03d: %v", cpu.fetchIp, err)
	}
}

// Execute the fetched instruction. Does nothing unless running.
func (cpu *Cpu) Execute() {
	if cpu.State != STATE_RUNNING {
		return
	}

	inst := cpu.inst
	cpu.dirty = -1

	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.fetchIp, inst)
	}

	ops := &operands{cpu: cpu, words: &inst.Words, next: inst.operandStart()}

	switch inst.Op {
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV:
		dst := ops.resolve(inst.Dst)
		d := cpu.read(dst)
		s := ops.source(inst.Src)
		var value int
		switch inst.Op {
		case OP_ADD:
			value = int(d) + int(s)
		case OP_SUB:
			value = int(d) - int(s)
		case OP_MUL:
			value = int(d) * int(s)
		case OP_DIV:
			if s == 0 {
				cpu.fault(ErrDivideByZero)
				return
			}
			value = int(d) / int(s)
		}
		cpu.write(dst, memory.Wrap(value))
	case OP_INC, OP_DEC, OP_NEG:
		dst := ops.resolve(inst.Dst)
		d := int(cpu.read(dst))
		switch inst.Op {
		case OP_INC:
			d++
		case OP_DEC:
			d--
		case OP_NEG:
			d = -d
		}
		cpu.write(dst, memory.Wrap(d))
	case OP_MOV:
		s := ops.source(inst.Src)
		cpu.write(ops.resolve(inst.Dst), s)
	case OP_MOVZ:
		cpu.write(ops.resolve(inst.Dst), 0)
	case OP_CMP:
		d := cpu.read(ops.resolve(inst.Dst))
		s := ops.source(inst.Src)
		cpu.setFlags(Compare(d, s))
	case OP_CMPZ:
		cpu.setFlags(CompareZero(ops.source(inst.Src)))
	case OP_JMP:
		if cpu.Flags().Match(inst.Cond) {
			cpu.Register.Set(REG_IP, ops.source(inst.Src))
		}
	case OP_RETCC:
		if cpu.Flags().Match(inst.Cond) {
			cpu.Register.Set(REG_IP, cpu.pop())
		}
	case OP_PUSH:
		cpu.push(ops.source(inst.Src))
	case OP_PUSHZ:
		cpu.push(0)
	case OP_POP:
		value := cpu.pop()
		cpu.write(ops.resolve(inst.Dst), value)
	case OP_CALL:
		cpu.push(cpu.Ip())
		cpu.Register.Set(REG_IP, ops.source(inst.Src))
	case OP_RET:
		cpu.Register.Set(REG_IP, cpu.pop())
	case OP_OR, OP_XOR, OP_AND, OP_CLR:
		dst := ops.resolve(inst.Dst)
		d := cpu.read(dst)
		s := ops.source(inst.Src)
		cpu.write(dst, transcode.Apply(d, s, bitOps[inst.Op]))
	case OP_NOT:
		dst := ops.resolve(inst.Dst)
		d := cpu.read(dst)
		cpu.write(dst, transcode.FromBits(transcode.ToBits(d)^transcode.MASK))
	case OP_SHL, OP_SHR:
		dst := ops.resolve(inst.Dst)
		d := transcode.ToBits(cpu.read(dst))
		s := ops.source(inst.Src) % 10
		if inst.Op == OP_SHL {
			d <<= s
		} else {
			d >>= s
		}
		cpu.write(dst, transcode.FromBits(d&transcode.MASK))
	case OP_TSTM:
		d := cpu.read(ops.resolve(inst.Dst))
		s := ops.source(inst.Src)
		d = transcode.Apply(d, s, bitOps[OP_AND])
		cpu.setFlags(BitTest(d, s))
	case OP_TST:
		d := cpu.read(ops.resolve(inst.Dst))
		cpu.setFlags(BitTest(d, transcode.PROBE))
	case OP_CTB:
		dst := ops.resolve(inst.Dst)
		cpu.write(dst, Word(transcode.ToBits(cpu.read(dst))))
	case OP_CTD:
		dst := ops.resolve(inst.Dst)
		cpu.write(dst, transcode.FromBits(uint16(cpu.read(dst))))
	case OP_NOP:
		// pass
	case OP_HLT:
		cpu.State = STATE_IDLE
	case OP_LEA, OP_SI, OP_SO, OP_PEA, OP_RI, OP_RO, OP_POPM, OP_PUSHM,
		OP_LIB, OP_WAIT, OP_SYS, OP_IN, OP_OUT, OP_OUTZ, OP_SETCC,
		OP_SHL1, OP_SHR1, OP_SCAN, OP_LEN, OP_CNT, OP_ROL, OP_ROR,
		OP_ROXL, OP_ROXR, OP_CLRXCC:
		cpu.fault(ErrOpcodeReserved)
		return
	default:
		cpu.fault(ErrOpcodeInvalid)
		return
	}

	cpu.Ticks++
}

var bitOps = map[Op]func(d, s uint16) uint16{
	OP_OR:  func(d, s uint16) uint16 { return d | s },
	OP_XOR: func(d, s uint16) uint16 { return d ^ s },
	OP_AND: func(d, s uint16) uint16 { return d & s },
	OP_CLR: func(d, s uint16) uint16 { return d &^ s },
}

func (cpu *Cpu) setFlags(flags Flags) {
	cpu.Register.Set(REG_FLAGS, Word(flags))
}
