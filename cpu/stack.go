package cpu

import (
	"github.com/ezrec/alek/memory"
)

// The stack lives in main memory and grows downward from SP. After reset
// SP is 0, so the first push stores to address 999.

// push decrements SP, then stores.
func (cpu *Cpu) push(value Word) {
	sp := memory.Wrap(int(cpu.Register.Get(REG_SP)) - 1)
	cpu.Memory.Write(sp, value)
	cpu.Register.Set(REG_SP, sp)
}

// pop loads, then increments SP.
func (cpu *Cpu) pop() (value Word) {
	sp := cpu.Register.Get(REG_SP)
	value = cpu.Memory.Read(sp)
	cpu.Register.Set(REG_SP, memory.Wrap(int(sp)+1))
	return
}

// Peek returns the value at the top of the stack.
func (cpu *Cpu) Peek() Word {
	return cpu.Memory.Read(cpu.Register.Get(REG_SP))
}

// Stack returns the top depth stack entries, top first.
func (cpu *Cpu) Stack(depth int) []Word {
	return cpu.Memory.Slice(cpu.Register.Get(REG_SP), depth)
}
