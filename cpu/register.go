package cpu

import (
	"github.com/ezrec/alek/memory"
)

// Register is an index into the register file.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_SP    = Register(0)  // SP
	REG_R1    = Register(1)  // R1
	REG_R2    = Register(2)  // R2
	REG_R3    = Register(3)  // R3
	REG_R4    = Register(4)  // R4
	REG_R5    = Register(5)  // R5
	REG_R6    = Register(6)  // R6
	REG_R7    = Register(7)  // R7
	REG_R8    = Register(8)  // R8
	REG_IP    = Register(9)  // IP
	REG_ZERO  = Register(10) // ZERO
	REG_FLAGS = Register(11) // FLAGS
	REG_RAND  = Register(12) // RAND
	REG_CLK   = Register(13) // CLK
	REG_VER   = Register(14) // VER
	REG_REM   = Register(15) // REM
	REG_MHI   = Register(16) // MHI
	REG_DHI   = Register(17) // DHI
	REG_T1    = Register(18) // T1
	REG_T2    = Register(19) // T2

	REG_COUNT = 20 // Size of the register file.
)

const VERSION = Word(1) // Value of REG_VER after reset.

// RegisterFile holds the register values. REG_ZERO always reads as 0.
type RegisterFile [REG_COUNT]Word

// Get a register value.
func (rf *RegisterFile) Get(reg Register) Word {
	if reg == REG_ZERO {
		return 0
	}
	return rf[reg]
}

// Set a register value, modulo 1000. Writes to REG_ZERO are discarded.
func (rf *RegisterFile) Set(reg Register, value Word) {
	if reg == REG_ZERO {
		return
	}
	rf[reg] = value % memory.SIZE
}

// Reset all registers to their power-on values.
func (rf *RegisterFile) Reset() {
	clear(rf[:])
	rf[REG_FLAGS] = Word(FLAG_EQ)
	rf[REG_VER] = VERSION
}

// Flags is the comparison result mask, also used as a condition mask.
type Flags Word

const (
	FLAG_LT = Flags(1) // Less than.
	FLAG_GT = Flags(2) // Greater than.
	FLAG_EQ = Flags(4) // Equal to.

	FLAG_NE     = FLAG_LT | FLAG_GT
	FLAG_LE     = FLAG_LT | FLAG_EQ
	FLAG_GE     = FLAG_GT | FLAG_EQ
	FLAG_ALWAYS = FLAG_LT | FLAG_GT | FLAG_EQ
)

// Compare d against s, unsigned.
func Compare(d, s Word) Flags {
	switch {
	case d < s:
		return FLAG_LT
	case d > s:
		return FLAG_GT
	}
	return FLAG_EQ
}

// CompareZero classifies s as a base-1000 complement number: 500..999 are
// negative.
func CompareZero(s Word) Flags {
	switch {
	case s >= 500:
		return FLAG_LT
	case s >= 1:
		return FLAG_GT
	}
	return FLAG_EQ
}

// BitTest classifies a masked value against its probe: none of the bits
// is LT, all of the bits is GT, some of the bits is EQ.
func BitTest(d, probe Word) Flags {
	switch {
	case d == 0:
		return FLAG_LT
	case d == probe:
		return FLAG_GT
	}
	return FLAG_EQ
}

// Match is true if any flag of the condition mask is set.
func (f Flags) Match(cond Flags) bool {
	return f&cond != 0
}

// String returns the comparison symbol.
func (f Flags) String() string {
	switch f {
	case FLAG_LT:
		return "<"
	case FLAG_GT:
		return ">"
	case FLAG_EQ:
		return "="
	}
	return "?"
}
