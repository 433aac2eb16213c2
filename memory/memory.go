// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the 1000 word decimal store of the ALEK
// machine, and the address translator every access is routed through.
package memory

const (
	SIZE     = 1000 // Number of cells, and number of distinct word values.
	WORD_MAX = 999  // Largest value a cell can hold.
)

// Word is a single three digit decimal cell value, 0..999.
type Word uint16

// Wrap brings any integer into the 0..999 word range, modulo 1000.
func Wrap(value int) Word {
	value %= SIZE
	if value < 0 {
		value += SIZE
	}
	return Word(value)
}

// Hundreds returns the hundreds digit.
func (w Word) Hundreds() int { return int(w) / 100 }

// Tens returns the tens digit.
func (w Word) Tens() int { return (int(w) % 100) / 10 }

// Units returns the units digit.
func (w Word) Units() int { return int(w) % 10 }

// Memory is the cell store and its logical to physical address map.
type Memory struct {
	Cell [SIZE]Word // Physical cells.
	Map  [SIZE]Word // Logical to physical address translation.
}

// NewMemory creates a cleared memory with an identity address map.
func NewMemory() (mem *Memory) {
	mem = &Memory{}
	mem.ResetMap()

	return
}

// ResetMap restores the identity address translation.
func (mem *Memory) ResetMap() {
	for n := range mem.Map {
		mem.Map[n] = Word(n)
	}
}

// Physical translates a logical address.
func (mem *Memory) Physical(addr Word) Word {
	return mem.Map[int(addr)%SIZE]
}

// Read the cell at a logical address.
func (mem *Memory) Read(addr Word) Word {
	return mem.Cell[mem.Physical(addr)]
}

// Write a cell at a logical address, returning the physical address written.
func (mem *Memory) Write(addr Word, value Word) (phys Word) {
	phys = mem.Physical(addr)
	mem.Cell[phys] = value % SIZE
	return
}

// Clear zeroes the logical range [from, to).
func (mem *Memory) Clear(from, to int) {
	for addr := from; addr < to; addr++ {
		mem.Write(Wrap(addr), 0)
	}
}

// Load writes words at consecutive logical addresses from base, wrapping
// at the end of memory.
func (mem *Memory) Load(base Word, words []Word) {
	for n, word := range words {
		mem.Write(Wrap(int(base)+n), word)
	}
}

// Slice copies out count cells starting at a logical address.
func (mem *Memory) Slice(base Word, count int) (words []Word) {
	words = make([]Word, count)
	for n := range words {
		words[n] = mem.Read(Wrap(int(base) + n))
	}

	return
}
