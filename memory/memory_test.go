package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value  int
		expect Word
	}){
		{0, 0},
		{999, 999},
		{1000, 0},
		{1004, 4},
		{-1, 999},
		{-1000, 0},
		{-1001, 999},
		{999 * 999, 1},
	}

	for _, entry := range table {
		assert.Equal(entry.expect, Wrap(entry.value), "%v", entry.value)
	}
}

func TestWord_Digits(t *testing.T) {
	assert := assert.New(t)

	w := Word(591)
	assert.Equal(5, w.Hundreds())
	assert.Equal(9, w.Tens())
	assert.Equal(1, w.Units())

	w = Word(7)
	assert.Equal(0, w.Hundreds())
	assert.Equal(0, w.Tens())
	assert.Equal(7, w.Units())
}

func TestMemory_Identity(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()
	for n := range SIZE {
		assert.Equal(Word(n), mem.Physical(Word(n)))
		assert.Equal(Word(0), mem.Read(Word(n)))
	}
}

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()
	phys := mem.Write(700, 48)
	assert.Equal(Word(700), phys)
	assert.Equal(Word(48), mem.Read(700))
	assert.Equal(Word(48), mem.Cell[700])
}

func TestMemory_Translated(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()
	mem.Map[10], mem.Map[20] = 20, 10

	phys := mem.Write(10, 123)
	assert.Equal(Word(20), phys)
	assert.Equal(Word(123), mem.Cell[20])
	assert.Equal(Word(0), mem.Cell[10])
	assert.Equal(Word(123), mem.Read(10))
	assert.Equal(Word(0), mem.Read(20))

	mem.ResetMap()
	assert.Equal(Word(123), mem.Read(20))
}

func TestMemory_LoadClear(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()
	mem.Load(998, []Word{1, 2, 3, 4})
	assert.Equal([]Word{1, 2, 3, 4}, mem.Slice(998, 4))
	assert.Equal(Word(3), mem.Cell[0])

	mem.Clear(0, 1)
	assert.Equal([]Word{1, 2, 0, 4}, mem.Slice(998, 4))

	mem.Clear(0, SIZE)
	for _, cell := range mem.Cell {
		assert.Equal(Word(0), cell)
	}
}
