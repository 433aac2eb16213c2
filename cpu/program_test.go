package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProgram() *Program {
	return &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Addr: 0, Words: []string{"MOV", "R1", "48"}, Codes: []Word{510, 48}},
			{LineNo: 2, Addr: 2, Words: []string{"MOV", "[700]", "R1"}, Codes: []Word{591, 700}},
			{LineNo: 4, Addr: 10, Words: []string{"HLT"}, Codes: []Word{999}},
		},
	}
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.Opcode.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(3)
	assert.NotNil(dbg.Opcode)
	assert.Equal(2, dbg.Opcode.LineNo)
	assert.Equal(1, dbg.Index)
	assert.Equal(Word(700), dbg.Codes[dbg.Index])

	dbg = prog.Debug(10)
	assert.NotNil(dbg.Opcode)
	assert.Equal(4, dbg.Opcode.LineNo)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	for _, addr := range []Word{4, 9, 11, 999} {
		dbg := prog.Debug(addr)
		assert.Nil(dbg.Opcode, addr)
		assert.Equal(0, dbg.Index, addr)
	}
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()
	assert.Equal([]Word{510, 48, 591, 700, 0, 0, 0, 0, 0, 0, 999}, prog.Binary())

	var addrs []Word
	for addr := range prog.Codes() {
		addrs = append(addrs, addr)
		if addr == 3 {
			break
		}
	}
	assert.Equal([]Word{0, 1, 2, 3}, addrs)
}

func TestOpcode_String(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()
	assert.Equal("000: 510 048          ;    1: MOV R1, 48", prog.Opcodes[0].String())
	assert.Equal("010: 999              ;    4: HLT", prog.Opcodes[2].String())
}
