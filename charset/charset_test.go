package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/alek/memory"
)

func TestGlyph(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code  memory.Word
		glyph rune
		ok    bool
	}){
		{0, 0, false},
		{4, 0, false},
		{5, ' ', true},
		{7, ',', true},
		{30, '0', true},
		{39, '9', true},
		{48, 'H', true},
		{63, 'W', true},
		{79, 'i', true},
		{99, '}', true},
		{100, 0, false},
		{999, 0, false},
	}

	for _, entry := range table {
		glyph, ok := Glyph(entry.code)
		assert.Equal(entry.ok, ok, "%v", entry.code)
		assert.Equal(entry.glyph, glyph, "%v", entry.code)
	}
}

func TestCode(t *testing.T) {
	assert := assert.New(t)

	for n := CODE_SPACE; n < CODES; n++ {
		glyph, ok := Glyph(memory.Word(n))
		assert.True(ok)
		code, ok := Code(glyph)
		assert.True(ok)
		assert.Equal(memory.Word(n), code)
	}

	code, ok := Code('\t')
	assert.True(ok)
	assert.Equal(memory.Word(CODE_TAB), code)

	code, ok = Code('\x7f')
	assert.True(ok)
	assert.Equal(memory.Word(CODE_OTHER), code)

	_, ok = Code('é')
	assert.False(ok)
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]memory.Word{48, 75, 82, 82, 85, 7, 5, 63, 85, 88, 82, 74, 8}, Encode("Hello, World!"))
	assert.Equal([]memory.Word{48, 5, 79}, Encode("Hé i"))
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(memory.Word(0), ParseNumber(""))
	assert.Equal(memory.Word(42), ParseNumber("042"))
	assert.Equal(memory.Word(234), ParseNumber("1234"))
	assert.Equal(memory.Word(0), ParseNumber("-5"))
	assert.Equal(memory.Word(0), ParseNumber("12a"))

	assert.Equal(memory.Word(48), ParseCell("H"))
	assert.Equal(memory.Word(7), ParseCell("7"))
	assert.Equal(memory.Word(0), ParseCell("\t"))
	assert.Equal(memory.Word(0), ParseCell("\x7f"))
	assert.Equal(memory.Word(0), ParseCell("Hi"))
	assert.Equal(memory.Word(0), ParseCell("é"))
	assert.Equal(memory.Word(999), ParseCell("999"))
}
