// Package charset maps the 100 character codes of the text window to
// glyphs, and coerces text typed into memory or register cells into words.
package charset

import (
	"github.com/ezrec/alek/memory"
)

const (
	CODE_NUL   = 0 // Empty cell.
	CODE_TAB   = 1
	CODE_LF    = 2
	CODE_CR    = 3
	CODE_OTHER = 4 // Any ASCII character without a code of its own.
	CODE_SPACE = 5

	CODES = 100 // Number of character codes.
)

// 0..4 are control codes, 5..99 are printable.
const table = "\x00\t\n\r\x04 .,!?" +
	"+-*:;\"'(/)" +
	"#$%&^_~<=>" +
	"0123456789" +
	"@ABCDEFGHI" +
	"JKLMNOPQRS" +
	"TUVWXYZ[\\]" +
	"`abcdefghi" +
	"jklmnopqrs" +
	"tuvwxyz{|}"

var fromASCII [128]memory.Word

func init() {
	for n := range fromASCII {
		fromASCII[n] = CODE_OTHER
	}
	for n := range CODES {
		fromASCII[table[n]] = memory.Word(n)
	}
}

// IsControl is true for the non-printable codes 0..4.
func IsControl(code memory.Word) bool {
	return code <= CODE_OTHER
}

// Glyph returns the character for a code. Control codes and codes above
// 99 have no glyph.
func Glyph(code memory.Word) (r rune, ok bool) {
	if IsControl(code) || int(code) >= CODES {
		return
	}

	return rune(table[code]), true
}

// Code returns the character code for an ASCII rune. Characters not in
// the table map to CODE_OTHER, non-ASCII runes are not representable.
func Code(r rune) (code memory.Word, ok bool) {
	if r < 0 || int(r) >= len(fromASCII) {
		return
	}

	return fromASCII[r], true
}

// Encode converts a string to character codes, dropping runes that are not
// representable.
func Encode(text string) (codes []memory.Word) {
	for _, r := range text {
		code, ok := Code(r)
		if ok {
			codes = append(codes, code)
		}
	}

	return
}

// ParseNumber coerces decimal digits into a word, modulo 1000. Any other
// text is 0.
func ParseNumber(text string) (value memory.Word) {
	if len(text) == 0 {
		return
	}

	var acc int
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0
		}
		acc = (acc*10 + int(r-'0')) % memory.SIZE
	}

	return memory.Word(acc)
}

// ParseCell coerces memory cell text. Digits are a number, a single
// printable character is its code, and anything else is 0.
func ParseCell(text string) (value memory.Word) {
	runes := []rune(text)
	if len(runes) == 1 && (runes[0] < '0' || runes[0] > '9') {
		code, ok := Code(runes[0])
		if ok && !IsControl(code) {
			return code
		}
		return 0
	}

	return ParseNumber(text)
}
