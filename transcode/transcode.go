// Package transcode converts between digit-decimal values, whose three
// decimal digits are each 0..7, and their packed 9-bit form of three bits
// per digit.
//
// Values outside the digit-decimal domain (any digit 8 or 9) transcode to
// 0, and packed values above 0x1FF transcode back to 0.
package transcode

import (
	"github.com/ezrec/alek/memory"
)

const (
	MASK  = 0x1FF // All nine bits.
	PROBE = 777   // Digit-decimal value with every bit set.
)

var (
	numToBits [memory.SIZE]uint16
	bitsToNum [memory.SIZE]memory.Word
	inDomain  [memory.SIZE]bool
)

func init() {
	for d2 := range 8 {
		for d1 := range 8 {
			for d0 := range 8 {
				bits := (d2*8+d1)*8 + d0
				num := (d2*10+d1)*10 + d0
				numToBits[num] = uint16(bits)
				bitsToNum[bits] = memory.Word(num)
				inDomain[num] = true
			}
		}
	}
}

// ToBits packs a digit-decimal word into nine bits.
func ToBits(w memory.Word) uint16 {
	if int(w) >= memory.SIZE {
		return 0
	}
	return numToBits[w]
}

// FromBits unpacks nine bits into a digit-decimal word.
func FromBits(bits uint16) memory.Word {
	if int(bits) >= memory.SIZE {
		return 0
	}
	return bitsToNum[bits]
}

// InDomain reports whether every digit of w is 0..7.
func InDomain(w memory.Word) bool {
	return int(w) < memory.SIZE && inDomain[w]
}

// Apply combines two words bitwise through their packed form.
func Apply(d, s memory.Word, op func(d, s uint16) uint16) memory.Word {
	return FromBits(op(ToBits(d), ToBits(s)) & MASK)
}
