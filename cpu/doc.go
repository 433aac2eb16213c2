// Package cpu implements the processor and assembler for the ALEK decimal
// system.
//
// Every machine word is a decimal value 0..999. An instruction is one to
// three words, or up to four for the prefixed sets: the first word carries
// the operation in its leading digits and the addressing modes in its
// trailing digits, and any immediate or absolute operand follows in the
// next words. The words 990 and 890 prefix the bit logic and bit test sets,
// which operate on the digit-decimal form, where each of the three digits
// 0..7 holds three bits.
//
// The register file holds SP, R1..R8, IP, a constant ZERO, FLAGS and a set
// of reserved registers. FLAGS holds exactly one of less than, greater than
// and equal after a comparison, and conditional jumps and returns test it
// against a three bit condition mask.
//
// The assembler provides a line oriented assembly language for the
// instruction set, supporting macros, labels, equates, character literals
// and compile-time expression evaluation.
package cpu
