package cpu

import (
	"fmt"
	"strings"

	"github.com/ezrec/alek/memory"
)

// Word is a decimal machine word.
type Word = memory.Word

const (
	FETCH_SIZE = 10 // Words read into the opcode buffer per fetch.

	PREFIX_BITS = Word(990) // Prefix of the bit logic instruction set.
	PREFIX_TEST = Word(890) // Prefix of the bit test instruction set.
)

// Op is a decoded operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_UNDEFINED = Op(0)  // ---
	OP_ADD       = Op(1)  // ADD
	OP_SUB       = Op(2)  // SUB
	OP_MUL       = Op(3)  // MUL
	OP_DIV       = Op(4)  // DIV
	OP_MOV       = Op(5)  // MOV
	OP_CMP       = Op(6)  // CMP
	OP_JMP       = Op(7)  // Jcc
	OP_LEA       = Op(8)  // LEA
	OP_NEG       = Op(9)  // NEG
	OP_SI        = Op(10) // SI
	OP_SO        = Op(11) // SO
	OP_MOVZ      = Op(12) // MOVZ
	OP_CMPZ      = Op(13) // CMPZ
	OP_RETCC     = Op(14) // RETcc
	OP_PEA       = Op(15) // PEA
	OP_RI        = Op(16) // RI
	OP_RO        = Op(17) // RO
	OP_POPM      = Op(18) // POPM
	OP_PUSHM     = Op(19) // PUSHM
	OP_LIB       = Op(20) // LIB
	OP_WAIT      = Op(21) // WAIT
	OP_SYS       = Op(22) // SYS
	OP_INC       = Op(23) // INC
	OP_DEC       = Op(24) // DEC
	OP_IN        = Op(25) // IN
	OP_OUT       = Op(26) // OUT
	OP_POP       = Op(27) // POP
	OP_PUSH      = Op(28) // PUSH
	OP_CALL      = Op(29) // CALL
	OP_OUTZ      = Op(30) // OUTZ
	OP_PUSHZ     = Op(31) // PUSHZ
	OP_RET       = Op(32) // RET
	OP_NOP       = Op(33) // NOP
	OP_HLT       = Op(34) // HLT
	OP_OR        = Op(35) // OR
	OP_XOR       = Op(36) // XOR
	OP_AND       = Op(37) // AND
	OP_CLR       = Op(38) // CLR
	OP_SHL       = Op(39) // SHL
	OP_SHR       = Op(40) // SHR
	OP_SETCC     = Op(41) // SETcc
	OP_NOT       = Op(42) // NOT
	OP_SHL1      = Op(43) // SHL1
	OP_SHR1      = Op(44) // SHR1
	OP_TSTM      = Op(45) // TSTM
	OP_SCAN      = Op(46) // SCAN
	OP_LEN       = Op(47) // LEN
	OP_CNT       = Op(48) // CNT
	OP_ROL       = Op(49) // ROL
	OP_ROR       = Op(50) // ROR
	OP_TST       = Op(51) // TST
	OP_CTB       = Op(52) // CTB
	OP_CTD       = Op(53) // CTD
	OP_ROXL      = Op(54) // ROXL
	OP_ROXR      = Op(55) // ROXR
	OP_CLRXCC    = Op(56) // CLRXcc
)

// Form is the operand layout of an opcode word.
type Form int

const (
	FORM_NONE     = Form(iota) // All three digits are the opcode.
	FORM_DST_SRC               // Tens digit is the destination, units the source.
	FORM_DST                   // Units digit is the destination.
	FORM_SRC                   // Units digit is the source.
	FORM_COND_SRC              // Tens digit is a condition mask, units the source.
	FORM_COND                  // Units digit is a condition mask.
	FORM_RESERVED              // Unassigned digits; the op is not implemented.
)

type opInfo struct {
	prefix Word // PREFIX_BITS, PREFIX_TEST, or 0
	code   Word // Opcode word with all operand digits zero.
	digits int  // Leading digits that select the op.
	form   Form
}

var opTable = map[Op]opInfo{
	OP_ADD:   {0, 100, 1, FORM_DST_SRC},
	OP_SUB:   {0, 200, 1, FORM_DST_SRC},
	OP_MUL:   {0, 300, 1, FORM_DST_SRC},
	OP_DIV:   {0, 400, 1, FORM_DST_SRC},
	OP_MOV:   {0, 500, 1, FORM_DST_SRC},
	OP_CMP:   {0, 600, 1, FORM_DST_SRC},
	OP_JMP:   {0, 700, 1, FORM_COND_SRC},
	OP_LEA:   {0, 810, 2, FORM_RESERVED},
	OP_NEG:   {0, 820, 2, FORM_DST},
	OP_SI:    {0, 830, 2, FORM_RESERVED},
	OP_SO:    {0, 840, 2, FORM_RESERVED},
	OP_MOVZ:  {0, 850, 2, FORM_DST},
	OP_CMPZ:  {0, 860, 2, FORM_SRC},
	OP_RETCC: {0, 870, 2, FORM_COND},
	OP_PEA:   {0, 891, 3, FORM_RESERVED},
	OP_RI:    {0, 893, 3, FORM_RESERVED},
	OP_RO:    {0, 894, 3, FORM_RESERVED},
	OP_POPM:  {0, 895, 3, FORM_RESERVED},
	OP_PUSHM: {0, 896, 3, FORM_RESERVED},
	OP_LIB:   {0, 897, 3, FORM_RESERVED},
	OP_WAIT:  {0, 898, 3, FORM_RESERVED},
	OP_SYS:   {0, 899, 3, FORM_RESERVED},
	OP_INC:   {0, 910, 2, FORM_DST},
	OP_DEC:   {0, 920, 2, FORM_DST},
	OP_IN:    {0, 930, 2, FORM_RESERVED},
	OP_OUT:   {0, 940, 2, FORM_RESERVED},
	OP_POP:   {0, 950, 2, FORM_DST},
	OP_PUSH:  {0, 960, 2, FORM_SRC},
	OP_CALL:  {0, 970, 2, FORM_SRC},
	OP_OUTZ:  {0, 994, 3, FORM_RESERVED},
	OP_PUSHZ: {0, 996, 3, FORM_NONE},
	OP_RET:   {0, 997, 3, FORM_NONE},
	OP_NOP:   {0, 998, 3, FORM_NONE},
	OP_HLT:   {0, 999, 3, FORM_NONE},

	OP_OR:    {PREFIX_BITS, 100, 1, FORM_DST_SRC},
	OP_XOR:   {PREFIX_BITS, 200, 1, FORM_DST_SRC},
	OP_AND:   {PREFIX_BITS, 300, 1, FORM_DST_SRC},
	OP_CLR:   {PREFIX_BITS, 400, 1, FORM_DST_SRC},
	OP_SHL:   {PREFIX_BITS, 500, 1, FORM_DST_SRC},
	OP_SHR:   {PREFIX_BITS, 600, 1, FORM_DST_SRC},
	OP_SETCC: {PREFIX_BITS, 700, 1, FORM_RESERVED},
	OP_NOT:   {PREFIX_BITS, 920, 2, FORM_DST},
	OP_SHL1:  {PREFIX_BITS, 950, 2, FORM_RESERVED},
	OP_SHR1:  {PREFIX_BITS, 960, 2, FORM_RESERVED},

	OP_TSTM:   {PREFIX_TEST, 100, 1, FORM_DST_SRC},
	OP_SCAN:   {PREFIX_TEST, 200, 1, FORM_RESERVED},
	OP_LEN:    {PREFIX_TEST, 300, 1, FORM_RESERVED},
	OP_CNT:    {PREFIX_TEST, 400, 1, FORM_RESERVED},
	OP_ROL:    {PREFIX_TEST, 500, 1, FORM_RESERVED},
	OP_ROR:    {PREFIX_TEST, 600, 1, FORM_RESERVED},
	OP_TST:    {PREFIX_TEST, 910, 2, FORM_DST},
	OP_CTB:    {PREFIX_TEST, 930, 2, FORM_DST},
	OP_CTD:    {PREFIX_TEST, 940, 2, FORM_DST},
	OP_ROXL:   {PREFIX_TEST, 950, 2, FORM_RESERVED},
	OP_ROXR:   {PREFIX_TEST, 960, 2, FORM_RESERVED},
	OP_CLRXCC: {PREFIX_TEST, 970, 2, FORM_RESERVED},
}

// Per-prefix word to op lookup.
var decodeTable = map[Word]*[memory.SIZE]Op{
	0:           {},
	PREFIX_BITS: {},
	PREFIX_TEST: {},
}

func init() {
	for op, info := range opTable {
		span := []int{0, 100, 10, 1}[info.digits]
		table := decodeTable[info.prefix]
		for n := range span {
			table[int(info.code)+n] = op
		}
	}
}

// Reserved is true for named operations that are not implemented.
func (op Op) Reserved() bool {
	info, ok := opTable[op]
	return ok && info.form == FORM_RESERVED
}

// Form returns the operand layout of the op.
func (op Op) Form() Form {
	return opTable[op].form
}

// Mode is an addressing mode digit.
//
//	0    immediate (source), SP (destination)
//	1..4 register R1..R4
//	5..8 memory at the address in R1..R4
//	9    memory at the absolute address in the next word
//
// The opcode grammar reserves room for indexed, relative and streaming
// forms of mode 9; only absolute addressing is implemented.
type Mode int

const (
	MODE_IMMEDIATE = Mode(0)
	MODE_REGISTER  = Mode(1)
	MODE_INDIRECT  = Mode(5)
	MODE_EXTENDED  = Mode(9)
)

// Instruction is a decoded instruction and the fetch buffer behind it.
type Instruction struct {
	Op     Op
	Prefix Word  // PREFIX_BITS, PREFIX_TEST, or 0.
	Code   Word  // Word carrying the op and mode digits.
	Dst    Mode  // Destination mode, if any.
	Src    Mode  // Source mode, if any.
	Cond   Flags // Condition mask for conditional ops.
	Length int   // Instruction length in words.

	Words [FETCH_SIZE]Word // Fetch buffer.
}

// Decode an instruction from a fetch buffer.
func Decode(words [FETCH_SIZE]Word) (inst Instruction) {
	inst.Words = words
	inst.Length = Length(words)

	inst.Code = words[0]
	switch words[0] {
	case PREFIX_BITS, PREFIX_TEST:
		inst.Prefix = words[0]
		inst.Code = words[1]
	}

	inst.Op = decodeTable[inst.Prefix][inst.Code%memory.SIZE]

	code := inst.Code
	switch inst.Op.Form() {
	case FORM_DST_SRC:
		inst.Dst = Mode(code.Tens())
		inst.Src = Mode(code.Units())
	case FORM_DST:
		inst.Dst = Mode(code.Units())
	case FORM_SRC:
		inst.Src = Mode(code.Units())
	case FORM_COND_SRC:
		inst.Cond = Flags(code.Tens())
		inst.Src = Mode(code.Units())
	case FORM_COND:
		inst.Cond = Flags(code.Units())
	}

	return
}

// Length determines the instruction length, 1 to 4 words, from the opcode
// digits in the fetch buffer.
//
// This follows the length grammar of the hardware, which is looser than
// the dispatch: some operand forms execute with more words than the
// length accounts for.
func Length(words [FETCH_SIZE]Word) (size int) {
	size = 1
	var imm, dstEA, srcEA bool

	op := words[0]
	switch {
	case op == PREFIX_BITS:
		size++
		op = words[1]
		if h := op.Hundreds(); h >= 1 && h <= 6 {
			dstEA = true
			srcEA = true
			imm = true
		}
	case op == PREFIX_TEST:
		size++
		op = words[1]
		if op.Hundreds() == 1 {
			dstEA = true
			srcEA = true
			imm = true
		}
	default:
		h := op.Hundreds()
		ht := int(op) / 10
		switch {
		case h >= 1 && h <= 6:
			dstEA = true
			srcEA = true
			imm = true
		case h == 7:
			srcEA = true
			imm = true
		case ht == 94 || ht == 96 || ht == 97:
			srcEA = true
			imm = true
		case ht == 91 || ht == 92 || ht == 93:
			srcEA = true
		case op == 987 || op == 989:
			return 2
		}
	}

	if srcEA && op.Units() == int(MODE_EXTENDED) {
		size++
	}
	if dstEA && op.Tens() == int(MODE_EXTENDED) {
		size++
	}
	if imm && op.Units() == int(MODE_IMMEDIATE) {
		size++
	}

	return
}

// operandStart is the buffer index of the first operand word.
func (inst Instruction) operandStart() int {
	if inst.Prefix != 0 {
		return 2
	}
	return 1
}

// SourceFirst is true for ops that read their source before resolving
// their destination, so that the source operand word comes first.
func (op Op) SourceFirst() bool {
	return op == OP_MOV
}

var jumpName = [8]string{"JNV", "JLT", "JGT", "JNE", "JEQ", "JLE", "JGE", "JMP"}
var returnName = [8]string{"RETNV", "RETLT", "RETGT", "RETNE", "RETEQ", "RETLE", "RETGE", "RETAL"}

// Mnemonic returns the assembler name of the instruction.
func (inst Instruction) Mnemonic() string {
	switch inst.Op {
	case OP_JMP:
		return jumpName[inst.Cond&7]
	case OP_RETCC:
		return returnName[inst.Cond&7]
	}
	return inst.Op.String()
}

// String disassembles the instruction.
func (inst Instruction) String() string {
	if inst.Op == OP_UNDEFINED {
		var data []string
		for _, word := range inst.Words[:inst.Length] {
			data = append(data, fmt.Sprintf("%d", word))
		}
		return ".word " + strings.Join(data, ", ")
	}

	next := inst.operandStart()
	operand := func(mode Mode, src bool) (text string) {
		switch {
		case mode == MODE_IMMEDIATE && src:
			text = fmt.Sprintf("%d", inst.Words[next%FETCH_SIZE])
			next++
		case mode == MODE_IMMEDIATE:
			text = "SP"
		case mode < MODE_INDIRECT:
			text = fmt.Sprintf("R%d", mode)
		case mode < MODE_EXTENDED:
			text = fmt.Sprintf("[R%d]", mode-MODE_INDIRECT+1)
		default:
			text = fmt.Sprintf("[%d]", inst.Words[next%FETCH_SIZE])
			next++
		}
		return
	}

	name := inst.Mnemonic()

	switch inst.Op.Form() {
	case FORM_DST_SRC:
		var dst, src string
		if inst.Op.SourceFirst() {
			src = operand(inst.Src, true)
			dst = operand(inst.Dst, false)
		} else {
			dst = operand(inst.Dst, false)
			src = operand(inst.Src, true)
		}
		return fmt.Sprintf("%v %v, %v", name, dst, src)
	case FORM_DST:
		return fmt.Sprintf("%v %v", name, operand(inst.Dst, false))
	case FORM_SRC, FORM_COND_SRC:
		return fmt.Sprintf("%v %v", name, operand(inst.Src, true))
	}

	return name
}
