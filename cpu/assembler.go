// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/alek/charset"
	"github.com/ezrec/alek/memory"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Assembler is a single pass macro assembler for the decimal processor.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string   // Predefines
	Label     map[string]Word     // Map of labels to addresses.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.

	addr       int // Address of the next emitted word.
	expansions int // Count of macro expansions, for '@' local labels.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// mnemonic is an assembler instruction name.
type mnemonic struct {
	op   Op
	cond Flags
}

var mnemonicMap = map[string]mnemonic{}

func init() {
	for op, info := range opTable {
		switch {
		case info.form == FORM_RESERVED:
			continue
		case op == OP_JMP:
			for cond, name := range jumpName {
				mnemonicMap[name] = mnemonic{op: op, cond: Flags(cond)}
			}
		case op == OP_RETCC:
			for cond, name := range returnName {
				mnemonicMap[name] = mnemonic{op: op, cond: Flags(cond)}
			}
		default:
			mnemonicMap[op.String()] = mnemonic{op: op}
		}
	}
}

// Registers addressable by the mode digits.
var modeMap = map[string]Mode{
	"SP":   MODE_IMMEDIATE,
	"R1":   1,
	"R2":   2,
	"R3":   3,
	"R4":   4,
	"[R1]": 5,
	"[R2]": 6,
	"[R3]": 7,
	"[R4]": 8,
}

var (
	reLabel     = regexp.MustCompile(`^([A-Za-z_@.][\w@.]*):`)
	reIdent     = regexp.MustCompile(`^[A-Za-z_][\w@.]*$`)
	reCharacter = regexp.MustCompile(`'(\\'|[^'])'`)
	reExpr      = regexp.MustCompile(`\$\([^\$]*\)`)
	reWord      = regexp.MustCompile(`[A-Za-z_][\w@.]*`)
)

// valueOf returns the value of a number, or the name of a label.
func (asm *Assembler) valueOf(word string) (value Word, label string, err error) {
	v64, perr := strconv.ParseInt(word, 0, 32)
	if perr == nil {
		value = memory.Wrap(int(v64))
		return
	}

	if reIdent.MatchString(word) {
		label = word
		return
	}

	err = ErrParseNumber(word)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value Word, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, perr := strconv.ParseInt(str, 0, 32)
		if perr != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	for key, addr := range asm.Label {
		if reIdent.MatchString(key) {
			pred[key] = starlark.MakeInt(int(addr))
		}
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = memory.Wrap(int(st_int64))
	return
}

// stripComment removes a ';' comment, ignoring quoted semicolons.
func stripComment(text string) string {
	var quote rune
	for n, r := range text {
		switch {
		case quote != 0 && r == quote:
			quote = 0
		case quote != 0:
		case r == '"' || r == '\'':
			quote = r
		case r == ';':
			return text[:n]
		}
	}
	return text
}

// substitute replaces equates in an operand.
func (asm *Assembler) substitute(operand string) string {
	for range 8 {
		next := reWord.ReplaceAllStringFunc(operand, func(word string) string {
			equate, ok := asm.Equate[word]
			if ok {
				return equate
			}
			return word
		})
		if next == operand {
			break
		}
		operand = next
	}
	return operand
}

// defineLabel records a label at the current address.
func (asm *Assembler) defineLabel(label string) (err error) {
	_, ok := asm.Label[label]
	if ok {
		err = ErrLabelDuplicate
		return
	}

	if asm.Label == nil {
		asm.Label = make(map[string]Word, 16)
	}
	asm.Label[label] = Word(asm.addr % memory.SIZE)
	return
}

// parseLine parses a single line into a mnemonic and its operands.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	line = strings.TrimSpace(line)
	for {
		match := reLabel.FindStringSubmatch(line)
		if match == nil {
			break
		}
		err = asm.defineLabel(match[1])
		if err != nil {
			return
		}
		line = strings.TrimSpace(line[len(match[0]):])
	}

	if len(line) == 0 {
		return
	}

	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	// .text "string"
	if name == ".text" {
		var text string
		text, err = strconv.Unquote(rest)
		if err != nil {
			err = ErrDirectiveSyntax
			return
		}
		words = []string{".word"}
		for _, code := range charset.Encode(text) {
			words = append(words, fmt.Sprintf("%d", code))
		}
		return
	}

	// Do 'x' evaluations
	rest = reCharacter.ReplaceAllStringFunc(rest, func(word string) string {
		str := word[1 : len(word)-1]
		if str == "\\'" {
			str = "'"
		}
		code, ok := charset.Code([]rune(str)[0])
		if !ok {
			err = ErrParseCharacter(str)
			return word
		}
		return fmt.Sprintf("%d", code)
	})
	if err != nil {
		return
	}

	// Do $() evaluations
	rest = reExpr.ReplaceAllStringFunc(rest, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = ErrParseExpression(str[2 : len(str)-1])
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	var operands []string
	if len(rest) > 0 {
		for _, operand := range strings.Split(rest, ",") {
			operands = append(operands, strings.TrimSpace(operand))
		}
	}

	// .equ CONST VALUE
	if name == ".equ" {
		args := strings.Fields(strings.ReplaceAll(rest, ",", " "))
		if len(args) != 2 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[args[0]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[args[0]] = asm.substitute(args[1])
		return
	}

	for n, operand := range operands {
		operands[n] = asm.substitute(operand)
	}

	// .macro processing
	macro, ok := asm.Macro[name]
	if ok {
		if len(operands) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = operands[n]
		}
		defer func() { asm.Equate = old_equate }()

		asm.expansions++
		local := fmt.Sprintf("%v_%v_", name, asm.expansions)
		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", local)
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				return
			}
		}

		words = nil
		return
	}

	words = append([]string{name}, operands...)
	return
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	asm.addr = 0
	asm.expansions = 0
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = map[string]string{"LINENO": "0"}
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(stripComment(text))
		words := strings.Fields(line)

		// .macro NAME arg, ...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			for _, arg := range words[2:] {
				arg = strings.Trim(arg, ",")
				if len(arg) > 0 {
					macro.Args = append(macro.Args, arg)
				}
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Final linking of labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]
		for _, link := range op.Links {
			addr, ok := asm.Label[link.Label]
			if !ok {
				lineno = op.LineNo
				line = strings.Join(op.Words, " ")
				err = ErrLabelMissing(link.Label)
				return
			}
			op.Codes[link.Index] = addr
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// operand is an encoded operand: its mode, and its extension word.
type operand struct {
	mode  Mode
	ext   bool
	value Word
	label string
}

// parseOperand encodes an operand, as either a destination or a source.
func (asm *Assembler) parseOperand(text string, dst bool) (opnd operand, err error) {
	upper := strings.ToUpper(strings.ReplaceAll(text, " ", ""))
	mode, ok := modeMap[upper]
	switch {
	case ok && upper == "SP" && !dst:
		err = ErrOperandMode
		return
	case ok:
		opnd.mode = mode
		return
	}

	for reg := range Register(REG_COUNT) {
		if reg.String() == strings.Trim(upper, "[]") {
			err = ErrOperandInvalid
			return
		}
	}

	opnd.ext = true
	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
		opnd.mode = MODE_EXTENDED
		text = strings.TrimSpace(text[1 : len(text)-1])
	} else if dst {
		err = ErrOperandMode
		return
	} else {
		opnd.mode = MODE_IMMEDIATE
	}

	if len(text) == 0 {
		err = ErrOperandInvalid
		return
	}

	opnd.value, opnd.label, err = asm.valueOf(text)
	return
}

// parseWords evaluates the words of an instruction or data directive.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var codes []Word
	var links []Link

	// no-op
	if len(words) == 0 {
		return
	}

	name := words[0]
	args := words[1:]

	defer func() {
		if err != nil || len(codes) == 0 {
			return
		}
		if asm.addr+len(codes) > memory.SIZE {
			err = ErrProgramSize
			return
		}
		opcode := Opcode{LineNo: lineno, Addr: Word(asm.addr), Words: words, Codes: codes, Links: links}
		asm.Opcode = append(asm.Opcode, opcode)
		asm.addr += len(codes)
	}()

	emit := func(opnd operand) {
		if opnd.label != "" {
			links = append(links, Link{Index: len(codes), Label: opnd.label})
		}
		codes = append(codes, opnd.value)
	}

	switch name {
	case ".word":
		if len(args) == 0 {
			err = ErrDirectiveSyntax
			return
		}
		for _, arg := range args {
			var opnd operand
			opnd.value, opnd.label, err = asm.valueOf(arg)
			if err != nil {
				return
			}
			emit(opnd)
		}
		return
	case ".org":
		if len(args) != 1 {
			err = ErrDirectiveSyntax
			return
		}
		var value Word
		var label string
		value, label, err = asm.valueOf(args[0])
		if err == nil && label != "" {
			err = ErrDirectiveSyntax
		}
		if err != nil {
			return
		}
		asm.addr = int(value)
		return
	}

	mn, ok := mnemonicMap[strings.ToUpper(name)]
	if !ok {
		err = ErrInstructionInvalid
		return
	}
	info := opTable[mn.op]

	var need int
	switch info.form {
	case FORM_DST_SRC:
		need = 2
	case FORM_DST, FORM_SRC, FORM_COND_SRC:
		need = 1
	}
	if len(args) != need {
		err = ErrOperandCount
		return
	}

	var dst, src operand
	code := info.code
	switch info.form {
	case FORM_DST_SRC:
		if dst, err = asm.parseOperand(args[0], true); err != nil {
			return
		}
		if src, err = asm.parseOperand(args[1], false); err != nil {
			return
		}
		code += Word(dst.mode)*10 + Word(src.mode)
	case FORM_DST:
		if dst, err = asm.parseOperand(args[0], true); err != nil {
			return
		}
		code += Word(dst.mode)
	case FORM_SRC:
		if src, err = asm.parseOperand(args[0], false); err != nil {
			return
		}
		code += Word(src.mode)
	case FORM_COND_SRC:
		if src, err = asm.parseOperand(args[0], false); err != nil {
			return
		}
		code += Word(mn.cond)*10 + Word(src.mode)
	case FORM_COND:
		code += Word(mn.cond)
	}

	if info.prefix != 0 {
		codes = append(codes, info.prefix)
	}
	codes = append(codes, code)

	if mn.op.SourceFirst() {
		dst, src = src, dst
	}
	for _, opnd := range []operand{dst, src} {
		if opnd.ext {
			emit(opnd)
		}
	}

	var buffer [FETCH_SIZE]Word
	copy(buffer[:], codes)
	if Length(buffer) != len(codes) {
		err = ErrOperandMode
		codes = nil
		return
	}

	return
}
