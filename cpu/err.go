package cpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ezrec/alek/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrNotRunning     = errors.New(f("not running"))
	ErrDivideByZero   = errors.New(f("division by zero"))
	ErrOpcodeInvalid  = errors.New(f("opcode invalid"))
	ErrOpcodeReserved = errors.New(f("opcode reserved"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrDirectiveSyntax    = errors.New(f("directive syntax"))
	ErrOperandCount       = errors.New(f("operand count"))
	ErrOperandMode        = errors.New(f("operand mode not encodable"))
	ErrOperandInvalid     = errors.New(f("operand invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrProgramSize        = errors.New(f("program exceeds memory"))
)

// ErrOpcode identifies the instruction that faulted.
type ErrOpcode struct {
	Addr  Word
	Words []Word
}

func (eo ErrOpcode) Error() string {
	var words []string
	for _, word := range eo.Words {
		words = append(words, fmt.Sprintf("%03d", word))
	}
	return f("bad opcode at %03d [%v]", eo.Addr, strings.Join(words, " "))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}

// ErrParseCharacter is a character literal without a character code.
type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}
