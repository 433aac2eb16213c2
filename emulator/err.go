package emulator

import (
	"github.com/ezrec/alek/cpu"
	"github.com/ezrec/alek/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Addr   cpu.Word
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("address %03d %v", err.Addr, err.Err)
	}
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrTickLimit is a run that did not stop within its instruction budget.
type ErrTickLimit int

func (err ErrTickLimit) Error() string {
	return f("tick limit %d reached", int(err))
}
