package emulator

import (
	"context"
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/alek/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Memory)
	assert.NotNil(emu.Video)
	assert.Equal(cpu.STATE_IDLE, emu.State)

	defines := maps.Collect(emu.Defines())
	assert.Equal("700", defines["TEXT_BASE"])
	assert.Equal("1000", defines["MEMORY_SIZE"])
	assert.Equal("4", defines["FLAG_EQ"])

	done, err := emu.Tick()
	assert.True(done)
	assert.NoError(err)
}

func TestEmulator_Demos(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		ticks  int
		screen []string
	}){
		{"Hi", 5, []string{"Hi        "}},
		{"Hello World", 97, []string{"Hello, Wor", "ld!       "}},
		{"Count Down", 62, []string{"0         "}},
		{"Multiply", 22, nil},
		{"Multiply 2", 217, []string{"003*017=  ", "051       "}},
	}

	blank := strings.Repeat(" ", 10)

	for _, entry := range table {
		demo, ok := FindDemo(entry.name)
		assert.True(ok, entry.name)

		emu := NewEmulator()
		emu.Load(demo.Code)
		assert.Equal(cpu.STATE_RUNNING, emu.State)

		err := emu.Run(TICK_LIMIT)
		assert.NoError(err, entry.name)
		assert.Equal(entry.ticks, emu.Ticks, entry.name)
		assert.Equal(cpu.STATE_IDLE, emu.State, entry.name)

		screen := emu.Screen()
		for n, line := range screen {
			if n < len(entry.screen) {
				assert.Equal(entry.screen[n], line, entry.name)
			} else {
				assert.Equal(blank, line, entry.name)
			}
		}
	}

	emu := NewEmulator()
	demo, _ := FindDemo("Multiply")
	emu.Load(demo.Code)
	assert.NoError(emu.Run(TICK_LIMIT))
	assert.Equal(cpu.Word(51), emu.Memory.Read(22))
	assert.Equal(cpu.Word(51), emu.Register.Get(cpu.REG_R1))

	demo, _ = FindDemo("5")
	emu.Load(demo.Code)
	assert.NoError(emu.Run(TICK_LIMIT))
	assert.Equal([]cpu.Word{3, 17, 51}, emu.Memory.Slice(95, 3))
}

func TestFindDemo(t *testing.T) {
	assert := assert.New(t)

	demo, ok := FindDemo("1")
	assert.True(ok)
	assert.Equal("Hi", demo.Name)

	demo, ok = FindDemo("hello world")
	assert.True(ok)
	assert.Equal("Hello World", demo.Name)

	for _, name := range []string{"0", "6", "-1", "nope", ""} {
		demo, ok = FindDemo(name)
		assert.False(ok, name)
		assert.Equal("", demo.Name, name)
	}
}

func TestEmulator_Tick(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	demo, _ := FindDemo("Hi")
	emu.Load(demo.Code)

	for range 4 {
		done, err := emu.Tick()
		assert.NoError(err)
		assert.False(done)
	}

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(5, emu.Ticks)

	// Idle ticks do nothing.
	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(5, emu.Ticks)
	assert.Equal(cpu.Word(9), emu.Ip())
}

func TestEmulator_Fault(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Load([]cpu.Word{510, 1, 410, 0, 999})

	done, err := emu.Tick()
	assert.False(done)
	assert.NoError(err)

	done, err = emu.Tick()
	assert.True(done)
	assert.ErrorIs(err, cpu.ErrDivideByZero)
	assert.ErrorIs(err, cpu.ErrOpcode{})
	assert.Equal(cpu.STATE_ERROR, emu.State)

	fault := err
	text := fault.Error()
	assert.Contains(text, "[410 000]")
	assert.NotContains(text, "\n")

	var er *ErrRuntime
	if assert.True(errors.As(err, &er)) {
		assert.Equal(cpu.Word(2), er.Addr)
		assert.Equal(0, er.LineNo)
	}

	// The fault is sticky until a reset.
	done, err = emu.Tick()
	assert.True(done)
	assert.ErrorIs(err, cpu.ErrDivideByZero)
	if assert.True(errors.As(err, &er)) {
		assert.Equal(cpu.Word(2), er.Addr)
	}

	err = emu.Run(TICK_LIMIT)
	assert.ErrorIs(err, cpu.ErrDivideByZero)

	emu.Reset()
	assert.Equal(cpu.STATE_RUNNING, emu.State)
	assert.NoError(emu.Fault)

	// A held fault does not change when the CPU moves on.
	assert.Equal(text, fault.Error())
	_, err = emu.Tick()
	assert.NoError(err)
	assert.Equal(text, fault.Error())

	var eo cpu.ErrOpcode
	if assert.True(errors.As(fault, &eo)) {
		assert.Equal([]cpu.Word{410, 0}, eo.Words)
	}
}

func TestEmulator_Program(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	prog, err := emu.Assemble(strings.NewReader(strings.Join([]string{
		"    MOV R1, 'H'",
		"    MOV [TEXT_BASE], R1",
		"    MOV R1, 'i'",
		"    MOV [$(TEXT_BASE + 1)], R1",
		"    HLT",
	}, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	demo, _ := FindDemo("Hi")
	assert.Equal(demo.Code, prog.Binary())

	emu.LoadProgram(prog)
	for _, op := range prog.Opcodes {
		assert.Equal(op.LineNo, emu.LineNo())
		assert.Equal(op.Addr, emu.Ip())
		_, err := emu.Tick()
		assert.NoError(err)
	}
	assert.Equal(cpu.STATE_IDLE, emu.State)
	assert.Equal("Hi        ", emu.Screen()[0])

	prog, err = emu.Assemble(strings.NewReader(strings.Join([]string{
		"    MOV R1, 1",
		"    DIV R1, 0",
		"    HLT",
	}, "\n")))
	assert.NoError(err)
	emu.LoadProgram(prog)
	err = emu.Run(TICK_LIMIT)

	var er *ErrRuntime
	if assert.True(errors.As(err, &er)) {
		assert.Equal(2, er.LineNo)
		assert.Equal(cpu.Word(2), er.Addr)
	}
}

func TestEmulator_RunLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	demo, _ := FindDemo("Hello World")
	emu.Load(demo.Code)

	err := emu.Run(96)
	assert.ErrorIs(err, ErrTickLimit(96))
	assert.Equal(96, emu.Ticks)
	assert.Equal(cpu.STATE_RUNNING, emu.State)

	err = emu.Run(10)
	assert.NoError(err)
	assert.Equal(97, emu.Ticks)

	// A run that never stops.
	emu.Load([]cpu.Word{770, 0})
	err = emu.Run(1000)
	assert.ErrorIs(err, ErrTickLimit(1000))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	emu.Reset()
	err = emu.RunContext(ctx, 1000)
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(0, emu.Ticks)
}

func TestEmulator_Editing(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	table := [](struct {
		text  string
		value cpu.Word
	}){
		{"48", 48},
		{"1234", 234},
		{"7", 7},
		{"H", 48},
		{" ", 5},
		{"é", 0},
		{"\t", 0},
		{"HI", 0},
		{"-5", 0},
		{"", 0},
	}

	for _, entry := range table {
		emu.SetMemoryText(500, entry.text)
		assert.Equal(entry.value, emu.Memory.Read(500), entry.text)
	}

	emu.SetRegisterText(cpu.REG_R1, "1234")
	assert.Equal(cpu.Word(234), emu.Register.Get(cpu.REG_R1))
	emu.SetRegisterText(cpu.REG_R1, "H")
	assert.Equal(cpu.Word(0), emu.Register.Get(cpu.REG_R1))
	emu.SetRegisterText(cpu.REG_ZERO, "5")
	assert.Equal(cpu.Word(0), emu.Register.Get(cpu.REG_ZERO))

	emu.SetMemoryText(10, "1")
	emu.SetMemoryText(20, "2")
	emu.ClearMemory(0, 15)
	assert.Equal(cpu.Word(0), emu.Memory.Read(10))
	assert.Equal(cpu.Word(2), emu.Memory.Read(20))
}

func TestEmulator_Reset(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.SetMemoryText(705, "X")
	emu.SetMemoryText(500, "X")
	emu.SetRegisterText(cpu.REG_R2, "12")

	emu.Reset()
	assert.Equal(cpu.STATE_RUNNING, emu.State)
	assert.Equal(cpu.Word(0), emu.Memory.Read(705))
	assert.Equal(cpu.Word(64), emu.Memory.Read(500))
	assert.Equal(cpu.Word(0), emu.Register.Get(cpu.REG_R2))

	// Loading clears the low cells.
	emu.SetMemoryText(99, "1")
	emu.SetMemoryText(100, "1")
	emu.Load([]cpu.Word{999})
	assert.Equal(cpu.Word(0), emu.Memory.Read(99))
	assert.Equal(cpu.Word(1), emu.Memory.Read(100))
}

func TestRunAll(t *testing.T) {
	assert := assert.New(t)

	demos := append([]Demo{}, Demos...)
	demos = append(demos, Demo{Name: "Spin", Code: []cpu.Word{770, 0}})
	demos = append(demos, Demo{Name: "Fault", Code: []cpu.Word{4}})

	results, err := RunAll(context.Background(), demos, 1000)
	assert.NoError(err)
	assert.Equal(len(demos), len(results))

	ticks := []int{5, 97, 62, 22, 217, 1000, 0}
	for n, result := range results {
		assert.Equal(demos[n].Name, result.Name)
		assert.Equal(ticks[n], result.Ticks, result.Name)
	}
	for _, result := range results[:5] {
		assert.NoError(result.Err, result.Name)
		assert.Equal(cpu.STATE_IDLE, result.State, result.Name)
	}
	assert.Equal("Hello, Wor", results[1].Screen[0])
	assert.ErrorIs(results[5].Err, ErrTickLimit(1000))
	assert.Equal(cpu.STATE_RUNNING, results[5].State)
	assert.ErrorIs(results[6].Err, cpu.ErrOpcodeInvalid)
	assert.Equal(cpu.STATE_ERROR, results[6].State)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = RunAll(ctx, demos, 1000)
	assert.ErrorIs(err, context.Canceled)
}
