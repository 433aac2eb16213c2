// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"github.com/ezrec/alek/cpu"
	"github.com/ezrec/alek/emulator"
)

// printScreen writes the text window, framed when stdout is a terminal.
func printScreen(lines []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		for _, line := range lines {
			fmt.Println(strings.TrimRight(line, " "))
		}
		return
	}

	border := "+" + strings.Repeat("-", len(lines[0])) + "+"
	fmt.Println(border)
	for _, line := range lines {
		fmt.Printf("|%s|\n", line)
	}
	fmt.Println(border)
}

// disassemble lists a memory image, one instruction per line.
func disassemble(words []cpu.Word) {
	for addr := 0; addr < len(words); {
		var buffer [cpu.FETCH_SIZE]cpu.Word
		copy(buffer[:], words[addr:])
		size := min(cpu.Length(buffer), len(words)-addr)

		codes := make([]string, size)
		for n := range size {
			codes[n] = fmt.Sprintf("%03d", words[addr+n])
		}
		fmt.Printf("%03d: %-16s ; %v\n", addr, strings.Join(codes, " "), cpu.Decode(buffer))
		addr += size
	}
}

func main() {
	var compile string
	var demo string
	var list bool
	var defines bool
	var limit int
	var state bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".alek file to assemble and run")
	flag.StringVar(&demo, "d", "", "Demo to run, by name or number, or 'all'")
	flag.BoolVar(&list, "l", false, "List the program, do not execute")
	flag.BoolVar(&defines, "D", false, "List the assembler predefines")
	flag.IntVar(&limit, "n", emulator.TICK_LIMIT, "Instruction limit")
	flag.BoolVar(&state, "s", false, "Show the CPU state after the run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	if defines {
		for key, value := range emu.Defines() {
			fmt.Printf(".equ %s %s\n", key, value)
		}
		return
	}

	source := compile

	switch {
	case demo == "all":
		results, err := emulator.RunAll(ctx, emulator.Demos, limit)
		if err != nil {
			log.Fatal(err)
		}
		for n, result := range results {
			fmt.Printf("%d: %s (%v, %d ticks)\n", n+1, result.Name, result.State, result.Ticks)
			if result.Err != nil {
				fmt.Printf("   %v\n", result.Err)
			}
			printScreen(result.Screen)
		}
		return
	case len(demo) != 0:
		found, ok := emulator.FindDemo(demo)
		if !ok {
			log.Fatalf("%v: unknown demo", demo)
		}
		if list {
			disassemble(found.Code)
			return
		}
		emu.Load(found.Code)
		source = found.Name
	case len(compile) != 0:
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		prog, err := emu.Assemble(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		if list {
			for _, op := range prog.Opcodes {
				fmt.Println(op)
			}
			return
		}
		emu.LoadProgram(prog)
	default:
		log.Fatalf("%v: one of -c or -d is required", os.Args[0])
	}

	err := emu.RunContext(ctx, limit)
	printScreen(emu.Screen())
	if state {
		fmt.Print(emu.Cpu)
		fmt.Printf("% 6s: %d\n", "ticks", emu.Ticks)
	}
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
}
