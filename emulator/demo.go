package emulator

import (
	"strconv"
	"strings"

	"github.com/ezrec/alek/cpu"
)

// Demo is a named memory image.
type Demo struct {
	Name string
	Code []cpu.Word
}

// Demos are the built in demonstration programs.
var Demos = []Demo{
	{
		Name: "Hi",
		Code: []cpu.Word{510, 48, 591, 700, 510, 79, 591, 701, 999},
	},
	{
		Name: "Hello World",
		Code: []cpu.Word{
			520, 20, 540, 700, 516, 610, 1, 710, 16, 581,
			120, 1, 140, 1, 770, 4, 999, 0, 0, 0,
			48, 75, 82, 82, 85, 7, 5, 63, 85, 88, 82, 74, 8, 0,
		},
	},
	{
		Name: "Count Down",
		Code: []cpu.Word{510, 9, 521, 120, 30, 592, 700, 210, 1, 610, 999, 730, 2, 999},
	},
	{
		Name: "Multiply",
		Code: []cpu.Word{
			510, 0, 529, 20, 539, 21, 620, 0, 740, 15,
			113, 220, 1, 770, 6, 591, 22, 999, 0, 0,
			3, 17, 0,
		},
	},
	{
		Name: "Multiply 2",
		Code: []cpu.Word{
			510, 0, 529, 95, 539, 96, 620, 0, 740, 15,
			113, 220, 1, 770, 6,
			591, 97, 540, 99, 530, 700,
			519, 95, 580, 27, 770, 50, 510, 12, 571, 130, 1,
			519, 96, 580, 38, 770, 50, 510, 28, 571, 530, 710,
			519, 97, 580, 49, 770, 50, 999,
			240, 1, 520, 30, 572, 130, 1, 572, 130, 1, 572, 230, 2,
			520, 100, 580, 69, 770, 84,
			520, 10, 580, 75, 770, 84,
			520, 1, 580, 81, 770, 84,
			140, 1, 778,
			612, 710, 92, 170, 1, 212, 770, 84, 130, 1, 778,
			3, 17,
		},
	},
}

// FindDemo finds a demo by its name, or by its number counting from 1.
func FindDemo(name string) (demo Demo, ok bool) {
	index, err := strconv.Atoi(name)
	if err == nil {
		if index < 1 || index > len(Demos) {
			return
		}
		return Demos[index-1], true
	}

	for _, demo = range Demos {
		if strings.EqualFold(demo.Name, name) {
			ok = true
			return
		}
	}

	demo = Demo{}
	return
}
