package redcode

import (
	"github.com/ezrec/mars/core"
)

// Instruction is a single assembled source line.
type Instruction struct {
	LineNo int       // Source line number.
	Text   string    // Source text, comment removed.
	Cell   core.Cell // Assembled cell.
}

// Program is an assembled warrior.
type Program struct {
	Player       core.Player   // Owner of the warrior.
	Instructions []Instruction // Assembled instructions, in load order.
	Errors       []error       // Skipped lines, as *ErrSyntax.
}

// Len is the number of cells in the warrior.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// Cells returns the warrior's cells, in load order.
func (prog *Program) Cells() (cells []core.Cell) {
	cells = make([]core.Cell, 0, len(prog.Instructions))
	for _, ins := range prog.Instructions {
		cells = append(cells, ins.Cell)
	}

	return
}

// Debug returns the source instruction for a warrior offset.
func (prog *Program) Debug(offset int) (ins *Instruction, ok bool) {
	if offset < 0 || offset >= len(prog.Instructions) {
		return
	}

	return &prog.Instructions[offset], true
}
