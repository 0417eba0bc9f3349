package core

import (
	"fmt"
)

// Cell is one addressable unit of the core.
type Cell struct {
	Opcode   Opcode
	ModeA    Mode
	FieldA   int32
	ModeB    Mode
	FieldB   int32
	Occupier Player // Last player to write the cell.
}

// EmptyCell is the content of a freshly reset core: DAT #0, #0, unowned.
var EmptyCell = Cell{Occupier: PLAYER_NONE}

// String disassembles the cell.
func (cell Cell) String() string {
	return fmt.Sprintf("%v %v%d, %v%d", cell.Opcode, cell.ModeA, cell.FieldA, cell.ModeB, cell.FieldB)
}

// Operand returns the (mode, field) pair of operand 0 (A) or 1 (B).
func (cell Cell) Operand(n int) (mode Mode, field int32) {
	if n == 0 {
		return cell.ModeA, cell.FieldA
	}
	return cell.ModeB, cell.FieldB
}
