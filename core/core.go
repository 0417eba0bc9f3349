// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package core

import (
	"fmt"
	"iter"
	"maps"
)

// CORE_SIZE is the default number of cells in the core.
const CORE_SIZE = 8000

// Core is the circular memory array.
type Core struct {
	Cell []Cell
}

// NewCore creates a new, reset, core of count cells.
func NewCore(count uint) (c *Core) {
	if count == 0 {
		panic("core: zero sized core")
	}

	c = &Core{
		Cell: make([]Cell, count),
	}

	c.Reset()

	return
}

// Reset fills the core with unowned DAT #0, #0 cells.
func (c *Core) Reset() {
	for n := range c.Cell {
		c.Cell[n] = EmptyCell
	}
}

// Size is the number of cells.
func (c *Core) Size() int {
	return len(c.Cell)
}

// Wrap maps any address, negative or past the end, into [0, Size()).
func (c *Core) Wrap(addr int) int {
	size := len(c.Cell)
	addr %= size
	if addr < 0 {
		addr += size
	}
	return addr
}

// Read returns a copy of the cell at addr.
func (c *Core) Read(addr int) Cell {
	return c.Cell[c.Wrap(addr)]
}

// Write replaces the cell at addr. The caller sets the occupier.
func (c *Core) Write(addr int, cell Cell) {
	c.Cell[c.Wrap(addr)] = cell
}

// At returns the cell at addr for in-place field updates.
func (c *Core) At(addr int) *Cell {
	return &c.Cell[c.Wrap(addr)]
}

// Occupancy iterates over the occupier of every cell, in address order.
func (c *Core) Occupancy() iter.Seq2[int, Player] {
	return func(yield func(addr int, p Player) bool) {
		for n := range c.Cell {
			if !yield(n, c.Cell[n].Occupier) {
				return
			}
		}
	}
}

// Defines for the assembler.
func (c *Core) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"CORESIZE": fmt.Sprintf("%d", len(c.Cell)),
	})
}
