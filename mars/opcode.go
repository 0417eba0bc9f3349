package mars

import (
	"github.com/ezrec/mars/core"
)

// execute applies the fetched instruction ins, found at ip, with
// resolved operand addresses a and b. It returns the next instruction
// pointer for player, or the reason the player aborted.
func execute(c *core.Core, player core.Player, ins core.Cell, ip, a, b int) (next int, code AbortCode) {
	switch ins.Opcode {
	case core.OP_DAT:
		code = ABORT_DAT_EXECUTED
	case core.OP_MOV:
		next = opMov(c, player, ins, ip, a, b)
	case core.OP_ADD:
		next = opAdd(c, player, ins, ip, a, b)
	case core.OP_SUB:
		next = opSub(c, player, ins, ip, a, b)
	case core.OP_JMP:
		next = opJmp(c, ins, ip, a)
	case core.OP_JMZ:
		next = opJmz(c, ins, ip, a, b)
	case core.OP_DJZ:
		next = opDjz(c, player, ins, ip, a, b)
	case core.OP_CMP:
		next = opCmp(c, ins, ip, a, b)
	default:
		code = ABORT_ILLEGAL_OPCODE
	}

	return
}

// operandA is the A field of the A cell for an immediate A operand,
// otherwise its B field.
func operandA(c *core.Core, ins core.Cell, a int) int32 {
	if ins.ModeA == core.MODE_IMMEDIATE {
		return c.Cell[a].FieldA
	}
	return c.Cell[a].FieldB
}

func opMov(c *core.Core, player core.Player, ins core.Cell, ip, a, b int) int {
	switch {
	case ins.ModeA == core.MODE_IMMEDIATE:
		c.Cell[b].FieldB = c.Cell[a].FieldA
	case ins.ModeB == core.MODE_IMMEDIATE:
		c.Cell[b].FieldB = c.Cell[a].FieldB
	default:
		c.Cell[b] = c.Cell[a]
	}
	c.Cell[b].Occupier = player

	return c.Wrap(ip + 1)
}

func opAdd(c *core.Core, player core.Player, ins core.Cell, ip, a, b int) int {
	c.Cell[b].FieldB += operandA(c, ins, a)
	c.Cell[b].Occupier = player

	return c.Wrap(ip + 1)
}

func opSub(c *core.Core, player core.Player, ins core.Cell, ip, a, b int) int {
	c.Cell[b].FieldB -= operandA(c, ins, a)
	c.Cell[b].Occupier = player

	return c.Wrap(ip + 1)
}

func opJmp(c *core.Core, ins core.Cell, ip, a int) int {
	if ins.ModeA == core.MODE_IMMEDIATE {
		return c.Wrap(ip + int(c.Cell[a].FieldA))
	}
	return a
}

func opJmz(c *core.Core, ins core.Cell, ip, a, b int) int {
	if c.Cell[b].FieldB == 0 {
		return opJmp(c, ins, ip, a)
	}
	return c.Wrap(ip + 1)
}

func opDjz(c *core.Core, player core.Player, ins core.Cell, ip, a, b int) int {
	c.Cell[b].FieldB -= 1
	c.Cell[b].Occupier = player

	return opJmz(c, ins, ip, a, b)
}

func opCmp(c *core.Core, ins core.Cell, ip, a, b int) int {
	var skip bool

	ca := c.Cell[a]
	cb := c.Cell[b]
	switch {
	case ins.ModeA != core.MODE_IMMEDIATE && ins.ModeB == core.MODE_IMMEDIATE:
		skip = ca.FieldB != cb.FieldB
	case ins.ModeA == core.MODE_IMMEDIATE:
		skip = ca.FieldA != cb.FieldB
	default:
		skip = ca.FieldA != cb.FieldA || ca.FieldB != cb.FieldB
	}

	if skip {
		return c.Wrap(ip + 2)
	}
	return c.Wrap(ip + 1)
}
