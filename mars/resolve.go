package mars

import (
	"github.com/ezrec/mars/core"
)

// Resolve computes the effective address of a (mode, field) operand of
// the instruction under player's instruction pointer.
//
//   - Immediate: the instruction itself.
//   - Relative: the instruction pointer plus field.
//   - Indirect: the relative cell, plus that cell's B field.
//
// Any other mode aborts with ABORT_ILLEGAL_MODE.
func (m *Mars) Resolve(player core.Player, mode core.Mode, field int32) (addr int, code AbortCode) {
	c := m.Core
	ip := m.Ip[player]

	switch mode {
	case core.MODE_IMMEDIATE:
		addr = c.Wrap(ip)
	case core.MODE_RELATIVE:
		addr = c.Wrap(ip + int(field))
	case core.MODE_INDIRECT:
		ind := c.Wrap(ip + int(field))
		addr = c.Wrap(ind + int(c.Cell[ind].FieldB))
	default:
		code = ABORT_ILLEGAL_MODE
	}

	return
}
