// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mars

import (
	"log"

	"github.com/ezrec/mars/core"
)

// Mars is the execution context for the two warriors sharing a core.
type Mars struct {
	Verbose bool // Set to enable per-instruction disassembly logging.

	Core *core.Core              // Shared core.
	Ip   [core.PLAYERS]int       // Instruction pointer of each player.
	Last [core.PLAYERS]core.Cell // Last instruction executed by each player.
}

// NewMars creates a new engine with a core of count cells.
func NewMars(count uint) (m *Mars) {
	m = &Mars{
		Core: core.NewCore(count),
	}

	return
}

// Reset clears the core and the instruction pointers.
func (m *Mars) Reset() {
	if m.Verbose {
		log.Printf("mars: reset")
	}

	m.Core.Reset()
	clear(m.Ip[:])
	clear(m.Last[:])
}

// Step executes the instruction under player's instruction pointer.
// A non-zero AbortCode means the player has lost the match.
func (m *Mars) Step(player core.Player) (code AbortCode) {
	ip := m.Core.Wrap(m.Ip[player])
	m.Ip[player] = ip
	ins := m.Core.Read(ip)
	m.Last[player] = ins

	if m.Verbose {
		log.Printf("mars: %v [%d]: %v", player, ip, ins)
	}

	var addr [2]int
	for n := range addr {
		mode, field := ins.Operand(n)
		addr[n], code = m.Resolve(player, mode, field)
		if code != ABORT_NONE {
			if m.Verbose {
				log.Printf("mars: %v [%d]: %v", player, ip, code)
			}
			return
		}
	}

	var next int
	next, code = execute(m.Core, player, ins, ip, addr[0], addr[1])
	if code != ABORT_NONE {
		if m.Verbose {
			log.Printf("mars: %v [%d]: %v", player, ip, code)
		}
		return
	}

	m.Ip[player] = next

	return
}
