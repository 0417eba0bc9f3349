// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator loads two warriors into a shared core and runs the match.
package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"math/rand/v2"

	"github.com/ezrec/mars/core"
	"github.com/ezrec/mars/internal"
	"github.com/ezrec/mars/mars"
)

const (
	MAX_CYCLE = 80000 // Cycles before a match is a draw.
)

// Status of a match.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_RUNNING = Status(0) // Running
	STATUS_ABORTED = Status(1) // Aborted
	STATUS_DRAWN   = Status(2) // Drawn
)

// GameState is a snapshot of a match.
type GameState struct {
	Cycle  int                     // Completed cycles.
	Ip     [core.PLAYERS]int       // Instruction pointer of each player.
	Status Status                  // Match status.
	Abort  mars.AbortCode          // Reason the match stopped.
	Player core.Player             // Player that caused the abort.
	Last   [core.PLAYERS]core.Cell // Last instruction of each player.
}

// Loser returns the losing player, or PLAYER_NONE if there is none.
func (gs GameState) Loser() core.Player {
	if gs.Status == STATUS_ABORTED && gs.Abort.Fatal() {
		return gs.Player
	}
	return core.PLAYER_NONE
}

// Emulator state. Engine + scheduler.
type Emulator struct {
	Verbose    bool       // If set, enables verbose logging.
	*mars.Mars            // Reference to the engine.
	MaxCycle   int        // Cycles before a draw.
	Rand       *rand.Rand // Placement randomness. If nil, the global source.

	Origin [core.PLAYERS]int // Load address of each warrior.

	Cycle  int            // Completed cycles.
	Status Status         // Match status.
	Abort  mars.AbortCode // Reason the match stopped.
	Player core.Player    // Player that caused the abort.
}

// NewEmulator creates a new emulator with a core of count cells.
func NewEmulator(count uint) (emu *Emulator) {
	emu = &Emulator{
		Mars:     mars.NewMars(count),
		MaxCycle: MAX_CYCLE,
	}

	emu.Reset()

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		maps.All(map[string]string{
			"MAXCYCLE": fmt.Sprintf("%d", emu.MaxCycle),
		}),
		emu.Mars.Core.Defines(),
	)
}

// Reset clears the core and starts a new match at cycle 0.
func (emu *Emulator) Reset() {
	emu.Mars.Verbose = emu.Verbose
	emu.Mars.Reset()

	clear(emu.Origin[:])
	emu.Cycle = 0
	emu.Status = STATUS_RUNNING
	emu.Abort = mars.ABORT_NONE
	emu.Player = core.PLAYER_NONE
}

func (emu *Emulator) intN(n int) int {
	if emu.Rand == nil {
		return rand.IntN(n)
	}
	return emu.Rand.IntN(n)
}

// Load resets the emulator, and places the two warriors at random,
// non-overlapping, locations in the core. Each warrior's instruction
// pointer is set to its first cell.
func (emu *Emulator) Load(warrior0, warrior1 []core.Cell) (err error) {
	c := emu.Mars.Core
	size := c.Size()

	if len(warrior0)+len(warrior1) > size {
		err = &ErrLoad{
			Size: [2]int{len(warrior0), len(warrior1)},
			Core: size,
			Err:  ErrWarriorSize,
		}
		return
	}

	emu.Reset()

	// The second warrior starts after the first, and ends before the
	// first wraps back around.
	ip0 := emu.intN(size)
	ip1 := c.Wrap(ip0 + len(warrior0) + emu.intN(size-len(warrior0)-len(warrior1)+1))

	ips := [core.PLAYERS]int{ip0, ip1}
	for player, warrior := range [core.PLAYERS][]core.Cell{warrior0, warrior1} {
		ip := ips[player]
		for n, cell := range warrior {
			c.Write(ip+n, cell)
		}
		emu.Mars.Ip[player] = ip
		emu.Origin[player] = ip

		if emu.Verbose {
			log.Printf("emulator: player %v loaded at %d size %d", core.Player(player), ip, len(warrior))
		}
	}

	return
}

// Offset returns the distance of player's instruction pointer from the
// start of its warrior, for mapping back to source lines.
func (emu *Emulator) Offset(player core.Player) int {
	return emu.Mars.Core.Wrap(emu.Mars.Ip[player] - emu.Origin[player])
}

// State returns a snapshot of the match.
func (emu *Emulator) State() GameState {
	return GameState{
		Cycle:  emu.Cycle,
		Ip:     emu.Mars.Ip,
		Status: emu.Status,
		Abort:  emu.Abort,
		Player: emu.Player,
		Last:   emu.Mars.Last,
	}
}

// Tick runs one cycle: one instruction of each player, in order.
// An abort by the first player ends the match before the second player
// runs. Returns true once the match is over.
func (emu *Emulator) Tick() (done bool) {
	if emu.Status != STATUS_RUNNING {
		return true
	}

	if emu.Cycle >= emu.MaxCycle {
		emu.draw()
		return true
	}

	// Set engine verbosity
	emu.Mars.Verbose = emu.Verbose

	for n := range core.PLAYERS {
		player := core.Player(n)
		code := emu.Mars.Step(player)
		if code != mars.ABORT_NONE {
			emu.Status = STATUS_ABORTED
			emu.Abort = code
			emu.Player = player
			if emu.Verbose {
				log.Printf("emulator: cycle %d: player %v: %v", emu.Cycle, player, code)
			}
			return true
		}
	}

	emu.Cycle++
	if emu.Cycle >= emu.MaxCycle {
		emu.draw()
		return true
	}

	return false
}

func (emu *Emulator) draw() {
	emu.Status = STATUS_DRAWN
	emu.Abort = mars.ABORT_DRAW
	if emu.Verbose {
		log.Printf("emulator: cycle %d: %v", emu.Cycle, emu.Abort)
	}
}

// Run ticks until the match is over.
func (emu *Emulator) Run() GameState {
	for !emu.Tick() {
	}

	return emu.State()
}
