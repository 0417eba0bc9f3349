package core

import (
	"strings"
)

// Opcode is a Redcode instruction type.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode,Mode
const (
	OP_DAT = Opcode(0) // DAT
	OP_MOV = Opcode(1) // MOV
	OP_ADD = Opcode(2) // ADD
	OP_SUB = Opcode(3) // SUB
	OP_JMP = Opcode(4) // JMP
	OP_JMZ = Opcode(5) // JMZ
	OP_DJZ = Opcode(6) // DJZ
	OP_CMP = Opcode(7) // CMP
)

// Valid returns true if the opcode is one of the eight instructions.
func (op Opcode) Valid() bool {
	return op >= OP_DAT && op <= OP_CMP
}

// LookupOpcode finds the opcode for a case-insensitive mnemonic.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	mnemonic = strings.ToUpper(mnemonic)
	for op = OP_DAT; op.Valid(); op++ {
		if op.String() == mnemonic {
			ok = true
			return
		}
	}
	op = OP_DAT
	return
}

// Mode is an operand addressing mode.
type Mode int

const (
	MODE_IMMEDIATE = Mode(0) // #
	MODE_RELATIVE  = Mode(1) // $
	MODE_INDIRECT  = Mode(2) // @
)

// Valid returns true for the three addressing modes.
func (mode Mode) Valid() bool {
	return mode >= MODE_IMMEDIATE && mode <= MODE_INDIRECT
}

// LookupMode finds the mode for a sigil. An empty sigil is relative.
func LookupMode(sigil string) (mode Mode, ok bool) {
	if len(sigil) == 0 {
		return MODE_RELATIVE, true
	}
	for mode = MODE_IMMEDIATE; mode.Valid(); mode++ {
		if mode.String() == sigil {
			ok = true
			return
		}
	}
	mode = MODE_IMMEDIATE
	return
}

// Player identifies a warrior, or no warrior at all.
type Player int

const (
	PLAYER_NONE = Player(-1) // Unowned cell, or no loser.
	PLAYER_A    = Player(0)  // First warrior, always scheduled first.
	PLAYER_B    = Player(1)  // Second warrior.
)

// PLAYERS is the number of warriors in a match.
const PLAYERS = 2

// String returns the single letter used for a player in reports.
func (p Player) String() string {
	switch p {
	case PLAYER_A:
		return "A"
	case PLAYER_B:
		return "B"
	default:
		return "_"
	}
}
