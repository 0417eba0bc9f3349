// Package core implements the circular memory shared by two warriors.
//
// The core is a fixed array of N cells. Every cell holds an opcode, two
// (mode, field) operand pairs and the id of the player that last wrote it.
// All addresses are taken modulo N, so the core has no beginning or end.
package core
