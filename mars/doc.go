// Package mars implements the instruction engine of the Memory Array
// Redcode Simulator.
//
// A Mars holds the shared core and one instruction pointer per player.
// Step executes the instruction under a player's instruction pointer:
// both operand addresses are resolved first, then the opcode is applied.
// An instruction either continues, moving the instruction pointer, or
// aborts the match with an AbortCode attributed to the executing player.
//
// Scheduling the two players, and deciding when a match ends, is the job
// of the emulator package.
package mars
