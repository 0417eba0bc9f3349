// Package redcode implements the assembler for the Redcode subset run by mars.
//
// A source file holds one instruction per line:
//
//	MOV #0, @-2   ; comment
//
// A three letter mnemonic (DAT, MOV, ADD, SUB, JMP, JMZ, DJZ, CMP, in any
// case) is followed by an A operand and an optional, comma separated, B
// operand. Each operand is an optional mode sigil ('#' immediate, '$'
// relative, '@' indirect; relative if omitted) and a signed decimal number.
// With a single operand, the B operand is a copy of the A operand.
//
// Lines that do not start with a known mnemonic are ignored. Instruction
// lines that cannot be parsed are skipped, and the error is recorded in
// the Program.
//
// Compile time expressions may be written as $(expr), and are evaluated
// as Starlark integer expressions. Predefined names (CORESIZE, MAXCYCLE,
// LINENO, ...) are available to the expression.
package redcode
