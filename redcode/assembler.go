// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package redcode

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/mars/core"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

var (
	mnemonicRe = regexp.MustCompile(`^\s*([A-Za-z]+)`)
	operandRe  = regexp.MustCompile(`^\s*([#$@])?\s*([-+]?\d+)\s*(?:,\s*([#$@])?\s*([-+]?\d+))?\s*$`)
	digitRe    = regexp.MustCompile(`\d`)
	exprRe     = regexp.MustCompile(`\$\([^\$]*\)`)
)

// Trace is the assembler's record of one instruction line.
type Trace struct {
	LineNo   int       // Source line number.
	Line     string    // Source text, comment removed.
	Mnemonic string    // Mnemonic, as written.
	Operands string    // Operand text, after $(...) expansion.
	Cell     core.Cell // Assembled cell, if Err is nil.
	Err      error     // Reason the line was skipped.
}

// String formats the trace for logging.
func (tr Trace) String() string {
	if tr.Err != nil {
		return fmt.Sprintf("%d: %v %v: %v", tr.LineNo, tr.Mnemonic, tr.Operands, tr.Err)
	}
	cell := tr.Cell
	return fmt.Sprintf("%d: %v, %v, %d, %v, %d",
		tr.LineNo, cell.Opcode, cell.ModeA, cell.FieldA, cell.ModeB, cell.FieldB)
}

// Assembler is a single pass assembler for warriors.
type Assembler struct {
	Verbose bool              // If set, verbosely logs the assembler actions.
	Trace   func(trace Trace) // If set, called for every instruction line.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates visible to $(...) expressions.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "redcode"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, err := strconv.ParseInt(str, 0, 64)
		if err != nil {
			// Only integer equates are visible.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrExpression{Expr: expr, Err: err}
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrExpression{Expr: expr}
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = &ErrExpression{Expr: expr, Err: ErrFieldRange}
		return
	}
	return
}

// expand replaces every $(...) expression with its decimal value.
func (asm *Assembler) expand(text string) (line string, err error) {
	line = exprRe.ReplaceAllStringFunc(text, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return strconv.FormatInt(value, 10)
	})

	return
}

// parseField parses a signed decimal field.
func parseField(word string) (value int32, err error) {
	v64, err := strconv.ParseInt(word, 10, 32)
	if err != nil {
		err = ErrFieldRange
		return
	}

	value = int32(v64)
	return
}

// parseOperands fills in the operand modes and fields of cell.
func (asm *Assembler) parseOperands(text string, cell *core.Cell) (err error) {
	if !digitRe.MatchString(text) {
		err = ErrFieldMissing
		return
	}

	match := operandRe.FindStringSubmatch(text)
	if match == nil {
		err = ErrOperandSyntax
		return
	}

	cell.ModeA, _ = core.LookupMode(match[1])
	cell.FieldA, err = parseField(match[2])
	if err != nil {
		return
	}

	if len(match[4]) == 0 {
		// One operand shorthand.
		cell.ModeB = cell.ModeA
		cell.FieldB = cell.FieldA
		return
	}

	cell.ModeB, _ = core.LookupMode(match[3])
	cell.FieldB, err = parseField(match[4])

	return
}

// parseLine assembles a single line. Lines without a known mnemonic are
// not instructions, and return ok as false.
func (asm *Assembler) parseLine(player core.Player, line string, lineno int) (trace Trace, ok bool) {
	asm.Equate["LINENO"] = strconv.Itoa(lineno)

	match := mnemonicRe.FindStringSubmatchIndex(line)
	if match == nil {
		return
	}

	mnemonic := line[match[2]:match[3]]
	op, ok := core.LookupOpcode(mnemonic)
	if !ok {
		return
	}

	trace = Trace{
		LineNo:   lineno,
		Line:     strings.TrimSpace(line),
		Mnemonic: mnemonic,
		Operands: strings.TrimSpace(line[match[3]:]),
	}

	operands, err := asm.expand(line[match[3]:])
	if err != nil {
		trace.Err = err
		return
	}
	trace.Operands = strings.TrimSpace(operands)

	cell := core.Cell{
		Opcode:   op,
		Occupier: player,
	}
	trace.Err = asm.parseOperands(operands, &cell)
	if trace.Err == nil {
		trace.Cell = cell
	}

	return
}

// Parse assembles an input stream into the warrior of player.
// Lines that cannot be assembled are skipped, and recorded in prog.Errors;
// err is only set when the input cannot be read.
func (asm *Assembler) Parse(player core.Player, input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	prog = &Program{Player: player}

	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("redcode: %v: %v", lineno, text)
		}

		line, _, _ := strings.Cut(text, ";")

		trace, ok := asm.parseLine(player, line, lineno)
		if !ok {
			continue
		}

		if asm.Verbose {
			log.Printf("redcode: %v", trace)
		}
		if asm.Trace != nil {
			asm.Trace(trace)
		}

		if trace.Err != nil {
			prog.Errors = append(prog.Errors, &ErrSyntax{LineNo: lineno, Line: trace.Line, Err: trace.Err})
			continue
		}

		prog.Instructions = append(prog.Instructions, Instruction{
			LineNo: lineno,
			Text:   trace.Line,
			Cell:   trace.Cell,
		})
	}

	err = scanner.Err()

	return
}
