// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/ezrec/mars/core"
	"github.com/ezrec/mars/emulator"
	"github.com/ezrec/mars/redcode"
	"github.com/ezrec/mars/report"
)

func assemble(asm *redcode.Assembler, player core.Player, path string) (prog *redcode.Program) {
	inf, err := os.Open(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	defer inf.Close()

	prog, err = asm.Parse(player, inf)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	for _, err := range prog.Errors {
		log.Printf("%v: %v", path, err)
	}

	return
}

func main() {
	var seed uint64
	var coreSize uint
	var maxCycle int
	var verbose bool
	var quiet bool
	var width int
	var dump bool

	flag.Uint64Var(&seed, "s", 0, "Random seed for warrior placement (0 for random)")
	flag.UintVar(&coreSize, "c", core.CORE_SIZE, "Core size")
	flag.IntVar(&maxCycle, "m", emulator.MAX_CYCLE, "Cycles before a draw")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&quiet, "q", false, "Omit the core map")
	flag.IntVar(&width, "w", report.MAP_WIDTH, "Core map width")
	flag.BoolVar(&dump, "dump", false, "Dump the final game state")

	flag.Parse()

	if flag.NArg() != 2 {
		log.Fatalf("%v: usage: %v [flags] warrior0.red warrior1.red", os.Args[0], os.Args[0])
	}

	if coreSize == 0 {
		log.Fatalf("%v: core size must be positive", os.Args[0])
	}

	emu := emulator.NewEmulator(coreSize)
	emu.Verbose = verbose
	emu.MaxCycle = maxCycle
	if seed != 0 {
		emu.Rand = rand.New(rand.NewPCG(seed, seed))
	}

	asm := &redcode.Assembler{Verbose: verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	progs := [core.PLAYERS]*redcode.Program{
		assemble(asm, core.PLAYER_A, flag.Arg(0)),
		assemble(asm, core.PLAYER_B, flag.Arg(1)),
	}

	err := emu.Load(progs[core.PLAYER_A].Cells(), progs[core.PLAYER_B].Cells())
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	for done := false; !done; done = emu.Tick() {
		if !verbose {
			continue
		}
		for n, prog := range progs {
			player := core.Player(n)
			ins, ok := prog.Debug(emu.Offset(player))
			if ok {
				log.Printf("%v: %d: %v: %v", flag.Arg(n), emu.Cycle, ins.LineNo, ins.Text)
			} else {
				log.Printf("%v: %d: +%d", flag.Arg(n), emu.Cycle, emu.Offset(player))
			}
		}
	}

	state := emu.State()

	if !quiet {
		err = report.Map(os.Stdout, emu.Mars.Core, width)
		if err != nil {
			log.Fatal(err)
		}
	}

	err = report.Summary(os.Stdout, state)
	if err != nil {
		log.Fatal(err)
	}

	if dump {
		spew.Fdump(os.Stderr, state)
	}
}
