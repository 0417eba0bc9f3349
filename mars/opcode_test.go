package mars

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mars/core"
)

const testSize = 100

// load places cells at ip, and points player at it.
func load(m *Mars, player core.Player, ip int, cells ...core.Cell) {
	for n, cell := range cells {
		m.Core.Write(ip+n, cell)
	}
	m.Ip[player] = m.Core.Wrap(ip)
}

func ins(op core.Opcode, modeA core.Mode, fieldA int32, modeB core.Mode, fieldB int32) core.Cell {
	return core.Cell{Opcode: op, ModeA: modeA, FieldA: fieldA, ModeB: modeB, FieldB: fieldB, Occupier: core.PLAYER_NONE}
}

var (
	imm = core.MODE_IMMEDIATE
	rel = core.MODE_RELATIVE
	ind = core.MODE_INDIRECT
)

func TestDat(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewPCG(3, 4))

	for range 100 {
		m := NewMars(testSize)
		for n := range m.Core.Cell {
			m.Core.Cell[n] = ins(core.Opcode(rng.IntN(8)), core.Mode(rng.IntN(3)), rng.Int32N(200)-100,
				core.Mode(rng.IntN(3)), rng.Int32N(200)-100)
		}

		player := core.Player(rng.IntN(core.PLAYERS))
		ip := rng.IntN(testSize)
		dat := ins(core.OP_DAT, core.Mode(rng.IntN(3)), rng.Int32(), core.Mode(rng.IntN(3)), rng.Int32())
		load(m, player, ip, dat)
		before := append([]core.Cell(nil), m.Core.Cell...)

		code := m.Step(player)
		assert.Equal(ABORT_DAT_EXECUTED, code)
		assert.Equal(ip, m.Ip[player])
		assert.Equal(before, m.Core.Cell)
	}
}

func TestMov(t *testing.T) {
	assert := assert.New(t)

	// Whole cell copy: the imp.
	m := NewMars(testSize)
	load(m, core.PLAYER_A, 99, ins(core.OP_MOV, rel, 0, rel, 1))
	code := m.Step(core.PLAYER_A)
	assert.Equal(ABORT_NONE, code)
	assert.Equal(0, m.Ip[core.PLAYER_A])
	expected := ins(core.OP_MOV, rel, 0, rel, 1)
	expected.Occupier = core.PLAYER_A
	assert.Equal(expected, m.Core.Cell[0])

	// Immediate A: B field of the target becomes the instruction's A field.
	m = NewMars(testSize)
	load(m, core.PLAYER_B, 10, ins(core.OP_MOV, imm, 42, rel, 1), ins(core.OP_JMP, rel, 7, rel, 9))
	code = m.Step(core.PLAYER_B)
	assert.Equal(ABORT_NONE, code)
	assert.Equal(11, m.Ip[core.PLAYER_B])
	assert.Equal(core.Cell{Opcode: core.OP_JMP, ModeA: rel, FieldA: 7, ModeB: rel, FieldB: 42, Occupier: core.PLAYER_B}, m.Core.Cell[11])

	// Immediate B: B field of the target becomes the source's B field.
	m = NewMars(testSize)
	load(m, core.PLAYER_A, 50, ins(core.OP_MOV, rel, 2, imm, 0), ins(core.OP_DAT, imm, 0, imm, 0), ins(core.OP_DAT, imm, 5, imm, 6))
	code = m.Step(core.PLAYER_A)
	assert.Equal(ABORT_NONE, code)
	assert.Equal(51, m.Ip[core.PLAYER_A])
	assert.Equal(core.Cell{Opcode: core.OP_MOV, ModeA: rel, FieldA: 2, ModeB: imm, FieldB: 6, Occupier: core.PLAYER_A}, m.Core.Cell[50])

	// Indirect B: bomb through a pointer.
	m = NewMars(testSize)
	load(m, core.PLAYER_A, 0, ins(core.OP_MOV, rel, 2, ind, 1), ins(core.OP_DAT, imm, 0, imm, -5), ins(core.OP_DAT, imm, 3, imm, 3))
	code = m.Step(core.PLAYER_A)
	assert.Equal(ABORT_NONE, code)
	bomb := ins(core.OP_DAT, imm, 3, imm, 3)
	bomb.Occupier = core.PLAYER_A
	assert.Equal(bomb, m.Core.Cell[96])
}

func TestAddSub(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		ins    core.Cell
		target int32
		result int32
	}){
		{ins(core.OP_ADD, imm, 4, rel, 1), 10, 14},
		{ins(core.OP_ADD, rel, 2, rel, 1), 10, 13},
		{ins(core.OP_SUB, imm, 4, rel, 1), 10, 6},
		{ins(core.OP_SUB, rel, 2, rel, 1), 10, 7},
		{ins(core.OP_ADD, imm, 1, rel, 1), math.MaxInt32, math.MinInt32},
		{ins(core.OP_SUB, imm, 1, rel, 1), math.MinInt32, math.MaxInt32},
		{ins(core.OP_ADD, imm, -1, rel, 1), math.MinInt32, math.MaxInt32},
	}

	for _, entry := range table {
		m := NewMars(testSize)
		load(m, core.PLAYER_B, 98, entry.ins, ins(core.OP_DAT, imm, 0, imm, entry.target), ins(core.OP_DAT, imm, 0, imm, 3))
		code := m.Step(core.PLAYER_B)
		assert.Equal(ABORT_NONE, code, entry.ins)
		assert.Equal(99, m.Ip[core.PLAYER_B], entry.ins)
		assert.Equal(entry.result, m.Core.Cell[99].FieldB, entry.ins)
		assert.Equal(core.PLAYER_B, m.Core.Cell[99].Occupier, entry.ins)
		assert.Equal(int32(0), m.Core.Cell[99].FieldA, entry.ins)
	}
}

func TestJmp(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		ins  core.Cell
		next int
	}){
		{ins(core.OP_JMP, rel, 0, rel, 0), 20},
		{ins(core.OP_JMP, rel, -25, rel, 0), 95},
		{ins(core.OP_JMP, imm, 3, imm, 0), 23},
		{ins(core.OP_JMP, imm, -21, rel, 0), 99},
		{ins(core.OP_JMP, ind, 1, rel, 0), 31},
	}

	for _, entry := range table {
		m := NewMars(testSize)
		load(m, core.PLAYER_A, 20, entry.ins, ins(core.OP_DAT, imm, 0, imm, 10))
		code := m.Step(core.PLAYER_A)
		assert.Equal(ABORT_NONE, code, entry.ins)
		assert.Equal(entry.next, m.Ip[core.PLAYER_A], entry.ins)
	}
}

func TestJmz(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewPCG(5, 6))

	for range 500 {
		modeA := core.Mode(rng.IntN(3))
		modeB := core.Mode(rng.IntN(2) + 1)
		fieldA := rng.Int32N(400) - 200
		fieldB := rng.Int32N(400) - 200
		ip := rng.IntN(testSize)

		// ok is false when the B target cannot be set without moving it.
		setup := func(op core.Opcode, target int32) (m *Mars, ok bool) {
			m = NewMars(testSize)
			for n := range m.Core.Cell {
				m.Core.Cell[n].FieldB = int32(n%7) - 3
			}
			load(m, core.PLAYER_A, ip, ins(op, modeA, fieldA, modeB, fieldB))
			bAddr, _ := m.Resolve(core.PLAYER_A, modeB, fieldB)
			if bAddr == ip {
				return
			}
			m.Core.Cell[bAddr].FieldB = target
			again, _ := m.Resolve(core.PLAYER_A, modeB, fieldB)
			ok = again == bAddr
			return
		}

		jmp, ok := setup(core.OP_JMP, 0)
		if !ok {
			continue
		}
		assert.Equal(ABORT_NONE, jmp.Step(core.PLAYER_A))

		zero, _ := setup(core.OP_JMZ, 0)
		assert.Equal(ABORT_NONE, zero.Step(core.PLAYER_A))
		assert.Equal(jmp.Ip[core.PLAYER_A], zero.Ip[core.PLAYER_A])

		nonzero, ok := setup(core.OP_JMZ, 1+rng.Int32N(100))
		if !ok {
			continue
		}
		assert.Equal(ABORT_NONE, nonzero.Step(core.PLAYER_A))
		assert.Equal((ip+1)%testSize, nonzero.Ip[core.PLAYER_A])
	}
}

func TestDjz(t *testing.T) {
	assert := assert.New(t)

	// Counter reaches zero: jump.
	m := NewMars(testSize)
	load(m, core.PLAYER_A, 0, ins(core.OP_DJZ, rel, 5, rel, 1), ins(core.OP_DAT, imm, 0, imm, 1))
	assert.Equal(ABORT_NONE, m.Step(core.PLAYER_A))
	assert.Equal(5, m.Ip[core.PLAYER_A])
	assert.Equal(int32(0), m.Core.Cell[1].FieldB)
	assert.Equal(core.PLAYER_A, m.Core.Cell[1].Occupier)

	// Counter not zero: continue.
	m = NewMars(testSize)
	load(m, core.PLAYER_B, 0, ins(core.OP_DJZ, rel, 5, rel, 1), ins(core.OP_DAT, imm, 0, imm, 3))
	assert.Equal(ABORT_NONE, m.Step(core.PLAYER_B))
	assert.Equal(1, m.Ip[core.PLAYER_B])
	assert.Equal(int32(2), m.Core.Cell[1].FieldB)
	assert.Equal(core.PLAYER_B, m.Core.Cell[1].Occupier)

	// Wraparound.
	m = NewMars(testSize)
	load(m, core.PLAYER_A, 0, ins(core.OP_DJZ, rel, 5, rel, 1), ins(core.OP_DAT, imm, 0, imm, math.MinInt32))
	assert.Equal(ABORT_NONE, m.Step(core.PLAYER_A))
	assert.Equal(1, m.Ip[core.PLAYER_A])
	assert.Equal(int32(math.MaxInt32), m.Core.Cell[1].FieldB)

	// Immediate B decrements the instruction itself.
	m = NewMars(testSize)
	load(m, core.PLAYER_A, 0, ins(core.OP_DJZ, imm, 7, imm, 1))
	assert.Equal(ABORT_NONE, m.Step(core.PLAYER_A))
	assert.Equal(7, m.Ip[core.PLAYER_A])
	assert.Equal(int32(0), m.Core.Cell[0].FieldB)
}

func TestCmp(t *testing.T) {
	assert := assert.New(t)

	const ip = 10

	// Source at ip+1 is always (A=1, B=2).
	source := ins(core.OP_DAT, imm, 1, imm, 2)

	for _, equalA := range []bool{true, false} {
		for _, equalB := range []bool{true, false} {
			other := ins(core.OP_DAT, imm, 1, imm, 2)
			if !equalA {
				other.FieldA = 9
			}
			if !equalB {
				other.FieldB = 8
			}

			table := [](struct {
				name string
				ins  core.Cell
				skip bool
			}){
				// Both fields of both cells compared.
				{"rel,rel", ins(core.OP_CMP, rel, 1, rel, 2), !equalA || !equalB},
				{"ind,rel", ins(core.OP_CMP, ind, 3, rel, 2), !equalA || !equalB},
				// Source B field compared to the instruction's B field.
				{"rel,imm", ins(core.OP_CMP, rel, 1, imm, other.FieldB), other.FieldB != source.FieldB},
				// Instruction's A field compared to other's B field.
				{"imm,rel", ins(core.OP_CMP, imm, source.FieldB, rel, 2), !equalB},
				// Instruction's A field compared to its own B field.
				{"imm,imm", ins(core.OP_CMP, imm, other.FieldA, imm, source.FieldA), !equalA},
			}

			for _, entry := range table {
				m := NewMars(testSize)
				// ip+3 points back at the source for the indirect case.
				load(m, core.PLAYER_A, ip, entry.ins, source, other, ins(core.OP_DAT, imm, 0, imm, -2))
				assert.Equal(ABORT_NONE, m.Step(core.PLAYER_A), entry.name)

				next := ip + 1
				if entry.skip {
					next = ip + 2
				}
				assert.Equal(next, m.Ip[core.PLAYER_A], "%v equalA:%v equalB:%v", entry.name, equalA, equalB)
			}
		}
	}
}

func TestStep_IllegalMode(t *testing.T) {
	assert := assert.New(t)

	for _, bad := range []core.Cell{
		ins(core.OP_MOV, core.Mode(3), 0, rel, 1),
		ins(core.OP_MOV, rel, 0, core.Mode(7), 1),
	} {
		m := NewMars(testSize)
		load(m, core.PLAYER_B, 40, bad)
		before := append([]core.Cell(nil), m.Core.Cell...)
		assert.Equal(ABORT_ILLEGAL_MODE, m.Step(core.PLAYER_B))
		assert.Equal(40, m.Ip[core.PLAYER_B])
		assert.Equal(before, m.Core.Cell)
	}
}

func TestStep_IllegalOpcode(t *testing.T) {
	assert := assert.New(t)

	m := NewMars(testSize)
	load(m, core.PLAYER_A, 3, ins(core.Opcode(8), rel, 0, rel, 1))
	assert.Equal(ABORT_ILLEGAL_OPCODE, m.Step(core.PLAYER_A))
	assert.Equal(3, m.Ip[core.PLAYER_A])
}
