// Package report renders the end of a match: a map of which player last
// wrote each cell of the core, and a summary of how the match ended.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/mars/core"
	"github.com/ezrec/mars/emulator"
	"github.com/ezrec/mars/translate"
)

const (
	MAP_WIDTH = 80 // Default cells per row of the core map.
)

// Map writes the occupancy map of c to w, width cells per row.
// Each row starts with the address of its first cell.
func Map(w io.Writer, c *core.Core, width int) (err error) {
	if width <= 0 {
		width = MAP_WIDTH
	}

	err = translate.Fprint(w, "Core Map:\n")
	if err != nil {
		return
	}

	var row strings.Builder
	flush := func() (err error) {
		if row.Len() == 0 {
			return
		}
		row.WriteByte('\n')
		_, err = io.WriteString(w, row.String())
		row.Reset()
		return
	}

	for addr, player := range c.Occupancy() {
		if addr%width == 0 {
			err = flush()
			if err != nil {
				return
			}
			fmt.Fprintf(&row, "%5d:", addr)
		}
		row.WriteString(player.String())
	}

	err = flush()

	return
}

// Summary writes the final state of a match to w. A loser is only named
// when a player caused the abort; a draw has none.
func Summary(w io.Writer, state emulator.GameState) (err error) {
	err = translate.Fprint(w, "Done: %s\n", state.Abort.String())
	if err != nil {
		return
	}

	if loser := state.Loser(); loser != core.PLAYER_NONE {
		err = translate.Fprint(w, "Loser: %s\n", loser.String())
		if err != nil {
			return
		}
	}

	err = translate.Fprint(w, "IP: A@%s, B@%s\n",
		strconv.Itoa(state.Ip[core.PLAYER_A]),
		strconv.Itoa(state.Ip[core.PLAYER_B]))
	if err != nil {
		return
	}

	err = translate.Fprint(w, "Cycle: %s\n", strconv.Itoa(state.Cycle))

	return
}
