// This file is part of gdb-load-ovl.
//
// gdb-load-ovl is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gdb-load-ovl is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gdb-load-ovl.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"sort"
	"strings"

	"github.com/fig02/gdb-load-ovl/debugger/terminal"
)

var helps = map[string]string{
	cmdOverlay: `OVL <name>
    load debug symbols for the named overlay, without tracking.

    the name is an alias (PAUSE, KALEIDO, KALEIDO_SCOPE, ACTOR_PLAYER) or a
    value from one of the overlay enums (eg. ACTOR_EN_KUSA)`,

	cmdOverlayTrack: `Z64OVL <name>
    load debug symbols for the named overlay and track it, so the symbols are
    removed again when the game frees the overlay

Z64OVL AUTO [ON|OFF]
    control the automatic loading of symbols as the game loads overlays. with
    no argument the current setting is shown. AUTO on its own is accepted as
    shorthand

Z64OVL LIST
    show the tracked overlays that currently have symbols loaded`,

	cmdLog: `LOG [CLEAR]
    show (or clear) the application log`,

	cmdHelp: `HELP [command]`,

	cmdQuit: `QUIT
    leave the debugger, ending the host debugger session`,
}

func (dbg *Debugger) printHelpSummary() {
	keywords := make([]string, 0, len(helps))
	for k := range helps {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)

	dbg.printLine(terminal.StyleHelp, "%s", strings.Join(keywords, " "))
	dbg.printLine(terminal.StyleHelp, "anything else is passed to the host debugger")
}

func (dbg *Debugger) printHelp(keyword string) {
	if h, ok := helps[keyword]; ok {
		dbg.printLine(terminal.StyleHelp, "%s", h)
		return
	}
	dbg.printLine(terminal.StyleHelp, "no help for %s", keyword)
}
