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
	"strings"

	"github.com/fig02/gdb-load-ovl/curated"
	"github.com/fig02/gdb-load-ovl/debugger/terminal"
	"github.com/fig02/gdb-load-ovl/logger"
)

// debugger command keywords. commands are case insensitive at the prompt.
const (
	cmdOverlay      = "OVL"
	cmdOverlayTrack = "Z64OVL"
	cmdLog          = "LOG"
	cmdHelp         = "HELP"
	cmdQuit         = "QUIT"
)

// sub-keywords
const (
	keywordAuto  = "AUTO"
	keywordList  = "LIST"
	keywordClear = "CLEAR"
	keywordOn    = "ON"
	keywordOff   = "OFF"
)

// the commands offered for tab completion. keywords only; overlay names live
// in the game's debug information and are not known to the debugger
var commands = []string{
	cmdOverlay,
	cmdOverlayTrack,
	cmdLog,
	cmdHelp,
	cmdQuit,
}

// sentinel errors raised by command parsing.
const (
	MissingArgument   = "not enough arguments for %s"
	UnknownSubCommand = "unrecognised argument for %s: %s"
)

// parseCommand interprets a line of input. Input that doesn't begin with one
// of the debugger's own keywords is passed on to the host debugger.
func (dbg *Debugger) parseCommand(input string) error {
	toks := strings.Fields(input)
	if len(toks) == 0 {
		return nil
	}

	switch strings.ToUpper(toks[0]) {
	case cmdQuit, "EXIT":
		dbg.running = false

	case cmdHelp:
		if len(toks) > 1 {
			dbg.printHelp(strings.ToUpper(toks[1]))
		} else {
			dbg.printHelpSummary()
		}

	case cmdLog:
		if len(toks) > 1 && strings.ToUpper(toks[1]) == keywordClear {
			logger.Clear()
			return nil
		}
		s := &strings.Builder{}
		logger.Write(s)
		if s.Len() == 0 {
			dbg.printLine(terminal.StyleFeedback, "log is empty")
			return nil
		}
		dbg.printLine(terminal.StyleLog, "%s", strings.TrimRight(s.String(), "\n"))

	case cmdOverlay:
		if len(toks) < 2 {
			return curated.Errorf(MissingArgument, cmdOverlay)
		}
		return dbg.ld.LoadByName(toks[1], false)

	case keywordAuto:
		// shorthand for Z64OVL AUTO
		return dbg.parseAuto(toks[1:])

	case cmdOverlayTrack:
		if len(toks) < 2 {
			return curated.Errorf(MissingArgument, cmdOverlayTrack)
		}

		switch strings.ToUpper(toks[1]) {
		case keywordAuto:
			return dbg.parseAuto(toks[2:])
		case keywordList:
			return dbg.listOverlays()
		default:
			return dbg.ld.LoadByName(toks[1], true)
		}

	default:
		// unrecognised input goes to the host debugger untouched
		out, err := dbg.host.Console(input)
		if err != nil {
			return err
		}
		if out = strings.TrimRight(out, "\n"); out != "" {
			dbg.printLine(terminal.StyleHost, "%s", out)
		}
	}

	return nil
}

func (dbg *Debugger) parseAuto(args []string) error {
	if len(args) == 0 {
		if dbg.ld.AutoLoad() {
			dbg.printLine(terminal.StyleFeedback, "automatic overlay loading is on")
		} else {
			dbg.printLine(terminal.StyleFeedback, "automatic overlay loading is off")
		}
		return nil
	}

	switch strings.ToUpper(args[0]) {
	case keywordOn:
		if err := dbg.ld.SetAutoLoad(true); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "automatic overlay loading is on")
	case keywordOff:
		if err := dbg.ld.SetAutoLoad(false); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "automatic overlay loading is off")
	default:
		return curated.Errorf(UnknownSubCommand, keywordAuto, args[0])
	}

	return nil
}

func (dbg *Debugger) listOverlays() error {
	loaded := dbg.ld.Registry().Loaded()
	if len(loaded) == 0 {
		dbg.printLine(terminal.StyleFeedback, "no overlays loaded")
		return nil
	}

	for _, e := range loaded {
		dbg.printLine(terminal.StyleFeedback, "%#08x %s", e.Addr, e.ObjectFile)
	}

	return nil
}
