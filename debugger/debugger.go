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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fig02/gdb-load-ovl/curated"
	"github.com/fig02/gdb-load-ovl/debugger/terminal"
	"github.com/fig02/gdb-load-ovl/gdb"
	"github.com/fig02/gdb-load-ovl/loader"
)

// the prompt shown while waiting for input
const promptContent = "(z64)"

// Debugger is the overlay-aware front end to the host debugger.
type Debugger struct {
	host gdb.Debugger
	ld   *loader.Loader
	term terminal.Terminal

	events *terminal.ReadEvents

	// the input loop continues until running is false
	running bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The engine hooks are installed immediately; the input loop does not
// begin until Start().
func NewDebugger(host gdb.Debugger, term terminal.Terminal, autoload bool) (*Debugger, error) {
	dbg := &Debugger{
		host: host,
		term: term,
	}

	dbg.ld = loader.NewLoader(host, func(format string, args ...interface{}) {
		dbg.printLine(terminal.StyleFeedback, format, args...)
	})

	if err := dbg.ld.InstallHooks(autoload); err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	dbg.events = &terminal.ReadEvents{
		Signal: make(chan os.Signal, 1),
		SignalHandler: func(sig os.Signal) error {
			if sig == os.Interrupt {
				return curated.Errorf(terminal.UserInterrupt)
			}
			return nil
		},
	}

	return dbg, nil
}

// Loader in use by the debugger.
func (dbg *Debugger) Loader() *loader.Loader {
	return dbg.ld
}

// Start the input loop. Returns when the user quits.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(newTabCompletion())

	signal.Notify(dbg.events.Signal, os.Interrupt)
	defer signal.Stop(dbg.events.Signal)

	prompt := terminal.Prompt{Content: promptContent}

	dbg.running = true
	for dbg.running {
		input, err := dbg.term.TermRead(prompt, dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.printLine(terminal.StyleFeedback, "use %s to leave the debugger", cmdQuit)
				continue
			}
			if curated.Is(err, terminal.UserQuit) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		dbg.term.TermPrintLine(terminal.StyleEcho, input)

		if err := dbg.parseCommand(input); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

func (dbg *Debugger) printLine(style terminal.Style, format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	for _, line := range strings.Split(s, "\n") {
		dbg.term.TermPrintLine(style, line)
	}
}
