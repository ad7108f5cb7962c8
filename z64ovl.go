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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fig02/gdb-load-ovl/curated"
	"github.com/fig02/gdb-load-ovl/debugger"
	"github.com/fig02/gdb-load-ovl/debugger/terminal"
	"github.com/fig02/gdb-load-ovl/debugger/terminal/colorterm"
	"github.com/fig02/gdb-load-ovl/debugger/terminal/plainterm"
	"github.com/fig02/gdb-load-ovl/gdb/mi"
	"github.com/fig02/gdb-load-ovl/logger"
	"github.com/fig02/gdb-load-ovl/modalflag"
	"github.com/fig02/gdb-load-ovl/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "VERSION":
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version)

	case "RUN":
		if err := run(md); err != nil {
			fmt.Printf("* %v\n", err)
			os.Exit(10)
		}
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	gdbPath := md.AddString("gdb", "gdb-multiarch", "path of the gdb executable")
	remote := md.AddString("remote", "", "address of remote target (eg. localhost:2159)")
	termType := md.AddString("term", "COLOR", "terminal type: COLOR, PLAIN")
	autoload := md.AddBool("autoload", false, "load overlay symbols automatically from the start")
	logEcho := md.AddBool("log", false, "echo application log to stderr")

	md.AdditionalHelp(
		"The optional argument is the path of the ROM ELF to load symbols from. It can\n" +
			"be omitted if your gdb configuration loads a symbol file itself.")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	if *logEcho {
		logger.SetEcho(logger.NewColorizer(os.Stderr))
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		return curated.Errorf("unknown terminal type: %s", *termType)
	}

	sess, err := mi.NewSession(mi.Config{
		GDB:     *gdbPath,
		Program: md.GetArg(0),
		Remote:  *remote,
	})
	if err != nil {
		return err
	}
	defer sess.Close()

	// output from the running game appears in the terminal as it arrives
	sess.OnTargetOutput = func(s string) {
		term.TermPrintLine(terminal.StyleTarget, strings.TrimSuffix(s, "\n"))
	}

	dbg, err := debugger.NewDebugger(sess, term, *autoload)
	if err != nil {
		return err
	}

	return dbg.Start()
}
