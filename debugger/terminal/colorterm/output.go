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

package colorterm

import (
	"github.com/fatih/color"

	"github.com/fig02/gdb-load-ovl/debugger/terminal"
)

// the pens used for each style of output
var (
	penFeedback = color.New(color.Faint)
	penHelp     = color.New(color.Faint)
	penHost     = color.New(color.FgCyan)
	penTarget   = color.New(color.FgYellow)
	penLog      = color.New(color.FgHiBlack)
	penError    = color.New(color.FgRed, color.Bold)
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	// echoed input was typed by the user. it is already on screen
	if style == terminal.StyleEcho {
		return
	}

	ct.EasyTerm.TermPrint("\r")

	switch style {
	case terminal.StyleFeedback:
		s = penFeedback.Sprint(s)
	case terminal.StyleHelp:
		s = penHelp.Sprint(s)
	case terminal.StyleHost:
		s = penHost.Sprint(s)
	case terminal.StyleTarget:
		s = penTarget.Sprint(s)
	case terminal.StyleLog:
		s = penLog.Sprint(s)
	case terminal.StyleError:
		s = penError.Sprint("* " + s)
	}

	ct.EasyTerm.TermPrint(s)
	ct.EasyTerm.TermPrint("\n")
}
