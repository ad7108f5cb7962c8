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

package terminal

import "strings"

// Style identifies the category of text being printed and therefore how a
// terminal implementation might want to present it.
type Style int

// List of styles.
const (
	// input echoed back by non-interactive terminals
	StyleEcho Style = iota

	// information from the tool itself
	StyleFeedback

	// help text
	StyleHelp

	// output relayed from the host debugger
	StyleHost

	// output from the running game
	StyleTarget

	// entries from the central log
	StyleLog

	// error messages. terminals should display these even when they would
	// otherwise stay quiet
	StyleError
)

// Prompt specifies the prompt text.
type Prompt struct {
	Content string
}

func (p Prompt) String() string {
	return strings.TrimSpace(p.Content) + " "
}
