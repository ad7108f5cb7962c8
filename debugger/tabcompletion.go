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
)

// tabCompletion implements the terminal.TabCompletion interface, completing
// the debugger's own command keywords. Repeated completion of the same input
// cycles through the matches.
type tabCompletion struct {
	matches []string
	idx     int
}

func newTabCompletion() *tabCompletion {
	return &tabCompletion{}
}

// Complete implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Complete(input string) string {
	// only the command keyword itself is completed
	if strings.ContainsAny(input, " \t") {
		return input
	}

	if tc.matches == nil {
		prefix := strings.ToUpper(input)
		for _, c := range commands {
			if strings.HasPrefix(c, prefix) {
				tc.matches = append(tc.matches, c)
			}
		}
		tc.idx = 0
	}

	if len(tc.matches) == 0 {
		return input
	}

	s := tc.matches[tc.idx]
	tc.idx = (tc.idx + 1) % len(tc.matches)
	return s
}

// Reset implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Reset() {
	tc.matches = nil
	tc.idx = 0
}
