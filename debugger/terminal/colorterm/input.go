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
	"unicode"
	"unicode/utf8"

	"github.com/fig02/gdb-load-ovl/curated"
	"github.com/fig02/gdb-load-ovl/debugger/terminal"
	"github.com/fig02/gdb-load-ovl/debugger/terminal/colorterm/easyterm"
	"github.com/fig02/gdb-load-ovl/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	ct.RawMode()
	defer ct.CanonicalMode()

	input := make([]byte, 255)

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput is used to store the latest input when we scroll through
	// history - we don't want to lose what we've typed in case the user wants
	// to resume where we left off
	buffInput := make([]byte, cap(input))
	buffN := 0

	// the method for cursor placement is as follows:
	// 	1. for each iteration in the loop
	//		2. store current cursor position
	//		3. clear the current line
	//		4. output the prompt
	//		5. output the input buffer
	//		6. restore the cursor position
	//
	// for this to work we need to place the cursor in its initial position
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(ansi.CursorMove(len(prompt.String())))

	for {
		ct.EasyTerm.TermPrint(ansi.CursorStore)
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.EasyTerm.TermPrint("\r")
		ct.EasyTerm.TermPrint(prompt.String())
		ct.EasyTerm.TermPrint(string(input[:n]))
		ct.EasyTerm.TermPrint(ansi.CursorRestore)

		// check for interrupt signals before blocking on the next rune. in
		// raw mode the interrupt key arrives as a plain byte but the signal
		// can still arrive from outside the terminal
		select {
		case sig := <-events.Signal:
			ct.EasyTerm.TermPrint("\n")
			return "", events.SignalHandler(sig)
		default:
		}

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEndOfFile:
			if n == 0 {
				ct.EasyTerm.TermPrint("\n")
				return "", curated.Errorf(terminal.UserQuit)
			}

		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursor]))

				// the difference in the length of the new input and the old
				// input
				d := len(s) - cursor

				// append everything after the cursor to the new string and
				// copy into input array
				s += string(input[cursor:n])
				copy(input, []byte(s))

				// advance cursor to end of the completed word
				ct.EasyTerm.TermPrint(ansi.CursorMove(d))
				cursor += d
				n += d
			}

		case easyterm.KeyCarriageReturn:
			ct.tabCompletionReset()

			// check to see if input is the same as the last history entry
			newEntry := n > 0
			if newEntry && len(ct.commandHistory) > 0 {
				last := ct.commandHistory[len(ct.commandHistory)-1].input
				if len(last) == n {
					newEntry = false
					for i := 0; i < n; i++ {
						if input[i] != last[i] {
							newEntry = true
							break
						}
					}
				}
			}

			if newEntry {
				nh := make([]byte, n)
				copy(nh, input[:n])
				ct.commandHistory = append(ct.commandHistory, command{input: nh})
			}

			ct.EasyTerm.TermPrint("\n")
			return string(input[:n]), nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				// move up through command history
				if len(ct.commandHistory) > 0 {
					// if we're at the end of the command history then store
					// the current input for possible later editing
					if history == len(ct.commandHistory) {
						copy(buffInput, input[:n])
						buffN = n
					}

					if history > 0 {
						history--
						copy(input, ct.commandHistory[history].input)
						n = len(ct.commandHistory[history].input)
						ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
						cursor = n
					}
				}

			case easyterm.CursorDown:
				// move down through command history
				if len(ct.commandHistory) > 0 {
					if history < len(ct.commandHistory)-1 {
						history++
						copy(input, ct.commandHistory[history].input)
						n = len(ct.commandHistory[history].input)
						ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
						cursor = n
					} else if history == len(ct.commandHistory)-1 {
						history++
						copy(input, buffInput)
						n = buffN
						ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
						cursor = n
					}
				}

			case easyterm.CursorForward:
				// move forward through current command input
				if cursor < n {
					ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
					cursor++
				}

			case easyterm.CursorBackward:
				// move backward through current command input
				if cursor > 0 {
					ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
					cursor--
				}

			case easyterm.EscDelete:
				// the delete sequence is terminated with a tilde
				if _, _, err := ct.reader.ReadRune(); err != nil {
					return "", err
				}
				if cursor < n {
					copy(input[cursor:], input[cursor+1:])
					n--
					history = len(ct.commandHistory)
					ct.tabCompletionReset()
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:])
				ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
				ct.tabCompletionReset()
			}

		default:
			if unicode.IsPrint(r) {
				m := utf8.EncodeRune(er, r)
				copy(input[cursor+m:], input[cursor:])
				copy(input[cursor:], er[:m])
				ct.EasyTerm.TermPrint(ansi.CursorMove(1))
				cursor += m
				n += m
				history = len(ct.commandHistory)
				ct.tabCompletionReset()
			}
		}
	}
}

func (ct *ColorTerminal) tabCompletionReset() {
	if ct.tabCompletion != nil {
		ct.tabCompletion.Reset()
	}
}
