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
	"testing"

	"github.com/fig02/gdb-load-ovl/curated"
	"github.com/fig02/gdb-load-ovl/debugger/terminal"
	"github.com/fig02/gdb-load-ovl/gdb"
	"github.com/fig02/gdb-load-ovl/overlay"
	"github.com/fig02/gdb-load-ovl/test"
)

type mockBreakpoint struct {
	enabled bool
}

func (bp *mockBreakpoint) Enable(enable bool) error {
	bp.enabled = enable
	return nil
}

func (bp *mockBreakpoint) Enabled() bool {
	return bp.enabled
}

// mockHost implements the bare minimum of the gdb.Debugger interface needed
// by the command dispatch tests.
type mockHost struct {
	consoleCommands []string
	consoleOutput   string
}

func (m *mockHost) EvaluateU32(expr string) (uint32, error) {
	return 0, curated.Errorf("no value for expression: %s", expr)
}

func (m *mockHost) SymbolName(addr uint32) (string, error) {
	return "", curated.Errorf(gdb.NoSymbol, addr)
}

func (m *mockHost) SectionOfSymbol(symbol string) (string, error) {
	return "", curated.Errorf(gdb.UnexpectedOutput, "info symbol", symbol)
}

func (m *mockHost) SectionAtAddress(addr uint32) (string, error) {
	return "", curated.Errorf(gdb.NoSection, addr)
}

func (m *mockHost) SourceFile(symbol string) (string, error) {
	return "", curated.Errorf("no source for symbol: %s", symbol)
}

func (m *mockHost) ProgramFile() (string, error) {
	return "/build/oot.elf", nil
}

func (m *mockHost) AddSymbolFile(path string, offset uint32, sections overlay.Addresses) error {
	return nil
}

func (m *mockHost) RemoveSymbolFile(path string) error {
	return nil
}

func (m *mockHost) CreateBreakpoint(location string, enabled bool, onStop gdb.StopHandler) (gdb.Breakpoint, error) {
	return &mockBreakpoint{enabled: enabled}, nil
}

func (m *mockHost) Console(command string) (string, error) {
	m.consoleCommands = append(m.consoleCommands, command)
	return m.consoleOutput, nil
}

// mockTerm records everything printed to it.
type mockTerm struct {
	lines []string
}

func (mt *mockTerm) Initialise() error { return nil }

func (mt *mockTerm) CleanUp() {}

func (mt *mockTerm) RegisterTabCompletion(terminal.TabCompletion) {}

func (mt *mockTerm) IsInteractive() bool { return false }

func (mt *mockTerm) TermPrintLine(style terminal.Style, s string) {
	mt.lines = append(mt.lines, s)
}

func (mt *mockTerm) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	return "", nil
}

func newTestDebugger(t *testing.T) (*Debugger, *mockHost, *mockTerm) {
	t.Helper()

	host := &mockHost{}
	term := &mockTerm{}

	dbg, err := NewDebugger(host, term, false)
	test.ExpectSuccess(t, err)

	return dbg, host, term
}

func TestQuit(t *testing.T) {
	dbg, _, _ := newTestDebugger(t)

	dbg.running = true
	test.ExpectSuccess(t, dbg.parseCommand("quit"))
	test.ExpectFailure(t, dbg.running)
}

func TestAutoLoadCommand(t *testing.T) {
	dbg, _, term := newTestDebugger(t)

	test.ExpectFailure(t, dbg.ld.AutoLoad())

	test.ExpectSuccess(t, dbg.parseCommand("z64ovl auto on"))
	test.ExpectSuccess(t, dbg.ld.AutoLoad())

	test.ExpectSuccess(t, dbg.parseCommand("z64ovl auto off"))
	test.ExpectFailure(t, dbg.ld.AutoLoad())

	// AUTO on its own is shorthand for Z64OVL AUTO
	test.ExpectSuccess(t, dbg.parseCommand("auto on"))
	test.ExpectSuccess(t, dbg.ld.AutoLoad())
	test.ExpectSuccess(t, dbg.parseCommand("auto off"))

	// no argument reports the current setting
	test.ExpectSuccess(t, dbg.parseCommand("z64ovl auto"))
	test.ExpectSuccess(t, strings.Contains(term.lines[len(term.lines)-1], "off"))

	// anything other than ON or OFF is an error
	err := dbg.parseCommand("z64ovl auto maybe")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, UnknownSubCommand))
}

func TestMissingArguments(t *testing.T) {
	dbg, _, _ := newTestDebugger(t)

	err := dbg.parseCommand("ovl")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, MissingArgument))

	err = dbg.parseCommand("z64ovl")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, MissingArgument))
}

func TestListEmpty(t *testing.T) {
	dbg, _, term := newTestDebugger(t)

	test.ExpectSuccess(t, dbg.parseCommand("z64ovl list"))
	test.ExpectSuccess(t, strings.Contains(term.lines[len(term.lines)-1], "no overlays"))
}

// input the debugger doesn't recognise is forwarded to the host and the
// host's output is echoed back
func TestPassthrough(t *testing.T) {
	dbg, host, term := newTestDebugger(t)

	host.consoleOutput = "Breakpoint 5 at 0x80123456\n"
	test.ExpectSuccess(t, dbg.parseCommand("break Play_Update"))

	test.ExpectEquality(t, len(host.consoleCommands), 1)
	test.ExpectEquality(t, host.consoleCommands[0], "break Play_Update")
	test.ExpectEquality(t, term.lines[len(term.lines)-1], "Breakpoint 5 at 0x80123456")
}

func TestTabCompletion(t *testing.T) {
	tc := newTabCompletion()

	test.ExpectEquality(t, tc.Complete("z"), cmdOverlayTrack)
	tc.Reset()

	// repeated completion cycles through the matches
	first := tc.Complete("")
	second := tc.Complete("")
	test.ExpectFailure(t, first == second)
	tc.Reset()

	// input beyond the first word is left alone
	test.ExpectEquality(t, tc.Complete("z64ovl AC"), "z64ovl AC")
}
