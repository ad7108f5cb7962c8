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

package mi

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/fig02/gdb-load-ovl/curated"
	"github.com/fig02/gdb-load-ovl/gdb"
	"github.com/fig02/gdb-load-ovl/logger"
	"github.com/fig02/gdb-load-ovl/overlay"
)

// Config for a new MI session.
type Config struct {
	// path of the gdb executable. a MIPS aware build is required for z64
	// targets, hence the default of gdb-multiarch
	GDB string

	// path of the ROM ELF to load symbols from. may be empty if the user's
	// gdb configuration loads a file itself
	Program string

	// address of a remote target stub ("localhost:8123" for an emulator's
	// gdb stub). no target is selected when empty
	Remote string
}

// Sentinel errors for the MI session.
const (
	CommandFailed = "gdb: %s"
	BadBreakpoint = "unexpected response to -break-insert: %s"
	NoProgramFile = "no program file loaded"
)

// Session is a gdb process spoken to over GDB/MI. It implements the
// gdb.Debugger interface.
type Session struct {
	cfg Config

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader

	// token sequence for MI commands
	token int

	// loader breakpoints keyed by MI breakpoint number
	breakpoints map[string]*breakpoint

	// cached result of ProgramFile()
	program string

	// console output produced while the target is running is forwarded to
	// this function. may be nil
	OnTargetOutput func(string)
}

var _ gdb.Debugger = (*Session)(nil)

// NewSession starts a gdb process and prepares it for use. The returned
// Session must be ended with Close().
func NewSession(cfg Config) (*Session, error) {
	if cfg.GDB == "" {
		cfg.GDB = "gdb-multiarch"
	}

	args := []string{"--interpreter=mi2", "--quiet"}
	if cfg.Program != "" {
		args = append(args, cfg.Program)
	}

	s := &Session{
		cfg:         cfg,
		cmd:         exec.Command(cfg.GDB, args...),
		breakpoints: make(map[string]*breakpoint),
		program:     cfg.Program,
	}

	var err error

	s.stdin, err = s.cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(err, "starting gdb")
	}
	stdout, err := s.cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "starting gdb")
	}
	s.stdout = bufio.NewReader(stdout)
	s.cmd.Stderr = logWriter{tag: "gdb stderr"}

	if err := s.cmd.Start(); err != nil {
		return nil, errors.Wrap(err, "starting gdb")
	}

	// gdb announces itself and prompts before accepting commands
	if err := s.drainToPrompt(); err != nil {
		return nil, err
	}

	// symbol file registration must never wait on a confirmation we cannot
	// answer. pagination makes no sense through a pipe
	for _, c := range []string{"-gdb-set confirm off", "-gdb-set pagination off"} {
		if _, _, err := s.run(c); err != nil {
			return nil, err
		}
	}

	if cfg.Remote != "" {
		if _, _, err := s.run("-target-select remote " + cfg.Remote); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Close ends the gdb process.
func (s *Session) Close() error {
	_, _ = io.WriteString(s.stdin, "-gdb-exit\n")
	_ = s.stdin.Close()
	return s.cmd.Wait()
}

// read the next MI record. Lines that fail to parse are logged and skipped;
// a raw serial target can sneak unwrapped output into the stream.
func (s *Session) read() (Record, error) {
	for {
		line, err := s.stdout.ReadString('\n')
		if err != nil {
			return Record{}, errors.Wrap(err, "reading from gdb")
		}

		rec, err := ParseRecord(strings.TrimSuffix(line, "\n"))
		if err != nil {
			logger.Logf("mi", "skipping: %s", strings.TrimSpace(line))
			continue
		}

		if rec.Kind == KindLogStream {
			logger.Log("gdb", strings.TrimSuffix(rec.Stream, "\n"))
			continue
		}

		return rec, nil
	}
}

func (s *Session) drainToPrompt() error {
	for {
		rec, err := s.read()
		if err != nil {
			return err
		}
		if rec.Kind == KindPrompt {
			return nil
		}
	}
}

// run an MI command to completion, returning the result record and any
// console output produced along the way. If the command sets the target
// running, run() does not return until the target has stopped for a reason
// the loader's breakpoints do not handle.
func (s *Session) run(command string) (Record, string, error) {
	s.token++
	token := strconv.Itoa(s.token)

	if _, err := io.WriteString(s.stdin, token+command+"\n"); err != nil {
		return Record{}, "", errors.Wrap(err, "writing to gdb")
	}

	var console strings.Builder

	for {
		rec, err := s.read()
		if err != nil {
			return Record{}, "", err
		}

		switch rec.Kind {
		case KindConsoleStream:
			console.WriteString(rec.Stream)

		case KindResult:
			if rec.Token != token {
				continue
			}

			switch rec.Class {
			case "error":
				return rec, console.String(), curated.Errorf(CommandFailed, rec.Results.Str("msg"))
			case "running":
				if err := s.waitForStop(); err != nil {
					return rec, console.String(), err
				}
			}

			return rec, console.String(), nil
		}
	}
}

// waitForStop reads records until the target stops for a reason the loader's
// breakpoints do not handle. Stops belonging to loader breakpoints run their
// handlers and resume the target without returning.
func (s *Session) waitForStop() error {
	for {
		rec, err := s.read()
		if err != nil {
			return err
		}

		switch rec.Kind {
		case KindConsoleStream, KindTargetStream:
			if s.OnTargetOutput != nil {
				s.OnTargetOutput(rec.Stream)
			}

		case KindResult:
			// results seen here belong to the -exec-continue commands issued
			// below. an error means the target could not be resumed
			if rec.Class == "error" {
				return curated.Errorf(CommandFailed, rec.Results.Str("msg"))
			}

		case KindExecAsync:
			if rec.Class != "stopped" {
				continue
			}

			handled, err := s.dispatchStop(rec)
			if err != nil {
				// a failing stop handler never stops the target
				logger.Log("overlay", err.Error())
			}
			if !handled {
				return nil
			}

			s.token++
			if _, err := io.WriteString(s.stdin, strconv.Itoa(s.token)+"-exec-continue\n"); err != nil {
				return errors.Wrap(err, "writing to gdb")
			}
		}
	}
}

// dispatchStop routes a *stopped record to the loader breakpoint that caused
// it. The returned boolean indicates whether the stop was handled and the
// target should be resumed.
func (s *Session) dispatchStop(rec Record) (bool, error) {
	if rec.Results.Str("reason") != "breakpoint-hit" {
		return false, nil
	}

	bp, ok := s.breakpoints[rec.Results.Str("bkptno")]
	if !ok || !bp.enabled {
		return false, nil
	}

	return true, bp.onStop(frame{s: s})
}

// frame implements the gdb.Frame interface. Expressions are evaluated in the
// context of the frame the target is stopped in.
type frame struct {
	s *Session
}

func (f frame) ReadU32(expr string) (uint32, error) {
	return f.s.EvaluateU32(expr)
}

// Console implements the gdb.Debugger interface.
func (s *Session) Console(command string) (string, error) {
	_, console, err := s.run("-interpreter-exec console " + miQuote(command))
	return console, err
}

// EvaluateU32 implements the gdb.Debugger interface.
func (s *Session) EvaluateU32(expr string) (uint32, error) {
	out, err := s.Console(fmt.Sprintf("printf \"%%x\", %s", expr))
	if err != nil {
		return 0, err
	}
	return gdb.ParseU32(out)
}

// SymbolName implements the gdb.Debugger interface.
func (s *Session) SymbolName(addr uint32) (string, error) {
	out, err := s.Console(fmt.Sprintf("print/a (void *) %#x", addr))
	if err != nil {
		return "", err
	}

	// output is of the form: $1 = 0x80831630 <EnKusa_SetupAction>
	_, value, ok := strings.Cut(out, "= ")
	if !ok {
		return "", curated.Errorf(gdb.UnexpectedOutput, "print/a", out)
	}

	return gdb.ParseSymbolValue(addr, strings.TrimSpace(value))
}

// SectionOfSymbol implements the gdb.Debugger interface.
func (s *Session) SectionOfSymbol(symbol string) (string, error) {
	out, err := s.Console("info symbol " + symbol)
	if err != nil {
		return "", err
	}
	return gdb.ParseInfoSymbol(strings.TrimSpace(out))
}

// SectionAtAddress implements the gdb.Debugger interface.
func (s *Session) SectionAtAddress(addr uint32) (string, error) {
	out, err := s.Console("info file")
	if err != nil {
		return "", err
	}
	return gdb.SectionAt(gdb.ParseMemoryMap(out), addr)
}

// SourceFile implements the gdb.Debugger interface.
func (s *Session) SourceFile(symbol string) (string, error) {
	out, err := s.Console("info line " + symbol)
	if err != nil {
		return "", err
	}
	return gdb.ParseInfoLine(out)
}

// ProgramFile implements the gdb.Debugger interface.
func (s *Session) ProgramFile() (string, error) {
	if s.program != "" {
		return s.program, nil
	}

	out, err := s.Console("info files")
	if err != nil {
		return "", err
	}

	program, err := gdb.ParseSymbolsFrom(out)
	if err != nil {
		return "", curated.Errorf(NoProgramFile)
	}

	s.program = program
	return program, nil
}

// AddSymbolFile implements the gdb.Debugger interface.
func (s *Session) AddSymbolFile(path string, offset uint32, sections overlay.Addresses) error {
	cmd := strings.Builder{}
	fmt.Fprintf(&cmd, "add-symbol-file -readnow %s -o %#x", path, offset)
	for _, sec := range overlay.Sections {
		fmt.Fprintf(&cmd, " -s %s %#x", sec.ELFName(), sections[sec])
	}

	_, err := s.Console(cmd.String())
	return err
}

// RemoveSymbolFile implements the gdb.Debugger interface.
func (s *Session) RemoveSymbolFile(path string) error {
	_, err := s.Console("remove-symbol-file " + path)
	return err
}

// CreateBreakpoint implements the gdb.Debugger interface.
func (s *Session) CreateBreakpoint(location string, enabled bool, onStop gdb.StopHandler) (gdb.Breakpoint, error) {
	rec, _, err := s.run("-break-insert " + location)
	if err != nil {
		return nil, err
	}

	number := rec.Results["bkpt"].Tuple.Str("number")
	if number == "" {
		return nil, curated.Errorf(BadBreakpoint, location)
	}

	bp := &breakpoint{s: s, number: number, enabled: true, onStop: onStop}
	s.breakpoints[number] = bp

	if !enabled {
		if err := bp.Enable(false); err != nil {
			return nil, err
		}
	}

	return bp, nil
}

// breakpoint implements the gdb.Breakpoint interface.
type breakpoint struct {
	s       *Session
	number  string
	enabled bool
	onStop  gdb.StopHandler
}

func (bp *breakpoint) Enable(enable bool) error {
	cmd := "-break-disable "
	if enable {
		cmd = "-break-enable "
	}

	if _, _, err := bp.s.run(cmd + bp.number); err != nil {
		return err
	}

	bp.enabled = enable
	return nil
}

func (bp *breakpoint) Enabled() bool {
	return bp.enabled
}

// miQuote wraps a console command for use as an MI c-string argument.
func miQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// logWriter forwards gdb's stderr to the central logger.
type logWriter struct {
	tag string
}

func (w logWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimSpace(string(p)), "\n") {
		if line != "" {
			logger.Log(w.tag, line)
		}
	}
	return len(p), nil
}
