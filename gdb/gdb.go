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

package gdb

import (
	"github.com/fig02/gdb-load-ovl/overlay"
)

// Frame gives a breakpoint stop handler access to the interrupted call frame.
type Frame interface {
	// ReadU32 evaluates an expression in the context of the frame. the result
	// is truncated to 32 bits.
	ReadU32(expr string) (uint32, error)
}

// StopHandler is called when a breakpoint is hit. The host resumes execution
// after the handler returns; a returned error is reported but never stops the
// target.
type StopHandler func(Frame) error

// Breakpoint is a handle to a breakpoint registered with the host.
type Breakpoint interface {
	Enable(enable bool) error
	Enabled() bool
}

// Debugger is the surface of the host debugger used by the overlay loader.
//
// All operations are synchronous: they return only once the host has fully
// evaluated the request. None of them are safe for concurrent use.
type Debugger interface {
	// EvaluateU32 evaluates an expression in the current context of the
	// target, truncating the result to 32 bits.
	EvaluateU32(expr string) (uint32, error)

	// SymbolName returns the name of the symbol at exactly the specified
	// address. An address that falls inside a symbol, rather than at its
	// start, is an error.
	SymbolName(addr uint32) (string, error)

	// SectionOfSymbol returns the name of the section containing the symbol.
	// The symbol argument can also be an address in hex notation.
	SectionOfSymbol(symbol string) (string, error)

	// SectionAtAddress scans the host's memory layout table for the section
	// containing the address. Slower than SectionOfSymbol but works when the
	// address has no symbol information at all.
	SectionAtAddress(addr uint32) (string, error)

	// SourceFile returns the path of the source file that defines the symbol,
	// as recorded in the program's debug information.
	SourceFile(symbol string) (string, error)

	// ProgramFile returns the path of the program (ELF) the host has loaded
	// symbols from.
	ProgramFile() (string, error)

	// AddSymbolFile registers the debug symbols of an object file with the
	// host, placing each overlay section at the specified address. The offset
	// argument is applied to any address in the object not covered by the
	// section placements. Symbols must be read eagerly at registration time.
	AddSymbolFile(path string, offset uint32, sections overlay.Addresses) error

	// RemoveSymbolFile removes a symbol file previously registered with
	// AddSymbolFile.
	RemoveSymbolFile(path string) error

	// CreateBreakpoint registers a silent, non-stopping breakpoint at the
	// named location. The handler runs every time the breakpoint is hit and
	// enabled.
	CreateBreakpoint(location string, enabled bool, onStop StopHandler) (Breakpoint, error)

	// Console executes a console command on the host, returning its output.
	Console(command string) (string, error)
}

// SymbolAddress returns the address of the named symbol.
func SymbolAddress(dbg Debugger, name string) (uint32, error) {
	return dbg.EvaluateU32("&" + name)
}
