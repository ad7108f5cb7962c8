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

// Package gdb defines the surface of the host debugger that the overlay
// loader relies on, along with the parsing functions for the textual command
// output the host produces.
//
// The Debugger interface is the only way the rest of the project talks to
// GDB. The real implementation in the mi sub-package drives a gdb process
// over GDB/MI; tests substitute their own implementation.
//
// The parsers in this package deal with fixed text patterns in GDB console
// output. Any deviation from the expected format is a hard failure: it is
// better to refuse than to load symbols at a garbage address.
package gdb
