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

// Package modalflag layers modes on top of the flag package from the Go
// standard library. A mode in this context is a verb on the command line
// with flags of its own. For example:
//
//	ovldbg version
//	ovldbg run -gdb gdb-multiarch -remote localhost:2159 rom.elf
//
// where RUN and VERSION are modes and -gdb and -remote are flags of the RUN
// mode. Flags before the mode belong to the program itself.
//
// The basic pattern of usage is to call NewArgs() with the command line
// arguments, add flags and sub-modes, call Parse() and switch on Mode().
// Calling NewMode() descends into the selected mode, after which more flags
// can be added and Parse() called again.
package modalflag
