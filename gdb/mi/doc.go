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

// Package mi implements the gdb.Debugger interface by driving a gdb process
// over the GDB/MI protocol.
//
// The Session type owns the gdb process. Commands are written to gdb's stdin
// with a numbered token and the output stream is read until the matching
// result record arrives. Console output produced along the way is collected
// and returned to the caller; log stream output is added to the central
// logger.
//
// Everything is synchronous and single-goroutine. When the target is
// running, the session sits in a read loop waiting for a stop event. Stops
// caused by the loader's own silent breakpoints are dispatched to their stop
// handlers and execution is resumed without returning to the caller; any
// other stop returns control.
//
// Only the subset of the MI grammar that those interactions produce is
// implemented by the record parser. See the ParseRecord function.
package mi
