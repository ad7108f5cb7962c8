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

// Package debugger implements the interactive command loop that sits between
// the user and the host debugger.
//
// The debugger recognises a small number of commands of its own, all of them
// to do with overlay symbol loading. Input that isn't recognised is passed on
// to the host debugger untouched, so the full range of GDB commands remains
// available at the prompt.
package debugger
