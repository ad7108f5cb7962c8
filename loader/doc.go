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

// Package loader implements the overlay symbol loading procedure:
//
//  1. find the section the overlay's link-time base address belongs to,
//     which names the overlay
//  2. resolve the linker symbols marking the link-time start of each of the
//     overlay's four sections
//  3. derive the runtime address of every section from the address the game
//     actually loaded the overlay at
//  4. find the object file that provides the overlay's debug symbols
//  5. register the object file with the host debugger, placing each section
//     at its derived runtime address
//
// The Loader also installs the breakpoint hooks that drive automatic
// loading and unloading as the game's engine loads and frees overlays.
//
// All Loader entry points are invoked either from the debugger input loop or
// from the host's breakpoint stop dispatch. Both run on the same goroutine
// so the Loader needs no locking.
package loader
