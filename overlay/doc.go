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

// Package overlay describes the parts of a z64 overlay that matter to a
// debugger: its sections, the linker symbols marking where each section was
// linked, the descriptor tables the game uses to track overlays at runtime,
// and the arithmetic that maps link-time section addresses to the address the
// overlay was actually loaded at.
//
// An overlay is a relocatable code/data blob. It is linked against a fixed
// "vram" base address but loaded into whatever RAM the game's arena allocator
// hands back. The distances between an overlay's sections are the same in
// every loaded instance, so the runtime address of any section is:
//
//	offset = loadAddr + (sectionLinkAddr - vramStart)
//
// The Registry type tracks which overlays have had symbols loaded, keyed by
// their runtime load address, so they can be individually unloaded when the
// game frees them.
package overlay
