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

package overlay

import "fmt"

// Section is one of the four regions every overlay is divided into.
type Section int

// List of valid Section values.
const (
	Text Section = iota
	Data
	RoData
	BSS
	NumSections
)

// Sections is a convenient way of iterating over all Section values in a
// stable order.
var Sections = [NumSections]Section{Text, Data, RoData, BSS}

// ELFName returns the name of the section as it appears in the compiled
// object file.
func (sec Section) ELFName() string {
	switch sec {
	case Text:
		return ".text"
	case Data:
		return ".data"
	case RoData:
		return ".rodata"
	case BSS:
		return ".bss"
	}
	return fmt.Sprintf("unknown section (%d)", int(sec))
}

// LinkerName returns the name of the section as it appears in the linker
// script symbols of the z64 ROM.
func (sec Section) LinkerName() string {
	switch sec {
	case Text:
		return "Text"
	case Data:
		return "Data"
	case RoData:
		return "RoData"
	case BSS:
		return "Bss"
	}
	return fmt.Sprintf("unknown section (%d)", int(sec))
}

func (sec Section) String() string {
	return sec.ELFName()
}

// StartSymbol returns the conventional linker symbol marking the link-time
// start of a section of the named overlay. For example, the Text section of
// the "ovl_En_Kusa" overlay begins at "_ovl_En_KusaSegmentTextStart".
func StartSymbol(name string, sec Section) string {
	return fmt.Sprintf("_%sSegment%sStart", name, sec.LinkerName())
}

// Addresses stores one address per overlay section.
type Addresses [NumSections]uint32

// Offsets derives the runtime address of every section of an overlay loaded
// at loadAddr. The link argument gives the link-time start address of every
// section and vramStart is the link-time base address of the whole overlay.
//
// Arithmetic is over uint32 with wraparound, matching the target machine. A
// section whose link address equals vramStart maps to loadAddr exactly.
func Offsets(loadAddr uint32, vramStart uint32, link Addresses) Addresses {
	var off Addresses
	for _, sec := range Sections {
		off[sec] = loadAddr + (link[sec] - vramStart)
	}
	return off
}
