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

package overlay_test

import (
	"testing"

	"github.com/fig02/gdb-load-ovl/overlay"
	"github.com/fig02/gdb-load-ovl/test"
)

func TestSectionNames(t *testing.T) {
	test.ExpectEquality(t, overlay.Text.ELFName(), ".text")
	test.ExpectEquality(t, overlay.Data.ELFName(), ".data")
	test.ExpectEquality(t, overlay.RoData.ELFName(), ".rodata")
	test.ExpectEquality(t, overlay.BSS.ELFName(), ".bss")

	test.ExpectEquality(t, overlay.Text.LinkerName(), "Text")
	test.ExpectEquality(t, overlay.Data.LinkerName(), "Data")
	test.ExpectEquality(t, overlay.RoData.LinkerName(), "RoData")
	test.ExpectEquality(t, overlay.BSS.LinkerName(), "Bss")
}

func TestStartSymbol(t *testing.T) {
	test.ExpectEquality(t, overlay.StartSymbol("ovl_En_Kusa", overlay.Text), "_ovl_En_KusaSegmentTextStart")
	test.ExpectEquality(t, overlay.StartSymbol("ovl_En_Kusa", overlay.BSS), "_ovl_En_KusaSegmentBssStart")
	test.ExpectEquality(t, overlay.StartSymbol("ovl_kaleido_scope", overlay.RoData), "_ovl_kaleido_scopeSegmentRoDataStart")
}

func TestOffsets(t *testing.T) {
	link := overlay.Addresses{
		overlay.Text:   0x80800000,
		overlay.Data:   0x80801000,
		overlay.RoData: 0x80801800,
		overlay.BSS:    0x80801a00,
	}

	off := overlay.Offsets(0x80400000, 0x80800000, link)

	// a section linked at vramStart loads at the allocation address exactly
	test.ExpectEquality(t, off[overlay.Text], uint32(0x80400000))

	// other sections preserve their link-time distance from vramStart
	test.ExpectEquality(t, off[overlay.Data], uint32(0x80401000))
	test.ExpectEquality(t, off[overlay.RoData], uint32(0x80401800))
	test.ExpectEquality(t, off[overlay.BSS], uint32(0x80401a00))
}

func TestOffsetsWraparound(t *testing.T) {
	// overlays are normally loaded below their link address. the arithmetic
	// is the same in the other direction and must not panic or saturate
	link := overlay.Addresses{
		overlay.Text:   0x00001000,
		overlay.Data:   0x00002000,
		overlay.RoData: 0x00002000,
		overlay.BSS:    0x00002000,
	}

	off := overlay.Offsets(0xfffff000, 0x00001000, link)
	test.ExpectEquality(t, off[overlay.Text], uint32(0xfffff000))
	test.ExpectEquality(t, off[overlay.Data], uint32(0x00000000))
}
