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

package gdb_test

import (
	"testing"

	"github.com/fig02/gdb-load-ovl/curated"
	"github.com/fig02/gdb-load-ovl/gdb"
	"github.com/fig02/gdb-load-ovl/test"
)

func TestParseU32(t *testing.T) {
	v, err := gdb.ParseU32("8012a5c0")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x8012a5c0))

	v, err = gdb.ParseU32("0x1060")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x1060))

	// sign-extended KSEG0 addresses are masked to 32 bits
	v, err = gdb.ParseU32("0xffffffff80000460")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x80000460))

	_, err = gdb.ParseU32("not a number")
	test.ExpectFailure(t, err)
}

func TestParseSymbolValue(t *testing.T) {
	name, err := gdb.ParseSymbolValue(0xdeadbeef, "0xdeadbeef <Play_Init>")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "Play_Init")

	// no symbol at the address
	_, err = gdb.ParseSymbolValue(0xdeadbeef, "0xdeadbeef")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, gdb.NoSymbol))

	// the address falls inside a symbol rather than at its start
	_, err = gdb.ParseSymbolValue(0xdeadbeef, "0xdeadbeef <Play_Init+15>")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, gdb.SymbolWithOffset))

	// output for some other address is a hard failure
	_, err = gdb.ParseSymbolValue(0xdeadbeef, "0xcafef00d <Play_Init>")
	test.ExpectFailure(t, err)

	// as is output in an unrecognised format
	_, err = gdb.ParseSymbolValue(0xdeadbeef, "No symbol table is loaded.")
	test.ExpectFailure(t, err)
}

func TestParseInfoSymbol(t *testing.T) {
	section, err := gdb.ParseInfoSymbol("Play_Init in section ..code of /path/to/rom.elf")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, gdb.CleanSectionName(section), "code")

	// the "of <file>" suffix is optional
	section, err = gdb.ParseInfoSymbol("Play_Init in section ..code")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, gdb.CleanSectionName(section), "code")

	_, err = gdb.ParseInfoSymbol("No symbol matches Play_Init.")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, gdb.UnexpectedOutput))
}

const infoFile = `Symbols from "/home/fig/oot/build/oot-gc-eu-mq-dbg.elf".
Local exec file:
	'/home/fig/oot/build/oot-gc-eu-mq-dbg.elf', file type elf32-bigmips.
	Entry point: 0x80000460
	0x00000000 - 0x00001060 is ..makerom
	0x00001060 - 0x00002000 is ..boot
	0xffffffff80000460 - 0xffffffff80010aa0 is ..code
	0xffffffff80010aa0 - 0xffffffff800155b0 is ..code.bss
`

func TestParseMemoryMap(t *testing.T) {
	regions := gdb.ParseMemoryMap(infoFile)
	test.ExpectEquality(t, len(regions), 4)

	section, err := gdb.SectionAt(regions, 0x1500)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, section, "..boot")

	// sign-extended ranges are masked before comparison
	section, err = gdb.SectionAt(regions, 0x80000470)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, section, "..code")

	// an address outside every range is an error
	_, err = gdb.SectionAt(regions, 0x40000000)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, gdb.NoSection))
}

func TestParseInfoLine(t *testing.T) {
	src, err := gdb.ParseInfoLine(`Line 123 of "src/overlays/actors/ovl_En_Kusa/z_en_kusa.c" starts at address 0x80831630 <EnKusa_SetupAction>`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, src, "src/overlays/actors/ovl_En_Kusa/z_en_kusa.c")

	_, err = gdb.ParseInfoLine("No line number information available.")
	test.ExpectFailure(t, err)
}

func TestParseSymbolsFrom(t *testing.T) {
	program, err := gdb.ParseSymbolsFrom(infoFile)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, program, "/home/fig/oot/build/oot-gc-eu-mq-dbg.elf")

	_, err = gdb.ParseSymbolsFrom("No symbol file now.")
	test.ExpectFailure(t, err)
}
