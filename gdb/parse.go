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
	"regexp"
	"strconv"
	"strings"

	"github.com/fig02/gdb-load-ovl/curated"
)

// Sentinel errors raised by the parsing functions.
const (
	UnexpectedOutput = "unexpected output for %s: %q"
	NoSymbol         = "no symbol found for %#08x"
	SymbolWithOffset = "no symbol found for %#08x (but the addr is %s+%d)"
	NoSection        = "no section found for address %#08x"
)

// ParseU32 converts hexadecimal command output, with or without a 0x prefix,
// to a uint32. Values wider than 32 bits are masked; the target is a 32-bit
// machine and GDB sign-extends addresses in some of its output.
func ParseU32(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.ToLower(s), "0x")

	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, curated.Errorf(UnexpectedOutput, "value", s)
	}

	return uint32(v), nil
}

// matches formatted pointer values: an address optionally followed by a
// symbol name and offset in angle brackets
var symbolValuePattern = regexp.MustCompile(`^(0x[0-9a-fA-F]+)(?: <([^+>]+)(?:\+(\d+))?>)?$`)

// ParseSymbolValue extracts the symbol name from a formatted pointer value.
// The host formats such values in one of three ways:
//
//	0xdeadbeef                     (no symbol at the address)
//	0xdeadbeef <Play_Init>         (the address is exactly the symbol)
//	0xdeadbee0 <Play_Init+15>      (the address falls inside the symbol)
//
// Only the second form yields a name. The addr argument is the address the
// value was formatted from; a mismatch means the output belongs to some other
// request and is an error.
func ParseSymbolValue(addr uint32, s string) (string, error) {
	s = strings.TrimSpace(s)

	m := symbolValuePattern.FindStringSubmatch(s)
	if m == nil {
		return "", curated.Errorf(UnexpectedOutput, "formatted pointer value", s)
	}

	v, err := ParseU32(m[1])
	if err != nil || v != addr {
		return "", curated.Errorf(UnexpectedOutput, "formatted pointer value (different addr)", s)
	}

	if m[2] == "" {
		return "", curated.Errorf(NoSymbol, addr)
	}

	if m[3] != "" {
		off, _ := strconv.Atoi(m[3])
		return "", curated.Errorf(SymbolWithOffset, addr, m[2], off)
	}

	return m[2], nil
}

// ParseInfoSymbol extracts the section name from "info symbol" output. The
// output takes one of two forms:
//
//	Play_Init in section ..code
//	Play_Init in section ..code of /home/fig/oot/build/oot-gc-eu-mq-dbg.elf
//
// both of which yield "..code". Note that any mangling of the section name,
// such as the ".." prefix added by the makerom packer, is left in place.
func ParseInfoSymbol(s string) (string, error) {
	_, after, ok := strings.Cut(s, "in section ")
	if !ok {
		return "", curated.Errorf(UnexpectedOutput, "info symbol", s)
	}

	section, _, _ := strings.Cut(after, " of ")
	return strings.TrimSpace(section), nil
}

// CleanSectionName strips the mangling the makerom packer applies to section
// names in the z64 ROM. "..code" becomes "code", matching the name used by
// the linker script symbols.
func CleanSectionName(section string) string {
	return strings.TrimPrefix(section, "..")
}

// Region is a single line of the host's memory layout table.
type Region struct {
	Start   uint32
	End     uint32
	Section string
}

// matches memory layout lines: "0x00001060 - 0x00002000 is ..boot"
var regionPattern = regexp.MustCompile(`^(0x[0-9a-fA-F]+) - (0x[0-9a-fA-F]+) is (.+)$`)

// ParseMemoryMap extracts the memory layout table from "info file" output.
// Lines that do not describe a section range are ignored. Addresses are
// masked to 32 bits: GDB reports sign-extended KSEG0 addresses such as
// 0xffffffff80000460 on a 32-bit MIPS target.
func ParseMemoryMap(s string) []Region {
	var regions []Region

	for _, line := range strings.Split(s, "\n") {
		m := regionPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}

		start, err := ParseU32(m[1])
		if err != nil {
			continue
		}
		end, err := ParseU32(m[2])
		if err != nil {
			continue
		}

		regions = append(regions, Region{
			Start:   start,
			End:     end,
			Section: m[3],
		})
	}

	return regions
}

// SectionAt returns the name of the section containing the address. The end
// address of a region is exclusive.
func SectionAt(regions []Region, addr uint32) (string, error) {
	for _, r := range regions {
		if addr >= r.Start && addr < r.End {
			return r.Section, nil
		}
	}
	return "", curated.Errorf(NoSection, addr)
}

// quoted filenames appear in both "info line" and "info files" output
var quotedPattern = regexp.MustCompile(`"([^"]+)"`)

// ParseInfoLine extracts the source file path from "info line" output:
//
//	Line 123 of "src/overlays/actors/ovl_En_Kusa/z_en_kusa.c" starts at address ...
func ParseInfoLine(s string) (string, error) {
	m := quotedPattern.FindStringSubmatch(s)
	if m == nil {
		return "", curated.Errorf(UnexpectedOutput, "info line", s)
	}
	return m[1], nil
}

// ParseSymbolsFrom extracts the program file path from "info files" output.
// The relevant line is the first one of the form:
//
//	Symbols from "/home/fig/oot/build/oot-gc-eu-mq-dbg.elf".
func ParseSymbolsFrom(s string) (string, error) {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Symbols from ") {
			continue
		}
		if m := quotedPattern.FindStringSubmatch(line); m != nil {
			return m[1], nil
		}
	}
	return "", curated.Errorf(UnexpectedOutput, "info files", s)
}
