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

package loader

import (
	"fmt"
	"strings"

	"github.com/fig02/gdb-load-ovl/curated"
	"github.com/fig02/gdb-load-ovl/gdb"
	"github.com/fig02/gdb-load-ovl/logger"
	"github.com/fig02/gdb-load-ovl/overlay"
)

// Bias is applied to every address in a registered object file that is not
// covered by an explicit section placement. It pushes those addresses well
// outside the console's address space so they can never shadow real symbols.
const Bias = 0xFF000000

// Sentinel errors for the loader.
const (
	MissingLinkerSymbol = "cannot resolve %s: %v"
	NotHooked           = "engine hooks have not been installed"
)

// PrintFunc is used for the loader's progress and diagnostic messages. The
// debugger wires this to its terminal.
type PrintFunc func(format string, args ...interface{})

// Loader loads and unloads overlay symbol files on behalf of the host
// debugger, tracking what is loaded so overlays can be unloaded again when
// the game frees them.
type Loader struct {
	dbg gdb.Debugger
	reg *overlay.Registry

	// progress and diagnostic messages
	print PrintFunc

	// the breakpoint driving automatic loading. nil until InstallHooks()
	autoload gdb.Breakpoint
}

// NewLoader is the preferred method of initialisation for the Loader type. A
// nil PrintFunc sends messages to stdout.
func NewLoader(dbg gdb.Debugger, print PrintFunc) *Loader {
	if print == nil {
		print = func(format string, args ...interface{}) {
			fmt.Printf(format+"\n", args...)
		}
	}

	return &Loader{
		dbg:   dbg,
		reg:   overlay.NewRegistry(),
		print: print,
	}
}

// Registry of currently loaded overlays.
func (ld *Loader) Registry() *overlay.Registry {
	return ld.reg
}

// Load symbols for the overlay loaded at loadAddr and linked at vramStart,
// and track it in the registry so it can be unloaded later.
//
// Loading an address that is already in the registry is an error, raised
// before anything is asked of the host.
func (ld *Loader) Load(loadAddr uint32, vramStart uint32) error {
	if ld.reg.Contains(loadAddr) {
		return curated.Errorf(overlay.AlreadyLoaded, loadAddr)
	}

	name, link, err := ld.resolveSections(vramStart)
	if err != nil {
		return err
	}

	offsets := overlay.Offsets(loadAddr, vramStart, link)

	objectFile, err := ld.objectFile(vramStart)
	if err != nil {
		return err
	}

	if err := ld.reg.Add(loadAddr, objectFile); err != nil {
		return err
	}

	logger.Logf("overlay", "%s: load %#08x -> %#08x", name, vramStart, loadAddr)
	ld.print("Reading %s...", overlay.Stem(objectFile))

	if err := ld.dbg.AddSymbolFile(objectFile, Bias, offsets); err != nil {
		// keep the registry consistent with the host's symbol tables
		ld.reg.Remove(loadAddr)
		return err
	}

	ld.print("Complete.")
	return nil
}

// LoadOnce loads symbols for the overlay loaded at loadAddr without tracking
// it in the registry. Section placement is relative to the Text section
// rather than vramStart; for every overlay in the game those are the same
// address.
func (ld *Loader) LoadOnce(loadAddr uint32, vramStart uint32) error {
	_, link, err := ld.resolveSections(vramStart)
	if err != nil {
		return err
	}

	offsets := overlay.Offsets(loadAddr, link[overlay.Text], link)

	objectFile, err := ld.objectFile(vramStart)
	if err != nil {
		return err
	}

	ld.print("Loading overlay: %s (text: %#x data: %#x rodata: %#x bss: %#x)",
		objectFile,
		offsets[overlay.Text], offsets[overlay.Data],
		offsets[overlay.RoData], offsets[overlay.BSS])

	return ld.dbg.AddSymbolFile(objectFile, Bias, offsets)
}

// Unload the overlay loaded at loadAddr, removing its symbol file from the
// host. Unloading an address that is not in the registry is a no-op.
func (ld *Loader) Unload(loadAddr uint32) error {
	objectFile, ok := ld.reg.Remove(loadAddr)
	if !ok {
		return nil
	}

	ld.print("Unloading overlay: %s (%d left)", overlay.Stem(objectFile), ld.reg.Len())
	return ld.dbg.RemoveSymbolFile(objectFile)
}

// LoadFromTable loads symbols for the overlay described by an entry in one
// of the game's overlay tables. An overlay the game has not currently loaded
// is reported as a diagnostic, not an error.
func (ld *Loader) LoadFromTable(target overlay.Target, track bool) error {
	loadAddr, err := ld.dbg.EvaluateU32(descriptorField(target, overlay.FieldLoadedRAMAddr))
	if err != nil {
		return err
	}

	if loadAddr == 0 {
		ld.print("ERROR: Requested overlay is not currently loaded")
		return nil
	}

	vramStart, err := ld.dbg.EvaluateU32(descriptorField(target, overlay.FieldVRAMStart))
	if err != nil {
		return err
	}

	if track {
		return ld.Load(loadAddr, vramStart)
	}
	return ld.LoadOnce(loadAddr, vramStart)
}

// LoadByName loads symbols for an overlay named on the command line: either
// one of the fixed aliases or the name of an overlay enum value. Unknown
// enum prefixes and unresolvable enum values are reported as diagnostics,
// not errors.
func (ld *Loader) LoadByName(name string, track bool) error {
	name = strings.ToUpper(name)

	if target, ok := overlay.Alias(name); ok {
		return ld.LoadFromTable(target, track)
	}

	table, err := overlay.TableForEnum(name)
	if err != nil {
		ld.print("ERROR: Type of enum provided is not supported")
		return nil
	}

	// the enum value's numeric index lives in the game's debug information
	index, err := ld.dbg.EvaluateU32(name)
	if err != nil {
		ld.print("ERROR: Provided enum value could not be found in the elf")
		return nil
	}

	return ld.LoadFromTable(overlay.Target{Table: table, Index: index}, track)
}

// resolveSections names the overlay linked at vramStart and resolves the
// link-time start address of each of its sections.
func (ld *Loader) resolveSections(vramStart uint32) (string, overlay.Addresses, error) {
	var link overlay.Addresses

	section, err := ld.dbg.SectionOfSymbol(fmt.Sprintf("%#x", vramStart))
	if err != nil {
		// symbol information can be missing for the base address itself.
		// the memory layout table still knows the section
		logger.Logf("overlay", "info symbol failed (%v), scanning memory layout", err)
		section, err = ld.dbg.SectionAtAddress(vramStart)
		if err != nil {
			return "", link, err
		}
	}

	name := gdb.CleanSectionName(section)

	for _, sec := range overlay.Sections {
		symbol := overlay.StartSymbol(name, sec)
		addr, err := gdb.SymbolAddress(ld.dbg, symbol)
		if err != nil {
			return "", link, curated.Errorf(MissingLinkerSymbol, symbol, err)
		}
		link[sec] = addr
	}

	return name, link, nil
}

// objectFile finds the on-disk object file containing the debug symbols of
// the overlay linked at vramStart, by way of the source file backing the
// first symbol of the overlay.
func (ld *Loader) objectFile(vramStart uint32) (string, error) {
	symbol, err := ld.dbg.SymbolName(vramStart)
	if err != nil {
		return "", err
	}

	sourceFile, err := ld.dbg.SourceFile(symbol)
	if err != nil {
		return "", err
	}

	programFile, err := ld.dbg.ProgramFile()
	if err != nil {
		return "", err
	}

	return overlay.ObjectFile(programFile, sourceFile), nil
}

func descriptorField(target overlay.Target, field string) string {
	return fmt.Sprintf("%s[%d].%s", target.Table.Symbol, target.Index, field)
}
