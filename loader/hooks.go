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
	"github.com/fig02/gdb-load-ovl/curated"
	"github.com/fig02/gdb-load-ovl/gdb"
)

// The engine functions hooked for automatic loading and unloading. The free
// functions must have been compiled with debug flags (eg. -Og -g) for their
// local variables to be readable.
const (
	hookOverlayLoad  = "Overlay_Load"
	hookArenaFree    = "ZeldaArena_FreeDebug"
	hookSystemFree   = "SystemArena_FreeDebug"
	hookKaleidoClear = "KaleidoManager_ClearOvl"
)

// InstallHooks registers the breakpoints that drive automatic loading and
// unloading. The free hooks are always active; the load hook is only enabled
// when autoload is on.
func (ld *Loader) InstallHooks(autoload bool) error {
	bp, err := ld.dbg.CreateBreakpoint(hookOverlayLoad, autoload, ld.onOverlayLoad)
	if err != nil {
		return err
	}
	ld.autoload = bp

	if _, err := ld.dbg.CreateBreakpoint(hookArenaFree, true, ld.onOverlayFree); err != nil {
		return err
	}
	if _, err := ld.dbg.CreateBreakpoint(hookSystemFree, true, ld.onOverlayFree); err != nil {
		return err
	}
	if _, err := ld.dbg.CreateBreakpoint(hookKaleidoClear, true, ld.onKaleidoClear); err != nil {
		return err
	}

	return nil
}

// SetAutoLoad enables or disables the automatic loading of overlay symbols
// as the game loads them. Overlays that are already loaded are unaffected.
func (ld *Loader) SetAutoLoad(enable bool) error {
	if ld.autoload == nil {
		return curated.Errorf(NotHooked)
	}
	return ld.autoload.Enable(enable)
}

// AutoLoad returns true if automatic loading is enabled.
func (ld *Loader) AutoLoad() bool {
	return ld.autoload != nil && ld.autoload.Enabled()
}

// onOverlayLoad fires inside the engine's overlay loading routine. The
// overlay's new address and its link-time base are local variables in the
// interrupted frame.
func (ld *Loader) onOverlayLoad(f gdb.Frame) error {
	loadAddr, err := f.ReadU32("allocatedRamAddr")
	if err != nil {
		return err
	}

	vramStart, err := f.ReadU32("vramStart")
	if err != nil {
		return err
	}

	return ld.Load(loadAddr, vramStart)
}

// onOverlayFree fires inside the arena free routines. Most frees are not
// overlays at all; Unload() quietly ignores addresses it is not tracking.
func (ld *Loader) onOverlayFree(f gdb.Frame) error {
	ptr, err := f.ReadU32("ptr")
	if err != nil {
		return err
	}
	return ld.Unload(ptr)
}

// onKaleidoClear fires when the kaleido manager clears the pause menu or
// player overlay. The freed address is a field of the descriptor being
// cleared rather than a plain local.
func (ld *Loader) onKaleidoClear(f gdb.Frame) error {
	ptr, err := f.ReadU32("ovl->loadedRamAddr")
	if err != nil {
		return err
	}
	return ld.Unload(ptr)
}
