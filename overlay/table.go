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

import (
	"strings"

	"github.com/fig02/gdb-load-ovl/curated"
)

// Table identifies one of the game's overlay descriptor tables. Entries in
// every table carry the fields named by the Field constants.
type Table struct {
	// the global symbol naming the table in the game's ELF
	Symbol string
}

// The descriptor tables present in the game.
var (
	KaleidoMgrTable = Table{Symbol: "gKaleidoMgrOverlayTable"}
	GameStateTable  = Table{Symbol: "gGameStateOverlayTable"}
	ActorTable      = Table{Symbol: "gActorOverlayTable"}
	EffectTable     = Table{Symbol: "gEffectSsOverlayTable"}
)

// Descriptor fields common to every overlay table.
const (
	FieldLoadedRAMAddr = "loadedRamAddr"
	FieldVRAMStart     = "vramStart"
)

// Target is a table and index pair locating a single overlay descriptor.
type Target struct {
	Table Table
	Index uint32
}

// Sentinel error returned by TableForEnum.
const UnsupportedType = "unsupported overlay type: %s"

// Alias resolves the overlay names that cannot be looked up as enum values.
// The pause menu overlay has no enum at all and the player actor's index does
// not correspond to his actor ID; both live at fixed indices in the kaleido
// manager table.
//
// The name must already be in upper case.
func Alias(name string) (Target, bool) {
	switch name {
	case "PAUSE", "KALEIDO", "KALEIDO_SCOPE":
		return Target{Table: KaleidoMgrTable, Index: 0}, true
	case "ACTOR_PLAYER":
		return Target{Table: KaleidoMgrTable, Index: 1}, true
	}
	return Target{}, false
}

// TableForEnum selects the descriptor table for an enum value name. The part
// of the name before the first underscore decides the table: GAMESTATE_*,
// ACTOR_* and EFFECT_* names are supported.
//
// The name must already be in upper case.
func TableForEnum(name string) (Table, error) {
	prefix, _, _ := strings.Cut(name, "_")

	switch prefix {
	case "GAMESTATE":
		return GameStateTable, nil
	case "ACTOR":
		return ActorTable, nil
	case "EFFECT":
		return EffectTable, nil
	}

	return Table{}, curated.Errorf(UnsupportedType, prefix)
}
