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

	"github.com/fig02/gdb-load-ovl/curated"
	"github.com/fig02/gdb-load-ovl/overlay"
	"github.com/fig02/gdb-load-ovl/test"
)

func TestAliases(t *testing.T) {
	for _, name := range []string{"PAUSE", "KALEIDO", "KALEIDO_SCOPE"} {
		target, ok := overlay.Alias(name)
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, target.Table, overlay.KaleidoMgrTable)
		test.ExpectEquality(t, target.Index, uint32(0))
	}

	target, ok := overlay.Alias("ACTOR_PLAYER")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, target.Table, overlay.KaleidoMgrTable)
	test.ExpectEquality(t, target.Index, uint32(1))

	// a normal actor is not an alias
	_, ok = overlay.Alias("ACTOR_EN_DAIKU")
	test.ExpectFailure(t, ok)
}

func TestTableForEnum(t *testing.T) {
	table, err := overlay.TableForEnum("ACTOR_EN_DAIKU")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, table, overlay.ActorTable)

	table, err = overlay.TableForEnum("GAMESTATE_MAP_SELECT")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, table, overlay.GameStateTable)

	table, err = overlay.TableForEnum("EFFECT_SS_DUST")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, table, overlay.EffectTable)

	_, err = overlay.TableForEnum("FOO_BAR")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, overlay.UnsupportedType))
}
