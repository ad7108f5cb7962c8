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

func TestObjectFile(t *testing.T) {
	object := overlay.ObjectFile(
		"/home/fig/oot/build/oot-gc-eu-mq-dbg.elf",
		"src/overlays/actors/ovl_En_Kusa/z_en_kusa.c",
	)
	test.ExpectEquality(t, object, "/home/fig/oot/build/src/overlays/actors/ovl_En_Kusa/z_en_kusa.o")
}

func TestStem(t *testing.T) {
	test.ExpectEquality(t, overlay.Stem("build/src/overlays/actors/ovl_En_Kusa/z_en_kusa.o"), "z_en_kusa")
	test.ExpectEquality(t, overlay.Stem("z_en_kusa"), "z_en_kusa")
}
