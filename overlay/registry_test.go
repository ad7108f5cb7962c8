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

func TestRegistry(t *testing.T) {
	reg := overlay.NewRegistry()
	test.ExpectEquality(t, reg.Len(), 0)

	err := reg.Add(0x80400000, "build/ovl_En_Kusa.o")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, reg.Len(), 1)
	test.ExpectSuccess(t, reg.Contains(0x80400000))

	// only one entry allowed per load address
	err = reg.Add(0x80400000, "build/ovl_En_Daiku.o")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, overlay.AlreadyLoaded))
	test.ExpectEquality(t, reg.Len(), 1)

	objectFile, ok := reg.Remove(0x80400000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, objectFile, "build/ovl_En_Kusa.o")
	test.ExpectEquality(t, reg.Len(), 0)
}

// removing an address that was never added is a no-op
func TestRegistryRemoveAbsent(t *testing.T) {
	reg := overlay.NewRegistry()

	objectFile, ok := reg.Remove(0x80400000)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, objectFile, "")
	test.ExpectEquality(t, reg.Len(), 0)
}
