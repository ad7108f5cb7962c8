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
	"sort"

	"github.com/fig02/gdb-load-ovl/curated"
)

// Sentinel error returned by Registry.Add.
const AlreadyLoaded = "overlay already loaded at %#08x"

// Registry records which overlays currently have symbols loaded. Keys are
// runtime load addresses and values are the paths of the object files whose
// symbols were registered with the host.
//
// The Registry is only ever accessed from the debugger input loop and the
// breakpoint stop dispatch, which run on the same goroutine, so there is no
// locking.
type Registry struct {
	objects map[uint32]string
}

// NewRegistry is the preferred method of initialisation for the Registry
// type.
func NewRegistry() *Registry {
	return &Registry{
		objects: make(map[uint32]string),
	}
}

// Add an entry to the registry. At most one entry can exist per load address
// so adding an address that is already present is an error.
func (reg *Registry) Add(addr uint32, objectFile string) error {
	if _, ok := reg.objects[addr]; ok {
		return curated.Errorf(AlreadyLoaded, addr)
	}
	reg.objects[addr] = objectFile
	return nil
}

// Remove the entry for the specified load address, returning the object file
// path that was registered for it. Removing an address that is not present is
// a no-op.
func (reg *Registry) Remove(addr uint32) (string, bool) {
	objectFile, ok := reg.objects[addr]
	if ok {
		delete(reg.objects, addr)
	}
	return objectFile, ok
}

// Contains returns true if the specified load address is in the registry.
func (reg *Registry) Contains(addr uint32) bool {
	_, ok := reg.objects[addr]
	return ok
}

// Len returns the number of overlays in the registry.
func (reg *Registry) Len() int {
	return len(reg.objects)
}

// Loaded returns every entry in the registry, sorted by load address.
func (reg *Registry) Loaded() []Entry {
	entries := make([]Entry, 0, len(reg.objects))
	for addr, objectFile := range reg.objects {
		entries = append(entries, Entry{Addr: addr, ObjectFile: objectFile})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Addr < entries[j].Addr
	})
	return entries
}

// Entry is a single record in the Registry.
type Entry struct {
	Addr       uint32
	ObjectFile string
}
