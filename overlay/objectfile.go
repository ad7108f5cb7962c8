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
	"path/filepath"
	"strings"
)

// ObjectFile derives the path of the pre-compiled object file for a source
// file. The build mirrors the source tree under the directory holding the
// linked ROM ELF, with the source extension replaced by ".o". The sourceFile
// argument is the path as recorded in the ELF's debug information, which is
// relative to the build directory.
func ObjectFile(programFile string, sourceFile string) string {
	ext := filepath.Ext(sourceFile)
	object := strings.TrimSuffix(sourceFile, ext) + ".o"
	return filepath.Join(filepath.Dir(programFile), object)
}

// Stem returns the final element of a path with any extension removed. Used
// when naming an overlay's object file in progress messages.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
