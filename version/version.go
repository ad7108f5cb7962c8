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

// Package version records the version of the application binary.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "gdb-load-ovl"

// Version contains the version string for the binary. If the source was built
// outside of version control the string is "local".
var Version = "local"

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var revision string
	var modified bool

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if revision == "" {
		return
	}

	if len(revision) > 7 {
		revision = revision[:7]
	}
	if modified {
		revision = revision + "+dirty"
	}
	Version = revision
}
