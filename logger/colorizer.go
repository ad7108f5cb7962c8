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

package logger

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// Colorizer applies basic coloring rules to logging output. The tag part of
// an entry is dimmed, leaving the detail part in the terminal's normal pen.
type Colorizer struct {
	out io.Writer
	tag *color.Color
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out: out,
		tag: color.New(color.FgHiBlack),
	}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := string(p)

	tag, detail, ok := strings.Cut(s, ": ")
	if !ok {
		return c.out.Write(p)
	}

	m, err := c.tag.Fprintf(c.out, "%s: ", tag)
	n += m
	if err != nil {
		return n, err
	}

	m, err = io.WriteString(c.out, detail)
	return n + m, err
}
