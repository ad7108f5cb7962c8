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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values, like fmt.Errorf().
//
// The difference is that the pattern string survives creation and can be
// tested for with the Is() function. For example:
//
//	const notLoaded = "overlay not loaded: %#08x"
//
//	e := curated.Errorf(notLoaded, addr)
//	if curated.Is(e, notLoaded) {
//		...
//	}
//
// Curated errors can wrap other curated errors simply by using an error value
// as one of the placeholder values. The Has() function checks whether a
// pattern occurs anywhere in the resulting chain, not just at the outermost
// level.
//
// The Error() function removes adjacent duplicate message parts when
// rendering the chain, so wrapping never produces stuttering messages.
package curated
