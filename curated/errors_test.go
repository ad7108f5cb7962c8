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

package curated_test

import (
	"testing"

	"github.com/fig02/gdb-load-ovl/curated"
	"github.com/fig02/gdb-load-ovl/test"
)

const (
	testError  = "test error: %s"
	wrapsError = "wrapping error: %v"
)

func TestMessage(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")
}

func TestDeduplication(t *testing.T) {
	// packing errors with the same leading message part next to each other
	// causes one of them to be dropped
	e := curated.Errorf(testError, "foo")
	f := curated.Errorf("test error: %v", e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")

	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, wrapsError))

	// a wrapped error no longer matches the inner pattern with Is() ...
	f := curated.Errorf(wrapsError, e)
	test.ExpectFailure(t, curated.Is(f, testError))

	// ... but it does with Has()
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, wrapsError))

	// plain errors are never curated
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testError))
	test.ExpectFailure(t, curated.Has(nil, testError))
}
