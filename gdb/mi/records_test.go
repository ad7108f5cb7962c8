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

package mi

import (
	"testing"

	"github.com/fig02/gdb-load-ovl/test"
)

func TestParseResultRecords(t *testing.T) {
	rec, err := ParseRecord("7^done")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec.Kind, KindResult)
	test.ExpectEquality(t, rec.Token, "7")
	test.ExpectEquality(t, rec.Class, "done")

	rec, err = ParseRecord(`8^done,value="0x8012a5c0"`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec.Results.Str("value"), "0x8012a5c0")

	rec, err = ParseRecord(`9^error,msg="No symbol \"foo\" in current context."`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec.Class, "error")
	test.ExpectEquality(t, rec.Results.Str("msg"), `No symbol "foo" in current context.`)
}

func TestParseBreakpointRecord(t *testing.T) {
	rec, err := ParseRecord(`12^done,bkpt={number="2",type="breakpoint",disp="keep",enabled="y",addr="0x800ccfb0",func="Overlay_Load",times="0"}`)
	test.ExpectSuccess(t, err)

	bkpt := rec.Results["bkpt"].Tuple
	test.ExpectSuccess(t, bkpt != nil)
	test.ExpectEquality(t, bkpt.Str("number"), "2")
	test.ExpectEquality(t, bkpt.Str("func"), "Overlay_Load")
}

func TestParseStoppedRecord(t *testing.T) {
	rec, err := ParseRecord(`*stopped,reason="breakpoint-hit",disp="keep",bkptno="2",frame={addr="0x800ccfb0",func="Overlay_Load",args=[{name="allocatedRamAddr",value="0x80400000"}]},thread-id="1"`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec.Kind, KindExecAsync)
	test.ExpectEquality(t, rec.Class, "stopped")
	test.ExpectEquality(t, rec.Results.Str("reason"), "breakpoint-hit")
	test.ExpectEquality(t, rec.Results.Str("bkptno"), "2")

	frame := rec.Results["frame"].Tuple
	test.ExpectSuccess(t, frame != nil)
	test.ExpectEquality(t, frame.Str("func"), "Overlay_Load")
	test.ExpectEquality(t, len(frame["args"].List), 1)
}

func TestParseStreamRecords(t *testing.T) {
	rec, err := ParseRecord(`~"Play_Init in section ..code\n"`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec.Kind, KindConsoleStream)
	test.ExpectEquality(t, rec.Stream, "Play_Init in section ..code\n")

	rec, err = ParseRecord(`&"warning: something\n"`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec.Kind, KindLogStream)

	_, err = ParseRecord(`~"unterminated`)
	test.ExpectFailure(t, err)
}

func TestParsePrompt(t *testing.T) {
	rec, err := ParseRecord("(gdb)")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rec.Kind, KindPrompt)
}

func TestParseGarbage(t *testing.T) {
	_, err := ParseRecord("complete nonsense")
	test.ExpectFailure(t, err)

	_, err = ParseRecord("")
	test.ExpectFailure(t, err)
}
