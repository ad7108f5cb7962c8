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
	"strings"

	"github.com/fig02/gdb-load-ovl/curated"
)

// Kind classifies an MI output record.
type Kind int

// List of valid Kind values.
const (
	// result of a command: "^done", "^error,msg=..."
	KindResult Kind = iota

	// asynchronous target state change: "*stopped,reason=..."
	KindExecAsync

	// asynchronous progress information: "+download,..."
	KindStatusAsync

	// asynchronous notification: "=breakpoint-modified,..."
	KindNotifyAsync

	// console output stream: ~"text"
	KindConsoleStream

	// target output stream: @"text"
	KindTargetStream

	// gdb internal log stream: &"text"
	KindLogStream

	// the "(gdb)" ready prompt
	KindPrompt
)

// Record is a single line of MI output from gdb.
type Record struct {
	// the token of the command this record responds to. empty for
	// asynchronous and stream records
	Token string

	Kind  Kind
	Class string

	// name/value payload of result and async records
	Results Results

	// unescaped text of stream records
	Stream string
}

// Results is the name/value payload of a result or async record.
type Results map[string]Value

// Str returns the string form of a named result. Absent names and non-string
// values return the empty string.
func (r Results) Str(name string) string {
	return r[name].Str
}

// Value is a single MI result value: a c-string, a tuple or a list.
type Value struct {
	Str   string
	Tuple Results
	List  []Value
}

// Sentinel error returned by ParseRecord.
const BadRecord = "malformed MI record: %q"

// ParseRecord parses a single line of MI output. The line must already be
// stripped of its trailing newline.
func ParseRecord(line string) (Record, error) {
	line = strings.TrimSuffix(line, "\r")

	if line == "(gdb)" || line == "(gdb) " {
		return Record{Kind: KindPrompt}, nil
	}

	var rec Record

	// leading digits are the command token
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	rec.Token = line[:i]
	line = line[i:]

	if line == "" {
		return Record{}, curated.Errorf(BadRecord, line)
	}

	switch line[0] {
	case '^':
		rec.Kind = KindResult
	case '*':
		rec.Kind = KindExecAsync
	case '+':
		rec.Kind = KindStatusAsync
	case '=':
		rec.Kind = KindNotifyAsync
	case '~', '@', '&':
		switch line[0] {
		case '~':
			rec.Kind = KindConsoleStream
		case '@':
			rec.Kind = KindTargetStream
		case '&':
			rec.Kind = KindLogStream
		}
		s, rest, err := parseCString(line[1:])
		if err != nil || rest != "" {
			return Record{}, curated.Errorf(BadRecord, line)
		}
		rec.Stream = s
		return rec, nil
	default:
		return Record{}, curated.Errorf(BadRecord, line)
	}

	// class runs to the first comma or to the end of the line
	body := line[1:]
	class, rest, ok := strings.Cut(body, ",")
	rec.Class = class

	if ok {
		results, err := parseResults(rest)
		if err != nil {
			return Record{}, curated.Errorf(BadRecord, line)
		}
		rec.Results = results
	}

	return rec, nil
}

// parseResults parses a comma separated list of name=value pairs, consuming
// the whole string.
func parseResults(s string) (Results, error) {
	results := make(Results)

	for s != "" {
		name, rest, ok := strings.Cut(s, "=")
		if !ok {
			return nil, curated.Errorf(BadRecord, s)
		}

		value, remainder, err := parseValue(rest)
		if err != nil {
			return nil, err
		}
		results[name] = value

		s = strings.TrimPrefix(remainder, ",")
		if remainder != "" && s == remainder {
			return nil, curated.Errorf(BadRecord, remainder)
		}
	}

	return results, nil
}

// parseValue parses a single value, returning the remainder of the string.
func parseValue(s string) (Value, string, error) {
	if s == "" {
		return Value{}, "", curated.Errorf(BadRecord, s)
	}

	switch s[0] {
	case '"':
		str, rest, err := parseCString(s)
		return Value{Str: str}, rest, err

	case '{':
		tuple := make(Results)
		s = s[1:]
		for {
			if s == "" {
				return Value{}, "", curated.Errorf(BadRecord, s)
			}
			if s[0] == '}' {
				return Value{Tuple: tuple}, s[1:], nil
			}

			name, rest, ok := strings.Cut(s, "=")
			if !ok {
				return Value{}, "", curated.Errorf(BadRecord, s)
			}
			value, remainder, err := parseValue(rest)
			if err != nil {
				return Value{}, "", err
			}
			tuple[name] = value
			s = strings.TrimPrefix(remainder, ",")
		}

	case '[':
		var list []Value
		s = s[1:]
		for {
			if s == "" {
				return Value{}, "", curated.Errorf(BadRecord, s)
			}
			if s[0] == ']' {
				return Value{List: list}, s[1:], nil
			}

			// list elements may be plain values or name=value pairs. the
			// names add nothing for our purposes and are dropped
			if i := strings.IndexAny(s, "=\"[{,]"); i >= 0 && s[i] == '=' {
				s = s[i+1:]
			}

			value, remainder, err := parseValue(s)
			if err != nil {
				return Value{}, "", err
			}
			list = append(list, value)
			s = strings.TrimPrefix(remainder, ",")
		}
	}

	return Value{}, "", curated.Errorf(BadRecord, s)
}

// parseCString unescapes a double-quoted MI c-string, returning the remainder
// of the string after the closing quote.
func parseCString(s string) (string, string, error) {
	if s == "" || s[0] != '"' {
		return "", "", curated.Errorf(BadRecord, s)
	}

	var b strings.Builder

	for i := 1; i < len(s); i++ {
		c := s[i]

		switch c {
		case '"':
			return b.String(), s[i+1:], nil

		case '\\':
			i++
			if i >= len(s) {
				return "", "", curated.Errorf(BadRecord, s)
			}
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				// unknown escape. keep it verbatim rather than guess
				b.WriteByte('\\')
				b.WriteByte(s[i])
			}

		default:
			b.WriteByte(c)
		}
	}

	return "", "", curated.Errorf(BadRecord, s)
}
