/*
 * MIT License
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package message

import (
	"strconv"
	"strings"
)

// Message is a parsed IRC line: optional origin, a command (textual verb or
// numeric code, carried as the raw token), and up to 15 parameters.
type Message struct {
	Origin  string
	Command string
	Params  []string
}

// IsNumeric reports whether Command parses as a three-digit numeric reply,
// returning the integer code.
func (m Message) IsNumeric() (code int, ok bool) {
	if len(m.Command) != 3 {
		return 0, false
	}
	for _, r := range m.Command {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(m.Command)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Param returns the i-th parameter, or "" if it does not exist.
func (m Message) Param(i int) string {
	if i < 0 || i >= len(m.Params) {
		return ""
	}
	return m.Params[i]
}

const maxParams = 15

// Parse splits an IRC wire line (without its CR-LF terminator) into a
// Message per spec §4.2: a leading ':' marks the origin token; the next
// token is the command; remaining tokens are space-separated parameters
// until one begins with ':', which introduces a single trailing parameter
// spanning the rest of the line. Empty tokens are never produced, except
// the trailing parameter itself (a line ending in " :" with nothing after
// yields an empty string parameter rather than a dropped one).
func Parse(line string) Message {
	var m Message

	if line == "" {
		return m
	}

	if line[0] == ':' {
		sp := strings.IndexByte(line, ' ')
		if sp < 0 {
			m.Origin = line[1:]
			return m
		}
		m.Origin = line[1:sp]
		line = strings.TrimLeft(line[sp+1:], " ")
	}

	if line == "" {
		return m
	}

	if line[0] == ':' {
		m.Command = ""
		return m
	}

	sp := strings.IndexByte(line, ' ')
	if sp < 0 {
		m.Command = line
		return m
	}
	m.Command = line[:sp]
	line = strings.TrimLeft(line[sp+1:], " ")

	m.Params = make([]string, 0, 4)
	for len(line) > 0 && len(m.Params) < maxParams {
		if line[0] == ':' {
			m.Params = append(m.Params, line[1:])
			break
		}

		sp = strings.IndexByte(line, ' ')
		if sp < 0 {
			m.Params = append(m.Params, line)
			break
		}

		tok := line[:sp]
		line = strings.TrimLeft(line[sp+1:], " ")
		if tok == "" {
			continue
		}
		m.Params = append(m.Params, tok)
	}

	return m
}

// StripNick truncates an origin of the form "nick!user@host" to "nick",
// implementing the STRIPNICKS option (spec §4.3). Origins with no '!' are
// returned unchanged.
func StripNick(origin string) string {
	if i := strings.IndexByte(origin, '!'); i >= 0 {
		return origin[:i]
	}
	return origin
}

// TargetNick extracts the nick component of a "nick!user@host" origin,
// the Go equivalent of irc_target_get_nick. Returns origin unchanged if it
// contains no '!'.
func TargetNick(origin string) string {
	return StripNick(origin)
}

// TargetHost extracts the host component of a "nick!user@host" origin, the
// Go equivalent of irc_target_get_host. Returns "" if origin contains no '@'.
func TargetHost(origin string) string {
	if i := strings.IndexByte(origin, '@'); i >= 0 {
		return origin[i+1:]
	}
	return ""
}
