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

// Package ctcp implements the \x01...\x01 in-band framing used for CTCP
// requests/replies and DCC negotiation, carried inside PRIVMSG/NOTICE text.
package ctcp

import "strings"

const delim = '\x01'

// Encode wraps verb and the (already space-joined) rest of the payload in
// \x01 delimiters. It does not escape the payload: this is a sender-side
// contract per spec §4.4.
func Encode(verb string, rest ...string) string {
	var b strings.Builder
	b.WriteByte(delim)
	b.WriteString(verb)
	for _, r := range rest {
		b.WriteByte(' ')
		b.WriteString(r)
	}
	b.WriteByte(delim)
	return b.String()
}

// IsCTCP reports whether text is CTCP-framed: it begins and ends with \x01
// and contains at least one byte of payload. A message missing the closing
// \x01 is treated as a normal (non-CTCP) PRIVMSG per spec §8.
func IsCTCP(text string) bool {
	return len(text) >= 3 && text[0] == delim && text[len(text)-1] == delim
}

// Decode splits CTCP-framed text into its verb and the remaining argument
// string. ok is false if text is not CTCP-framed.
func Decode(text string) (verb string, rest string, ok bool) {
	if !IsCTCP(text) {
		return "", "", false
	}

	body := text[1 : len(text)-1]
	if sp := strings.IndexByte(body, ' '); sp >= 0 {
		return body[:sp], body[sp+1:], true
	}
	return body, "", true
}
