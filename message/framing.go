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

// Package message implements the RFC 1459 line grammar: locating complete
// lines in a byte buffer and parsing them into prefix/command/parameters.
package message

// MaxLineLen is the RFC 1459 line length cap, terminator included.
const MaxLineLen = 512

// FindCRLF returns the length, terminator included, of the first CR-LF
// terminated line in buf. It returns 0 if no complete CR-LF line is present.
// Used by the DCC CHAT data phase, which is strictly CR-LF.
func FindCRLF(buf []byte) int {
	for i := 0; i+1 < len(buf); i++ {
		if buf[i] == '\r' && buf[i+1] == '\n' {
			return i + 2
		}
	}
	return 0
}

// FindCROrLF scans buf for the first CR or LF byte and returns the offset
// past the terminator, consuming a second terminator byte if the pair
// CRLF or LFCR immediately follows. It returns 0 if no terminator is found.
//
// IRC servers vary in which terminator they send; accepting either is
// required for interop, while DCC CHAT (FindCRLF) strictly requires CR-LF.
func FindCROrLF(buf []byte) int {
	for i, b := range buf {
		if b != '\r' && b != '\n' {
			continue
		}

		n := i + 1
		if n < len(buf) && buf[n] != b && (buf[n] == '\r' || buf[n] == '\n') {
			n++
		}
		return n
	}
	return 0
}
