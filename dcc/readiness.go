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

package dcc

import "github.com/mir-ror/libircclient/internal/rawsock"

// RegisterPoll registers every live session's socket on ps per the
// readability/writability table of spec §4.8, the DCC half of
// irc.Session.AddDescriptors.
func (t *Table) RegisterPoll(ps *rawsock.PollSet) {
	t.Range(func(s *Session) {
		if s.sock == nil {
			return
		}
		ps.Add(s.FD(), s.WantRead(), s.WantWrite())
	})
}

// Process runs exactly one readiness-driven I/O step per live session
// (spec §4.8), then reaps any session destroyed during this pass.
func (t *Table) Process(ps *rawsock.PollSet) {
	t.Range(func(s *Session) {
		if s.sock == nil {
			return
		}
		fd := s.FD()
		s.process(ps.Readable(fd), ps.Writable(fd))
	})
	t.Reap()
}
