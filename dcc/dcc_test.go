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

package dcc_test

import (
	liberr "github.com/mir-ror/libircclient/errors"
	"github.com/mir-ror/libircclient/ircerr"

	. "github.com/mir-ror/libircclient/dcc"
	"github.com/mir-ror/libircclient/duration"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("host-byte-order IP", func() {
	It("round-trips 127.0.0.1 as 2130706433", func() {
		ip := [4]byte{127, 0, 0, 1}
		Expect(EncodeIPv4HostOrder(ip)).To(Equal(uint32(2130706433)))
		Expect(DecodeIPv4HostOrder(2130706433)).To(Equal(ip))
	})
})

var _ = Describe("ParseRequest", func() {
	It("parses a CHAT offer", func() {
		req, ok := ParseRequest("CHAT chat 2130706433 40000")
		Expect(ok).To(BeTrue())
		Expect(req.Mode).To(Equal(Chat))
		Expect(FormatIPv4(req.IP)).To(Equal("127.0.0.1"))
		Expect(req.Port).To(Equal(40000))
	})

	It("parses a SEND offer", func() {
		req, ok := ParseRequest("SEND photo.jpg 2130706433 40001 7")
		Expect(ok).To(BeTrue())
		Expect(req.Mode).To(Equal(RecvFile))
		Expect(req.Filename).To(Equal("photo.jpg"))
		Expect(req.Size).To(Equal(uint64(7)))
	})

	It("rejects malformed input", func() {
		_, ok := ParseRequest("PING")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Table", func() {
	It("assigns monotonically increasing ids and creates sessions in INIT", func() {
		tbl := NewTable(duration.Seconds(30))
		req, _ := ParseRequest("CHAT chat 2130706433 40000")

		s1 := tbl.NewChatRequest(req, nil)
		s2 := tbl.NewChatRequest(req, nil)

		Expect(s1.State()).To(Equal(Init))
		Expect(s2.ID).To(BeNumerically(">", s1.ID))
	})

	It("declining destroys a pending session", func() {
		tbl := NewTable(duration.Seconds(30))
		req, _ := ParseRequest("CHAT chat 2130706433 40000")
		s := tbl.NewChatRequest(req, nil)

		Expect(tbl.Decline(s.ID)).To(BeNil())
		_, ok := tbl.Lookup(s.ID)
		Expect(ok).To(BeFalse())
	})

	It("a callback destroying its own session does not break iteration of others", func() {
		tbl := NewTable(duration.Seconds(30))
		req, _ := ParseRequest("CHAT chat 2130706433 40000")

		var seen []uint64
		s1 := tbl.NewChatRequest(req, nil)
		s2 := tbl.NewChatRequest(req, nil)

		tbl.Range(func(s *Session) {
			seen = append(seen, s.ID)
			if s.ID == s1.ID {
				s.Destroy()
			}
		})

		Expect(seen).To(ConsistOf(s1.ID, s2.ID))
		Expect(s1.State()).To(Equal(Removed))
	})
})

var _ = Describe("DCC error codes", func() {
	It("carries a message distinct per code", func() {
		codes := []liberr.CodeError{
			ircerr.ErrNoMem, ircerr.ErrSocket, ircerr.ErrConnect, ircerr.ErrClosed,
			ircerr.ErrRead, ircerr.ErrWrite, ircerr.ErrAccept, ircerr.ErrState,
			ircerr.ErrTimeout, ircerr.ErrNoDCCSend, ircerr.ErrOpenFile, ircerr.ErrInval,
			ircerr.ErrTerminated,
		}
		seen := make(map[string]bool, len(codes))
		for _, c := range codes {
			msg := c.Message()
			Expect(msg).NotTo(Equal(liberr.UnknownMessage))
			Expect(seen).NotTo(HaveKey(msg))
			seen[msg] = true
		}
	})

	It("SendChat on a destroyed session reports ErrTerminated, not the generic ErrState", func() {
		tbl := NewTable(duration.Seconds(30))
		req, _ := ParseRequest("CHAT chat 2130706433 40000")
		s := tbl.NewChatRequest(req, nil)

		s.Destroy()

		err := s.SendChat("hello")
		Expect(err).NotTo(BeNil())
		Expect(err.GetCode()).To(Equal(ircerr.ErrTerminated))
	})
})
