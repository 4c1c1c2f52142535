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

package irc

import (
	"strings"

	"github.com/mir-ror/libircclient/ctcp"
	"github.com/mir-ror/libircclient/dcc"
	"github.com/mir-ror/libircclient/message"
	"github.com/mir-ror/libircclient/numeric"
)

const motdEnd = numeric.RPL_ENDOFMOTD

// dispatch classifies a parsed line and invokes the matching callback slot
// (spec §4.3). All locks are released before any callback runs.
func (s *Session) dispatch(msg message.Message) {
	origin := msg.Origin
	if s.hasOption(OptStripNicks) {
		origin = message.StripNick(origin)
	}

	if code, ok := msg.IsNumeric(); ok {
		s.dispatchNumeric(code, origin, msg)
		return
	}

	switch strings.ToUpper(msg.Command) {
	case "PRIVMSG":
		s.dispatchPrivmsg(origin, msg)
	case "NOTICE":
		s.dispatchNotice(origin, msg)
	case "NICK":
		s.call(s.cb.Nick, origin, msg)
	case "QUIT":
		s.call(s.cb.Quit, origin, msg)
	case "JOIN":
		s.call(s.cb.Join, origin, msg)
	case "PART":
		s.call(s.cb.Part, origin, msg)
	case "MODE":
		s.dispatchMode(origin, msg)
	case "TOPIC":
		s.call(s.cb.Topic, origin, msg)
	case "KICK":
		s.call(s.cb.Kick, origin, msg)
	case "INVITE":
		s.call(s.cb.Invite, origin, msg)
	default:
		s.call(s.cb.Unknown, origin, msg)
	}
}

func (s *Session) call(fn EventFunc, origin string, msg message.Message) {
	if fn != nil {
		fn(s, origin, msg)
	}
}

func (s *Session) dispatchNumeric(code int, origin string, msg message.Message) {
	if code == motdEnd {
		s.mu.Lock()
		s.motdSeen = true
		s.mu.Unlock()
	}

	if code == numeric.RPL_WELCOME && s.cb.Connect != nil {
		s.cb.Connect(s)
	}

	if s.cb.Numeric != nil {
		s.cb.Numeric(s, code, origin, msg)
	}
}

func (s *Session) dispatchMode(origin string, msg message.Message) {
	if len(msg.Params) > 0 && !strings.HasPrefix(msg.Params[0], "#") &&
		!strings.HasPrefix(msg.Params[0], "&") && strings.EqualFold(msg.Params[0], s.cfg.Nick) {
		s.call(s.cb.UMode, origin, msg)
		return
	}
	s.call(s.cb.Mode, origin, msg)
}

func (s *Session) dispatchPrivmsg(origin string, msg message.Message) {
	if len(msg.Params) < 2 {
		s.call(s.cb.Unknown, origin, msg)
		return
	}
	target, text := msg.Params[0], msg.Params[1]

	if verb, rest, ok := ctcp.Decode(text); ok {
		s.dispatchCTCP(origin, target, verb, rest, false)
		return
	}

	if strings.EqualFold(target, s.cfg.Nick) {
		s.call(s.cb.PrivMsg, origin, msg)
	} else {
		s.call(s.cb.Channel, origin, msg)
	}
}

func (s *Session) dispatchNotice(origin string, msg message.Message) {
	if len(msg.Params) < 2 {
		s.call(s.cb.Unknown, origin, msg)
		return
	}
	target, text := msg.Params[0], msg.Params[1]

	if verb, rest, ok := ctcp.Decode(text); ok {
		s.dispatchCTCP(origin, target, verb, rest, true)
		return
	}

	if strings.EqualFold(target, s.cfg.Nick) {
		s.call(s.cb.Notice, origin, msg)
	} else {
		s.call(s.cb.ChannelNotice, origin, msg)
	}
}

func (s *Session) dispatchCTCP(origin, target, verb, rest string, isNotice bool) {
	if strings.EqualFold(verb, "DCC") {
		s.dispatchDCC(origin, rest)
		return
	}

	if isNotice {
		if s.cb.CTCPReply != nil {
			s.cb.CTCPReply(s, origin, target, verb, rest)
		}
		return
	}

	if strings.EqualFold(verb, "ACTION") {
		if s.cb.CTCPAction != nil {
			s.cb.CTCPAction(s, origin, target, verb, rest)
		}
		return
	}

	if s.ctcpAutoReply {
		s.autoReplyCTCP(origin, verb)
	}

	if s.cb.CTCPRequest != nil {
		s.cb.CTCPRequest(s, origin, target, verb, rest)
	}
}

func (s *Session) autoReplyCTCP(origin, verb string) {
	switch strings.ToUpper(verb) {
	case "VERSION":
		_ = s.CmdCTCPReply(message.TargetNick(origin), "VERSION", "libircclient-go")
	case "PING":
		_ = s.CmdCTCPReply(message.TargetNick(origin), "PING")
	case "TIME":
		_ = s.CmdCTCPReply(message.TargetNick(origin), "TIME")
	}
}

// dispatchDCC consumes a "DCC ..." CTCP payload (spec §4.7): it is never
// surfaced through CTCPRequest.
func (s *Session) dispatchDCC(origin, rest string) {
	req, ok := dcc.ParseRequest(rest)
	if !ok {
		return
	}

	switch req.Mode {
	case dcc.Chat:
		// NewChatRequest leaves Context() nil; use the slot to carry the
		// offering nick since Chat has no filename to report there.
		d := s.dcc.NewChatRequest(req, nil)
		d.SetContext(origin)
		if s.cb.DCCChatRequest != nil {
			s.cb.DCCChatRequest(s, d)
		}
	case dcc.RecvFile:
		// NewSendRequest already sets Context() to the offered filename;
		// do not overwrite it.
		d := s.dcc.NewSendRequest(req, nil)
		if s.cb.DCCSendRequest != nil {
			s.cb.DCCSendRequest(s, d)
		}
	}
}
