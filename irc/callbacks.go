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
	"github.com/mir-ror/libircclient/dcc"
	"github.com/mir-ror/libircclient/message"
)

// EventFunc handles a named dispatch event (spec §3 "callback table"). msg
// is the already-parsed line; origin has already had STRIPNICKS applied if
// the option is set.
type EventFunc func(s *Session, origin string, msg message.Message)

// CTCPFunc handles a CTCP request/reply/action. verb and rest are the
// decoded CTCP payload; target is the first PRIVMSG/NOTICE parameter.
type CTCPFunc func(s *Session, origin, target, verb, rest string)

// NumericFunc handles any three-digit numeric reply.
type NumericFunc func(s *Session, code int, origin string, msg message.Message)

// ConnectFunc fires each time numeric 001 (RPL_WELCOME) arrives, i.e. after
// the server has acknowledged registration.
type ConnectFunc func(s *Session)

// DCCRequestFunc fires when a peer offers a DCC CHAT or DCC SEND session.
// The application must call Table.Accept or Table.Decline on it.
type DCCRequestFunc func(s *Session, d *dcc.Session)

// Callbacks is the session's callback table (spec §3). Every slot is
// optional; a nil slot silently drops the corresponding event.
type Callbacks struct {
	Connect ConnectFunc
	Nick    EventFunc
	Quit    EventFunc
	Join    EventFunc
	Part    EventFunc
	Mode    EventFunc
	UMode   EventFunc
	Topic   EventFunc
	Kick    EventFunc
	Invite  EventFunc

	Channel       EventFunc // PRIVMSG to a channel
	PrivMsg       EventFunc // PRIVMSG to our own nick
	Notice        EventFunc
	ChannelNotice EventFunc

	CTCPRequest CTCPFunc
	CTCPReply   CTCPFunc
	CTCPAction  CTCPFunc

	Unknown EventFunc
	Numeric NumericFunc

	DCCChatRequest DCCRequestFunc
	DCCSendRequest DCCRequestFunc
}
