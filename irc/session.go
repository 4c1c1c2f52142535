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

// Package irc implements the session I/O engine of spec §4: a single
// nonblocking TCP connection to an IRC server, line framing and parsing,
// event dispatch, and a DCC multiplexer sharing the same readiness loop.
package irc

import (
	"sync"

	"github.com/mir-ror/libircclient/atomic"
	"github.com/mir-ror/libircclient/ctcp"
	"github.com/mir-ror/libircclient/dcc"
	liberr "github.com/mir-ror/libircclient/errors"
	"github.com/mir-ror/libircclient/internal/rawsock"
	"github.com/mir-ror/libircclient/ircerr"
	"github.com/mir-ror/libircclient/logger"
	"github.com/mir-ror/libircclient/message"
)

// Session is one IRC client session (spec §3). A Session may be reconnected
// after Disconnect; it is not reusable concurrently from multiple
// goroutines calling Connect at the same time.
type Session struct {
	cfg Config

	state atomic.Value[State]
	opts  atomic.Value[Option]

	mu     sync.Mutex // session mutex: outbound buffer + registration substate (spec §5)
	sock   *rawsock.Socket
	outBuf []byte
	inBuf  []byte

	motdSeen bool
	lastErr  liberr.Error

	ctx any

	cb  Callbacks
	dcc *dcc.Table

	log logger.Logger

	ctcpAutoReply bool
}

// NewSession builds a disconnected Session from cfg. cfg is copied; further
// mutation of the caller's struct has no effect.
func NewSession(cfg Config, cb Callbacks) *Session {
	d := defaultConfig()
	if cfg.DCCTimeout == 0 {
		cfg.DCCTimeout = d.DCCTimeout
	}
	if cfg.DCCBufferSize == 0 {
		cfg.DCCBufferSize = d.DCCBufferSize
	}
	if cfg.IncomingBufferSize == 0 {
		cfg.IncomingBufferSize = d.IncomingBufferSize
	}
	if cfg.OutgoingBufferSize == 0 {
		cfg.OutgoingBufferSize = d.OutgoingBufferSize
	}

	s := &Session{
		cfg: cfg,
		cb:  cb,
		dcc: dcc.NewTable(cfg.DCCTimeout),
	}
	s.state = atomic.NewValue[State]()
	s.state.Store(Init)
	s.opts = atomic.NewValue[Option]()

	if cfg.StripNicks {
		s.SetOption(OptStripNicks)
	}
	if cfg.Debug {
		s.SetOption(OptDebug)
	}

	return s
}

// SetLogger attaches a structured logger (AMBIENT STACK: logging). A nil
// logger silently disables all log output; logging is never on the
// critical path of a callback and never holds the session or DCC lock.
func (s *Session) SetLogger(l logger.Logger) {
	s.log = l
}

func (s *Session) logDebug(msg string, data any) {
	if s.log != nil {
		s.log.Debug(msg, data)
	}
}

func (s *Session) logWarn(msg string, data any) {
	if s.log != nil {
		s.log.Warning(msg, data)
	}
}

// Context returns the opaque user context pointer (spec §3).
func (s *Session) Context() any { return s.ctx }

// SetContext sets the opaque user context pointer.
func (s *Session) SetContext(ctx any) { s.ctx = ctx }

// DCC returns the session's DCC table, for Accept/Decline/ChatOffer/
// SendOffer calls (spec §4.7).
func (s *Session) DCC() *dcc.Table { return s.dcc }

// State returns the session's current connection state.
func (s *Session) State() State { return s.state.Load() }

// IsConnected reports whether the session is in the CONNECTED state, which
// it enters once the TCP connect completes (before the server's 001 reply).
func (s *Session) IsConnected() bool { return s.State() == Connected }

// SetOption sets one or more option flags (spec §6).
func (s *Session) SetOption(o Option) { s.opts.Store(s.opts.Load() | o) }

// ClearOption clears one or more option flags.
func (s *Session) ClearOption(o Option) { s.opts.Store(s.opts.Load() &^ o) }

func (s *Session) hasOption(o Option) bool { return s.opts.Load()&o != 0 }

// LastError returns the most recently recorded error (spec §4.9's
// "last-error slot").
func (s *Session) LastError() liberr.Error { return s.lastErr }

func (s *Session) setLastErr(e liberr.Error) { s.lastErr = e }

// EnableCTCPAutoReply turns on the built-in CTCP handler that answers
// VERSION, PING, and TIME automatically (spec §6, SUPPLEMENTED FEATURES).
// It composes with any application-supplied CTCPRequest callback, which
// still fires for every CTCP request including the ones auto-answered here.
func (s *Session) EnableCTCPAutoReply() { s.ctcpAutoReply = true }

// Connect resolves cfg.Host, opens a nonblocking TCP socket, and initiates
// connect (spec §4.5). It returns immediately; completion is observed via
// ProcessDescriptors/Run once the socket becomes writable.
func (s *Session) Connect() liberr.Error {
	if s.State() != Init && s.State() != Disconnected {
		return ircerr.Error(ircerr.ErrState)
	}

	ip, err := rawsock.ParseIPv4(s.cfg.Host)
	if err != nil {
		return ircerr.Error(ircerr.ErrConnect, err)
	}

	sock, err := rawsock.NewStream()
	if err != nil {
		return ircerr.Error(ircerr.ErrSocket, err)
	}

	if err = rawsock.Connect(sock, ip, s.cfg.Port); err != nil {
		_ = sock.Close()
		return ircerr.Error(ircerr.ErrConnect, err)
	}

	s.mu.Lock()
	s.sock = sock
	s.outBuf = s.outBuf[:0]
	s.inBuf = s.inBuf[:0]
	s.motdSeen = false
	s.mu.Unlock()

	s.state.Store(Connecting)
	s.logDebug("connecting", s.cfg.Host)
	return nil
}

// Disconnect is idempotent: it closes the socket and transitions to
// DISCONNECTED, causing Run to return after its current iteration.
func (s *Session) Disconnect() {
	if s.State() == Disconnected {
		return
	}

	s.mu.Lock()
	if s.sock != nil {
		_ = s.sock.Close()
		s.sock = nil
	}
	s.mu.Unlock()

	s.state.Store(Disconnected)
	s.logDebug("disconnected", nil)
}

func (s *Session) fatal(code liberr.CodeError) {
	s.setLastErr(ircerr.Error(code))
	s.logWarn("session fatal error", code)
	s.Disconnect()
}

func (s *Session) completeConnect() {
	if err := rawsock.ConnectError(s.sock); err != nil {
		s.fatal(ircerr.ErrConnect)
		return
	}

	s.state.Store(Connected)
	s.logDebug("connected", nil)

	if s.cfg.Password != "" {
		_ = s.SendRaw("PASS %s", s.cfg.Password)
	}
	_ = s.SendRaw("NICK %s", s.cfg.Nick)

	user := s.cfg.User
	if user == "" {
		user = s.cfg.Nick
	}
	_ = s.SendRaw("USER %s unknown unknown :%s", user, s.cfg.RealName)
}

// SendRaw formats a command line and appends it to the outbound buffer
// under the session mutex (spec §4.4). It fails with ErrState if the
// session is not CONNECTED, or ErrNoMem if the line would not fit in the
// remaining outbound capacity.
func (s *Session) SendRaw(format string, args ...any) liberr.Error {
	if s.State() != Connected {
		return ircerr.Error(ircerr.ErrState)
	}

	line := message.Format(format, args...)

	s.mu.Lock()
	defer s.mu.Unlock()

	if uint64(len(s.outBuf)+len(line)) > s.cfg.OutgoingBufferSize.Uint64() {
		return ircerr.Error(ircerr.ErrNoMem)
	}

	s.outBuf = append(s.outBuf, line...)
	return nil
}

// CmdJoin issues JOIN.
func (s *Session) CmdJoin(channel, key string) liberr.Error {
	if key == "" {
		return s.SendRaw("JOIN %s", channel)
	}
	return s.SendRaw("JOIN %s %s", channel, key)
}

// CmdMsg issues PRIVMSG.
func (s *Session) CmdMsg(target, text string) liberr.Error {
	return s.SendRaw("PRIVMSG %s :%s", target, text)
}

// CmdMe issues a CTCP ACTION, unescaped per spec §4.4.
func (s *Session) CmdMe(target, text string) liberr.Error {
	return s.SendRaw("PRIVMSG %s :%s", target, ctcp.Encode("ACTION", text))
}

// CmdNotice issues NOTICE.
func (s *Session) CmdNotice(target, text string) liberr.Error {
	return s.SendRaw("NOTICE %s :%s", target, text)
}

// CmdKick issues KICK.
func (s *Session) CmdKick(channel, nick, reason string) liberr.Error {
	if reason == "" {
		return s.SendRaw("KICK %s %s", channel, nick)
	}
	return s.SendRaw("KICK %s %s :%s", channel, nick, reason)
}

// CmdQuit issues QUIT.
func (s *Session) CmdQuit(reason string) liberr.Error {
	if reason == "" {
		return s.SendRaw("QUIT")
	}
	return s.SendRaw("QUIT :%s", reason)
}

// CmdCTCPRequest sends a CTCP request.
func (s *Session) CmdCTCPRequest(target, verb string, args ...string) liberr.Error {
	return s.SendRaw("PRIVMSG %s :%s", target, ctcp.Encode(verb, args...))
}

// CmdCTCPReply sends a CTCP reply (NOTICE-framed per convention).
func (s *Session) CmdCTCPReply(target, verb string, args ...string) liberr.Error {
	return s.SendRaw("NOTICE %s :%s", target, ctcp.Encode(verb, args...))
}

// Run blocks, driving AddDescriptors/ProcessDescriptors in a loop until the
// session reaches DISCONNECTED (spec §4.6).
func (s *Session) Run() {
	ps := rawsock.NewPollSet()
	for s.State() != Disconnected {
		ps.Reset()
		s.AddDescriptors(ps)
		_ = ps.Wait(1000)
		s.ProcessDescriptors(ps)
		s.dcc.CheckTimeouts()
	}
}

// AddDescriptors registers the main socket and every live DCC session on
// ps per spec §4.6/§4.8.
func (s *Session) AddDescriptors(ps *rawsock.PollSet) {
	s.mu.Lock()
	sock := s.sock
	wantWrite := len(s.outBuf) > 0
	s.mu.Unlock()

	switch s.State() {
	case Connecting:
		if sock != nil {
			ps.Add(sock.FD(), false, true)
		}
	case Connected:
		if sock != nil {
			ps.Add(sock.FD(), true, wantWrite)
		}
	}

	s.dcc.RegisterPoll(ps)
}

// ProcessDescriptors performs exactly one readiness-driven I/O pass on the
// main socket and every live DCC session (spec §4.6).
func (s *Session) ProcessDescriptors(ps *rawsock.PollSet) {
	s.mu.Lock()
	sock := s.sock
	st := s.State()
	s.mu.Unlock()

	if sock != nil {
		fd := sock.FD()
		switch st {
		case Connecting:
			if ps.Writable(fd) {
				s.completeConnect()
			}
		case Connected:
			if ps.Readable(fd) {
				s.readLoop()
			}
			if ps.Writable(fd) {
				s.drainOut()
			}
		}
	}

	s.dcc.Process(ps)
}

func (s *Session) readLoop() {
	buf := make([]byte, 4096)
	n, ok, err := rawsock.Read(s.sock, buf)
	if err != nil {
		s.fatal(ircerr.ErrRead)
		return
	}
	if !ok {
		return
	}
	if n == 0 {
		s.fatal(ircerr.ErrClosed)
		return
	}

	s.feedInbound(buf[:n])
}

// feedInbound appends data to the inbound buffer and dispatches every
// complete line it now contains, leaving any trailing partial line
// buffered for the next call (spec §4.1's incremental framing).
func (s *Session) feedInbound(data []byte) {
	s.mu.Lock()
	s.inBuf = append(s.inBuf, data...)
	s.mu.Unlock()

	for {
		s.mu.Lock()
		l := message.FindCROrLF(s.inBuf)
		if l == 0 {
			s.mu.Unlock()
			return
		}
		line := string(s.inBuf[:l])
		line = trimTerminator(line)
		s.inBuf = s.inBuf[l:]
		s.mu.Unlock()

		s.dispatch(message.Parse(line))
	}
}

func trimTerminator(line string) string {
	for len(line) > 0 && (line[len(line)-1] == '\r' || line[len(line)-1] == '\n') {
		line = line[:len(line)-1]
	}
	return line
}

func (s *Session) drainOut() {
	s.mu.Lock()
	if len(s.outBuf) == 0 {
		s.mu.Unlock()
		return
	}
	buf := s.outBuf
	sock := s.sock
	s.mu.Unlock()

	n, ok, err := rawsock.Write(sock, buf)
	if err != nil {
		s.fatal(ircerr.ErrWrite)
		return
	}
	if !ok || n == 0 {
		return
	}

	s.mu.Lock()
	s.outBuf = s.outBuf[n:]
	s.mu.Unlock()
}
