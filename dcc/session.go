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

import (
	"encoding/binary"
	"sync"
	"time"

	libfpg "github.com/mir-ror/libircclient/file/progress"
	"github.com/mir-ror/libircclient/internal/rawsock"
	liberr "github.com/mir-ror/libircclient/errors"
	"github.com/mir-ror/libircclient/ircerr"
	"github.com/mir-ror/libircclient/message"
)

// DefaultBufSize is the default per-session inbound/outbound buffer size.
const DefaultBufSize = 8192

// Callback delivers a DCC data-phase event. status is liberr.UnknownError
// (0) on success; any other CodeError is a fatal per-DCC error (spec §4.9,
// class 3) and is followed by implicit destruction of the session. data
// carries a CHAT line, a RECVFILE chunk, or nil for control events.
type Callback func(s *Session, status liberr.CodeError, data []byte)

// Session is one DCC descriptor, owned exclusively by its parent Table
// (spec §3 "DCC session"). User context pointers are opaque and never
// freed by the library.
type Session struct {
	ID       uint64
	Mode     Mode
	PeerIP   [4]byte
	PeerPort int

	sock *rawsock.Socket
	file libfpg.Progress

	state State
	mu    sync.Mutex // guards state + inbound buffer (mirrors the DCC-list lock's per-field role)

	outMu  sync.Mutex // per-DCC outbound-buffer lock (spec §5)
	outBuf []byte

	inBuf []byte

	confirmOffset uint64
	expectedSize  uint64
	chunkLen      int
	ackBuf        [4]byte
	ackOff        int

	ctx      any
	callback Callback

	lastActivity time.Time

	tbl *Table
}

// State returns the session's current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Context returns the opaque user context pointer.
func (s *Session) Context() any {
	return s.ctx
}

// SetContext sets the opaque user context pointer.
func (s *Session) SetContext(ctx any) {
	s.ctx = ctx
}

// FD returns the underlying socket file descriptor, or -1 if none.
func (s *Session) FD() int {
	if s.sock == nil {
		return -1
	}
	return s.sock.FD()
}

func (s *Session) touch() {
	s.lastActivity = time.Now()
}

// WantRead reports whether the session should be registered for
// readability, per the table in spec §4.8.
func (s *Session) WantRead() bool {
	switch s.State() {
	case Listening:
		return true
	case Connected:
		if s.Mode == SendFile {
			return false
		}
		return len(s.inBuf) < DefaultBufSize
	case ConfirmSize:
		return s.Mode == SendFile
	default:
		return false
	}
}

// WantWrite reports whether the session should be registered for
// writability, per the table in spec §4.8.
func (s *Session) WantWrite() bool {
	switch s.State() {
	case Connecting:
		return true
	case Connected:
		s.outMu.Lock()
		defer s.outMu.Unlock()
		return len(s.outBuf) > 0
	case ConfirmSize:
		return s.Mode == RecvFile
	default:
		return false
	}
}

// SendChat appends line plus CR-LF to the outbound buffer under the
// per-DCC output lock (spec §4.8's "outbound dcc_msg").
func (s *Session) SendChat(line string) liberr.Error {
	if s.State() == Removed {
		return ircerr.Error(ircerr.ErrTerminated)
	}
	if s.Mode != Chat || s.State() != Connected {
		return ircerr.Error(ircerr.ErrState)
	}

	s.outMu.Lock()
	s.outBuf = append(s.outBuf, line...)
	s.outBuf = append(s.outBuf, '\r', '\n')
	s.outMu.Unlock()
	return nil
}

// process performs exactly one readiness-driven I/O step, per spec §4.8.
// readable/writable reflect the outcome of the caller's readiness check.
func (s *Session) process(readable, writable bool) {
	switch s.State() {
	case Listening:
		if readable {
			s.acceptOne()
		}
	case Connecting:
		if writable {
			s.completeConnect()
		}
	case Connected:
		switch s.Mode {
		case Chat:
			if readable {
				s.readChat()
			}
			if writable {
				s.drainOut()
			}
		case RecvFile:
			if readable {
				s.readFileChunk()
			}
			if writable {
				s.drainOut()
			}
		case SendFile:
			s.pumpFile()
			if writable {
				s.drainOut()
			}
		}
	case ConfirmSize:
		if s.Mode == SendFile && readable {
			s.readAck()
		}
		if s.Mode == RecvFile && writable {
			s.writeAck()
		}
	}
}

func (s *Session) acceptOne() {
	conn, ip, port, err := rawsock.Accept(s.sock)
	if err != nil {
		s.fail(ircerr.ErrAccept)
		return
	}
	_ = s.sock.Close()
	s.sock = conn
	s.PeerIP, s.PeerPort = ip, port
	s.setState(Connected)
	s.touch()
}

func (s *Session) completeConnect() {
	if err := rawsock.ConnectError(s.sock); err != nil {
		s.fail(ircerr.ErrConnect)
		return
	}
	s.setState(Connected)
	s.touch()
}

func (s *Session) readChat() {
	buf := make([]byte, DefaultBufSize)
	n, ok, err := rawsock.Read(s.sock, buf)
	if err != nil {
		s.fail(ircerr.ErrRead)
		return
	}
	if !ok {
		return
	}
	if n == 0 {
		s.fail(ircerr.ErrClosed)
		return
	}

	s.mu.Lock()
	s.inBuf = append(s.inBuf, buf[:n]...)
	s.mu.Unlock()
	s.touch()

	for {
		s.mu.Lock()
		l := message.FindCRLF(s.inBuf)
		if l == 0 {
			s.mu.Unlock()
			break
		}
		line := append([]byte(nil), s.inBuf[:l-2]...)
		s.inBuf = s.inBuf[l:]
		s.mu.Unlock()

		if s.callback != nil {
			s.callback(s, liberr.UnknownError, line)
		}
	}
}

func (s *Session) drainOut() {
	s.outMu.Lock()
	if len(s.outBuf) == 0 {
		s.outMu.Unlock()
		return
	}
	buf := s.outBuf
	s.outMu.Unlock()

	n, ok, err := rawsock.Write(s.sock, buf)
	if err != nil {
		s.fail(ircerr.ErrWrite)
		return
	}
	if !ok || n == 0 {
		return
	}

	s.outMu.Lock()
	s.outBuf = s.outBuf[n:]
	flushed := len(s.outBuf) == 0
	s.outMu.Unlock()
	s.touch()

	// A fully flushed SENDFILE chunk hands off to readAck: the peer owes
	// exactly 4 bytes of cumulative ACK before the next chunk may go out.
	if flushed && s.Mode == SendFile && s.chunkLen > 0 {
		s.ackOff = 0
		s.setState(ConfirmSize)
	}
}

// readFileChunk handles the RECVFILE data phase: spec §4.8.
func (s *Session) readFileChunk() {
	buf := make([]byte, DefaultBufSize)
	n, ok, err := rawsock.Read(s.sock, buf)
	if err != nil {
		s.fail(ircerr.ErrRead)
		return
	}
	if !ok {
		return
	}
	if n == 0 {
		s.fail(ircerr.ErrClosed)
		return
	}

	if s.file != nil {
		if _, werr := s.file.Write(buf[:n]); werr != nil {
			s.fail(ircerr.ErrWrite)
			return
		}
	}

	s.confirmOffset += uint64(n)
	s.touch()

	if s.callback != nil {
		s.callback(s, liberr.UnknownError, buf[:n])
	}

	binary.BigEndian.PutUint32(s.ackBuf[:], uint32(s.confirmOffset))
	s.ackOff = 0
	s.setState(ConfirmSize)
}

func (s *Session) writeAck() {
	n, ok, err := rawsock.Write(s.sock, s.ackBuf[s.ackOff:])
	if err != nil {
		s.fail(ircerr.ErrWrite)
		return
	}
	if !ok {
		return
	}
	s.ackOff += n
	if s.ackOff < 4 {
		return
	}

	if s.confirmOffset >= s.expectedSize {
		s.complete()
		return
	}
	s.setState(Connected)
}

// pumpFile handles the SENDFILE data pump: spec §4.8.
func (s *Session) pumpFile() {
	s.outMu.Lock()
	empty := len(s.outBuf) == 0
	s.outMu.Unlock()
	if !empty || s.file == nil {
		return
	}

	buf := make([]byte, DefaultBufSize)
	n, rerr := s.file.Read(buf)
	if n == 0 {
		// EOF (or a transient empty read) with nothing queued: completion
		// is driven by the peer's final cumulative ACK in readAck, not by
		// local file exhaustion, so there is nothing to do here.
		_ = rerr
		return
	}

	s.outMu.Lock()
	s.outBuf = append(s.outBuf, buf[:n]...)
	s.outMu.Unlock()
	s.chunkLen = n
}

func (s *Session) readAck() {
	buf := make([]byte, 4-s.ackOff)
	n, ok, err := rawsock.Read(s.sock, buf)
	if err != nil {
		s.fail(ircerr.ErrRead)
		return
	}
	if !ok {
		return
	}
	if n == 0 {
		s.fail(ircerr.ErrClosed)
		return
	}
	copy(s.ackBuf[s.ackOff:], buf[:n])
	s.ackOff += n
	if s.ackOff < 4 {
		return
	}

	got := binary.BigEndian.Uint32(s.ackBuf[:])
	want := uint32(s.confirmOffset) + uint32(s.chunkLen)
	if got != want {
		s.fail(ircerr.ErrWrite)
		return
	}

	s.confirmOffset += uint64(s.chunkLen)
	s.chunkLen = 0
	s.ackOff = 0

	if s.confirmOffset >= s.expectedSize {
		s.complete()
		return
	}
	s.setState(Connected)
}

func (s *Session) complete() {
	if s.callback != nil {
		s.callback(s, liberr.UnknownError, nil)
	}
	s.Destroy()
}

func (s *Session) fail(code liberr.CodeError) {
	if s.callback != nil {
		s.callback(s, code, nil)
	}
	s.Destroy()
}

// Destroy closes the socket (and file, if any) and marks the session
// REMOVED. Destruction is two-phase (spec §5, §9): only the readiness
// loop reaps REMOVED entries, so a callback may safely destroy its own or
// another session mid-iteration.
func (s *Session) Destroy() {
	if s.State() == Removed {
		return
	}
	if s.sock != nil {
		_ = s.sock.Close()
	}
	if s.file != nil {
		_ = s.file.Close()
	}
	s.setState(Removed)
}
