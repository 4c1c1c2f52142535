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
	"os"
	"sync"
	"time"

	liberr "github.com/mir-ror/libircclient/errors"
	"github.com/mir-ror/libircclient/duration"
	libfpg "github.com/mir-ror/libircclient/file/progress"
	"github.com/mir-ror/libircclient/file/perm"
	"github.com/mir-ror/libircclient/internal/rawsock"
	"github.com/mir-ror/libircclient/ircerr"
)

// Table is the per-session linked collection of DCC descriptors (spec §2,
// §3): allocation, lookup by id, removal, and destroy-on-idle.
type Table struct {
	mu      sync.Mutex // DCC-list lock (spec §5); locked before any per-DCC output lock
	head    *node
	nextID  uint64
	Timeout duration.Duration
}

type node struct {
	sess *Session
	next *node
}

// NewTable returns an empty Table with the given idle timeout (spec §4.8).
func NewTable(timeout duration.Duration) *Table {
	return &Table{Timeout: timeout}
}

func (t *Table) insert(s *Session) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	s.ID = t.nextID
	s.tbl = t
	s.lastActivity = time.Now()
	t.head = &node{sess: s, next: t.head}
}

// NewChatRequest records an inbound DCC CHAT offer (spec §4.7): a fresh
// session in mode Chat, state Init, awaiting Accept/Decline.
func (t *Table) NewChatRequest(req Request, cb Callback) *Session {
	s := &Session{Mode: Chat, state: Init, PeerIP: req.IP, PeerPort: req.Port, callback: cb}
	t.insert(s)
	return s
}

// NewSendRequest records an inbound DCC SEND offer (spec §4.7): a fresh
// RecvFile session in state Init with ExpectedSize set, awaiting
// Accept/Decline.
func (t *Table) NewSendRequest(req Request, cb Callback) *Session {
	s := &Session{
		Mode: RecvFile, state: Init, PeerIP: req.IP, PeerPort: req.Port,
		expectedSize: req.Size, callback: cb,
	}
	s.file = nil // set by Accept, which opens the destination file
	s.ctx = req.Filename
	t.insert(s)
	return s
}

// Accept transitions an Init session INIT->CONNECTING and issues a
// non-blocking connect to the advertised peer (spec §4.7). For a RecvFile
// session, dest is the local path to create; it is ignored for Chat.
func (t *Table) Accept(id uint64, dest string, fperm perm.Perm) (*Session, liberr.Error) {
	s, ok := t.Lookup(id)
	if !ok || s.State() != Init {
		return nil, ircerr.Error(ircerr.ErrState)
	}

	if s.Mode == RecvFile {
		f, err := libfpg.New(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(fperm))
		if err != nil {
			return nil, ircerr.Error(ircerr.ErrOpenFile, err)
		}
		s.file = f
	}

	sock, err := rawsock.NewStream()
	if err != nil {
		return nil, ircerr.Error(ircerr.ErrSocket, err)
	}
	if err = rawsock.Connect(sock, s.PeerIP, s.PeerPort); err != nil {
		_ = sock.Close()
		return nil, ircerr.Error(ircerr.ErrConnect, err)
	}

	s.sock = sock
	s.setState(Connecting)
	return s, nil
}

// Decline destroys a pending Init session without connecting (spec §4.7).
func (t *Table) Decline(id uint64) liberr.Error {
	s, ok := t.Lookup(id)
	if !ok {
		return ircerr.Error(ircerr.ErrInval)
	}
	s.Destroy()
	return nil
}

// Lookup finds a session by id. Removed (tombstoned) sessions are not
// returned.
func (t *Table) Lookup(id uint64) (*Session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for n := t.head; n != nil; n = n.next {
		if n.sess.ID == id && n.sess.State() != Removed {
			return n.sess, true
		}
	}
	return nil, false
}

// Range calls fn for every live (non-Removed) session. fn may call Destroy
// on the session it is given, or on any other session, without
// invalidating this iteration (spec §5, §9).
func (t *Table) Range(fn func(*Session)) {
	t.mu.Lock()
	cur := t.head
	t.mu.Unlock()

	for n := cur; n != nil; n = n.next {
		if n.sess.State() == Removed {
			continue
		}
		fn(n.sess)
	}
}

// Reap unlinks tombstoned (Removed) sessions from the table.
func (t *Table) Reap() {
	t.mu.Lock()
	defer t.mu.Unlock()

	var prev *node
	for n := t.head; n != nil; {
		next := n.next
		if n.sess.State() == Removed {
			if prev == nil {
				t.head = next
			} else {
				prev.next = next
			}
		} else {
			prev = n
		}
		n = next
	}
}

// CheckTimeouts destroys any Listening/Init/Connected session idle longer
// than Timeout, firing ErrTimeout first (Init sessions do not fire: their
// callback has not been installed by the application yet, per spec §4.8).
func (t *Table) CheckTimeouts() {
	if t.Timeout <= 0 {
		return
	}

	t.Range(func(s *Session) {
		st := s.State()
		if st != Listening && st != Init && st != Connected {
			return
		}
		if time.Since(s.lastActivity) < t.Timeout.Time() {
			return
		}
		if st != Init && s.callback != nil {
			s.callback(s, ircerr.ErrTimeout, nil)
		}
		s.Destroy()
	})
}

// Touch refreshes a session's idle timer; called whenever data is sent or
// received on it. Exposed for engines driving Session.process externally.
func (s *Session) Touch() {
	s.touch()
}
