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

// Package rawsock wraps non-blocking IPv4 TCP sockets and a unix.Poll-based
// readiness primitive, the Go-idiomatic analogue of the original engine's
// select()-driven add_descriptors/process_descriptors pair (spec §4.6,
// §4.8). Grounded on the raw socket()/connect()/recv()/send() usage of
// original_source/libircclient/src/dcc.c.
package rawsock

import (
	"net"
	"sync"

	"golang.org/x/sys/unix"
)

// Socket is a non-blocking IPv4 TCP socket identified by its raw fd.
type Socket struct {
	mu sync.Mutex
	fd int
}

// NewStream creates a non-blocking IPv4 TCP socket.
func NewStream() (*Socket, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, unix.IPPROTO_TCP)
	if err != nil {
		return nil, err
	}
	if err = unix.SetNonblock(fd, true); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}
	return &Socket{fd: fd}, nil
}

// FromFD wraps an already-open, already-non-blocking fd (e.g. from Accept).
func FromFD(fd int) *Socket {
	return &Socket{fd: fd}
}

// FD returns the underlying file descriptor.
func (s *Socket) FD() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fd
}

// Connect initiates a non-blocking connect. EINPROGRESS is not an error:
// the caller waits for write-readiness to observe completion, then calls
// ConnectError to check for a deferred failure.
func Connect(s *Socket, ip [4]byte, port int) error {
	addr := &unix.SockaddrInet4{Port: port, Addr: ip}
	err := unix.Connect(s.FD(), addr)
	if err == unix.EINPROGRESS || err == unix.EALREADY {
		return nil
	}
	return err
}

// ConnectError returns the deferred error (if any) of a non-blocking
// connect, once write-readiness has fired. A nil return means the connect
// succeeded.
func ConnectError(s *Socket) error {
	v, err := unix.GetsockoptInt(s.FD(), unix.SOL_SOCKET, unix.SO_ERROR)
	if err != nil {
		return err
	}
	if v != 0 {
		return unix.Errno(v)
	}
	return nil
}

// Bind binds the socket to ip:port. Passing port 0 lets the kernel assign
// an ephemeral port (DCC listener setup, spec §4.7).
func Bind(s *Socket, ip [4]byte, port int) error {
	return unix.Bind(s.FD(), &unix.SockaddrInet4{Port: port, Addr: ip})
}

// Listen marks the socket as a passive listener.
func Listen(s *Socket, backlog int) error {
	return unix.Listen(s.FD(), backlog)
}

// LocalAddr returns the ip:port the socket is bound to.
func LocalAddr(s *Socket) (ip [4]byte, port int, err error) {
	sa, err := unix.Getsockname(s.FD())
	if err != nil {
		return ip, 0, err
	}
	if v4, ok := sa.(*unix.SockaddrInet4); ok {
		return v4.Addr, v4.Port, nil
	}
	return ip, 0, unix.EAFNOSUPPORT
}

// Accept accepts one pending connection on a listening socket, returning
// a non-blocking Socket wrapping the accepted fd plus the peer address.
func Accept(s *Socket) (conn *Socket, ip [4]byte, port int, err error) {
	fd, sa, err := unix.Accept(s.FD())
	if err != nil {
		return nil, ip, 0, err
	}
	if err = unix.SetNonblock(fd, true); err != nil {
		_ = unix.Close(fd)
		return nil, ip, 0, err
	}
	if v4, ok := sa.(*unix.SockaddrInet4); ok {
		ip, port = v4.Addr, v4.Port
	}
	return FromFD(fd), ip, port, nil
}

// Read performs one non-blocking read. EAGAIN is reported via ok=false,
// n=0, err=nil so callers can distinguish "nothing ready" from a fatal
// error (spec §4.6: "a read or write returning an error other than
// EINTR/EAGAIN is fatal").
func Read(s *Socket, buf []byte) (n int, ok bool, err error) {
	for {
		n, err = unix.Read(s.FD(), buf)
		if err == unix.EINTR {
			continue
		}
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return 0, false, nil
		}
		return n, err == nil, err
	}
}

// Write performs one non-blocking write of as much of buf as the kernel
// will accept. Like Read, EAGAIN yields ok=false rather than an error.
func Write(s *Socket, buf []byte) (n int, ok bool, err error) {
	for {
		n, err = unix.Write(s.FD(), buf)
		if err == unix.EINTR {
			continue
		}
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return 0, false, nil
		}
		return n, err == nil, err
	}
}

// Close closes the socket. Idempotent.
func (s *Socket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fd < 0 {
		return nil
	}
	err := unix.Close(s.fd)
	s.fd = -1
	return err
}

// ParseIPv4 converts a dotted-quad or resolvable host string to its 4-byte
// representation, for use with Connect/Bind.
func ParseIPv4(host string) ([4]byte, error) {
	var out [4]byte

	ips, err := net.LookupIP(host)
	if err != nil {
		return out, err
	}
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			copy(out[:], v4)
			return out, nil
		}
	}
	return out, unix.EAFNOSUPPORT
}

// PollSet is a minimal readiness batch built on unix.Poll: the Go-idiomatic
// analogue of populating fd_set via add_descriptors and scanning it via
// process_descriptors (spec §4.6).
type PollSet struct {
	entries []unix.PollFd
	index   map[int]int
}

// NewPollSet returns an empty PollSet.
func NewPollSet() *PollSet {
	return &PollSet{index: make(map[int]int)}
}

// Add registers fd for readability and/or writability.
func (p *PollSet) Add(fd int, read, write bool) {
	var events int16
	if read {
		events |= unix.POLLIN
	}
	if write {
		events |= unix.POLLOUT
	}

	if i, ok := p.index[fd]; ok {
		p.entries[i].Events = events
		return
	}

	p.index[fd] = len(p.entries)
	p.entries = append(p.entries, unix.PollFd{Fd: int32(fd), Events: events})
}

// Wait blocks (up to timeoutMs milliseconds, -1 for forever) until at
// least one registered fd is ready, or the timeout elapses.
func (p *PollSet) Wait(timeoutMs int) error {
	if len(p.entries) == 0 {
		return nil
	}
	_, err := unix.Poll(p.entries, timeoutMs)
	if err == unix.EINTR {
		return nil
	}
	return err
}

// Readable reports whether fd was flagged ready for reading after Wait.
func (p *PollSet) Readable(fd int) bool {
	i, ok := p.index[fd]
	if !ok {
		return false
	}
	return p.entries[i].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0
}

// Writable reports whether fd was flagged ready for writing after Wait.
func (p *PollSet) Writable(fd int) bool {
	i, ok := p.index[fd]
	if !ok {
		return false
	}
	return p.entries[i].Revents&(unix.POLLOUT|unix.POLLERR) != 0
}

// Reset clears all registered fds, reusing the underlying storage.
func (p *PollSet) Reset() {
	p.entries = p.entries[:0]
	for k := range p.index {
		delete(p.index, k)
	}
}
