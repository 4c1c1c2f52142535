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
	liberr "github.com/mir-ror/libircclient/errors"
	libfpg "github.com/mir-ror/libircclient/file/progress"
	"github.com/mir-ror/libircclient/file/bandwidth"
	"github.com/mir-ror/libircclient/internal/rawsock"
	"github.com/mir-ror/libircclient/ircerr"
	"github.com/mir-ror/libircclient/size"
)

// Offer is the result of initiating an outbound DCC session: the caller
// transmits Line (the CTCP "DCC ..." argument string) to the named peer.
type Offer struct {
	Session *Session
	Line    string
}

// ChatOffer creates a listening socket bound to localIP on an ephemeral
// port, sets state Listening, and formulates the DCC CHAT offer line
// (spec §4.7).
func (t *Table) ChatOffer(localIP [4]byte, cb Callback) (Offer, liberr.Error) {
	sock, ip, port, err := listenEphemeral(localIP)
	if err != nil {
		return Offer{}, ircerr.Error(ircerr.ErrSocket, err)
	}

	s := &Session{Mode: Chat, state: Listening, sock: sock, callback: cb}
	t.insert(s)

	return Offer{Session: s, Line: FormatChatOffer(ip, port)}, nil
}

// SendOffer opens localPath for reading, creates a listening socket bound
// to localIP on an ephemeral port, sets state Listening, and formulates
// the DCC SEND offer line (spec §4.7). rateLimit, if nonzero, throttles
// the transfer via file/bandwidth.
func (t *Table) SendOffer(localIP [4]byte, localPath, remoteName string, rateLimit size.Size, cb Callback) (Offer, liberr.Error) {
	fpg, err := libfpg.Open(localPath)
	if err != nil {
		return Offer{}, ircerr.Error(ircerr.ErrOpenFile, err)
	}

	stat, err := fpg.Stat()
	if err != nil || stat.Size() == 0 || !stat.Mode().IsRegular() {
		_ = fpg.Close()
		return Offer{}, ircerr.Error(ircerr.ErrNoDCCSend)
	}

	if rateLimit > 0 {
		bandwidth.New(rateLimit).RegisterIncrement(fpg, nil)
	}

	sock, ip, port, serr := listenEphemeral(localIP)
	if serr != nil {
		_ = fpg.Close()
		return Offer{}, ircerr.Error(ircerr.ErrSocket, serr)
	}

	s := &Session{
		Mode: SendFile, state: Listening, sock: sock, file: fpg,
		expectedSize: uint64(stat.Size()), callback: cb,
	}
	t.insert(s)

	return Offer{Session: s, Line: FormatSendOffer(remoteName, ip, port, uint64(stat.Size()))}, nil
}

func listenEphemeral(localIP [4]byte) (*rawsock.Socket, [4]byte, int, error) {
	sock, err := rawsock.NewStream()
	if err != nil {
		return nil, [4]byte{}, 0, err
	}
	if err = rawsock.Bind(sock, localIP, 0); err != nil {
		_ = sock.Close()
		return nil, [4]byte{}, 0, err
	}
	if err = rawsock.Listen(sock, 1); err != nil {
		_ = sock.Close()
		return nil, [4]byte{}, 0, err
	}
	ip, port, err := rawsock.LocalAddr(sock)
	if err != nil {
		_ = sock.Close()
		return nil, [4]byte{}, 0, err
	}
	return sock, ip, port, nil
}
