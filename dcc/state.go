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

// Package dcc implements the Direct Client-to-Client multiplexer: session
// table, negotiation grammar, and the per-session data-phase state machine
// of spec §3, §4.7, §4.8.
package dcc

// Mode identifies the kind of DCC session.
type Mode int

const (
	Chat Mode = iota
	SendFile
	RecvFile
)

func (m Mode) String() string {
	switch m {
	case Chat:
		return "CHAT"
	case SendFile:
		return "SENDFILE"
	case RecvFile:
		return "RECVFILE"
	default:
		return "UNKNOWN"
	}
}

// State is the DCC session state machine of spec §3.
type State int

const (
	// Init : passive, awaiting user Accept/Decline.
	Init State = iota
	// Listening : socket bound and listening, awaiting remote connect.
	Listening
	// Connecting : active connect initiated, awaiting completion.
	Connecting
	// Connected : data phase.
	Connected
	// ConfirmSize : file-transfer flow-control substate (awaiting/sending the 4-byte ACK).
	ConfirmSize
	// Removed : tombstone, awaiting reaping by the readiness loop.
	Removed
)

func (s State) String() string {
	switch s {
	case Init:
		return "INIT"
	case Listening:
		return "LISTENING"
	case Connecting:
		return "CONNECTING"
	case Connected:
		return "CONNECTED"
	case ConfirmSize:
		return "CONFIRM_SIZE"
	case Removed:
		return "REMOVED"
	default:
		return "UNKNOWN"
	}
}
