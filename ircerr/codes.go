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

// Package ircerr adapts the session/DCC error surface of spec §4.9 onto the
// liberr.CodeError idiom: one registered code block per owning package.
package ircerr

import (
	"fmt"

	liberr "github.com/mir-ror/libircclient/errors"
)

// Package offsets, following errors/modules.go's MinPkgXxx convention.
const (
	MinPkgSession liberr.CodeError = 5000 + iota*100
	MinPkgDCC
	MinPkgMessage
)

const (
	// ErrNoMem : outbound buffer has no room for the formatted line.
	ErrNoMem liberr.CodeError = iota + MinPkgSession
	// ErrSocket : socket creation/configuration failure.
	ErrSocket
	// ErrConnect : TCP connect failed or was refused.
	ErrConnect
	// ErrClosed : remote end closed the connection.
	ErrClosed
	// ErrRead : a read syscall returned a fatal error.
	ErrRead
	// ErrWrite : a write syscall returned a fatal error, or an ACK mismatch on SENDFILE.
	ErrWrite
	// ErrAccept : accept() on a DCC listener failed.
	ErrAccept
	// ErrState : the call is invalid for the session's current state.
	ErrState
	// ErrTimeout : a DCC session exceeded the idle timeout.
	ErrTimeout
	// ErrNoDCCSend : the file offered for DCC SEND is missing, empty, or not regular.
	ErrNoDCCSend
	// ErrOpenFile : the local file could not be opened for a transfer.
	ErrOpenFile
	// ErrInval : invalid argument to a public API call.
	ErrInval
	// ErrTerminated : the operation was attempted after Destroy.
	ErrTerminated
)

func init() {
	if liberr.ExistInMapMessage(ErrNoMem) {
		panic(fmt.Errorf("error code collision with package libircclient/ircerr"))
	}
	liberr.RegisterIdFctMessage(ErrNoMem, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrNoMem:
		return "outbound buffer is full"
	case ErrSocket:
		return "socket error"
	case ErrConnect:
		return "connect failed"
	case ErrClosed:
		return "connection closed by peer"
	case ErrRead:
		return "read error"
	case ErrWrite:
		return "write error"
	case ErrAccept:
		return "accept error"
	case ErrState:
		return "invalid state for this operation"
	case ErrTimeout:
		return "operation timed out"
	case ErrNoDCCSend:
		return "file is missing, empty or not a regular file"
	case ErrOpenFile:
		return "cannot open file"
	case ErrInval:
		return "invalid argument"
	case ErrTerminated:
		return "session is terminated"
	}

	return liberr.NullMessage
}

// Error builds a liberr.Error for code, chaining optional parent errors.
func Error(code liberr.CodeError, parent ...error) liberr.Error {
	return code.Error(parent...)
}
