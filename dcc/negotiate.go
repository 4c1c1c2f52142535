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
	"fmt"
	"strconv"
	"strings"
)

// EncodeIPv4HostOrder packs an IPv4 address into the decimal unsigned
// 32-bit integer the DCC grammar transmits on the wire (spec §9): the
// value (a<<24)|(b<<16)|(c<<8)|d regardless of the implementer's machine
// endianness. The name "host byte order" is historical.
func EncodeIPv4HostOrder(ip [4]byte) uint32 {
	return uint32(ip[0])<<24 | uint32(ip[1])<<16 | uint32(ip[2])<<8 | uint32(ip[3])
}

// DecodeIPv4HostOrder is the inverse of EncodeIPv4HostOrder.
func DecodeIPv4HostOrder(v uint32) [4]byte {
	return [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// FormatIPv4 renders ip as dotted-quad text.
func FormatIPv4(ip [4]byte) string {
	return fmt.Sprintf("%d.%d.%d.%d", ip[0], ip[1], ip[2], ip[3])
}

// Request is a decoded DCC negotiation line (spec §4.7, §6).
type Request struct {
	Mode     Mode
	Filename string // SEND only
	IP       [4]byte
	Port     int
	Size     uint64 // SEND only: expected file size
}

// ParseRequest decodes the argument string of a CTCP "DCC ..." payload
// (the verb "DCC" itself already stripped by the caller) into a Request.
// Accepted forms, per spec §6:
//
//	CHAT chat <ip> <port>
//	SEND <filename> <ip> <port> <size>
func ParseRequest(rest string) (Request, bool) {
	fields := strings.Fields(rest)
	if len(fields) < 1 {
		return Request{}, false
	}

	switch strings.ToUpper(fields[0]) {
	case "CHAT":
		if len(fields) != 4 {
			return Request{}, false
		}
		ipv, err := strconv.ParseUint(fields[2], 10, 32)
		if err != nil {
			return Request{}, false
		}
		port, err := strconv.Atoi(fields[3])
		if err != nil {
			return Request{}, false
		}
		return Request{Mode: Chat, IP: DecodeIPv4HostOrder(uint32(ipv)), Port: port}, true

	case "SEND":
		if len(fields) != 5 {
			return Request{}, false
		}
		ipv, err := strconv.ParseUint(fields[2], 10, 32)
		if err != nil {
			return Request{}, false
		}
		port, err := strconv.Atoi(fields[3])
		if err != nil {
			return Request{}, false
		}
		size, err := strconv.ParseUint(fields[4], 10, 64)
		if err != nil {
			return Request{}, false
		}
		return Request{
			Mode:     RecvFile,
			Filename: fields[1],
			IP:       DecodeIPv4HostOrder(uint32(ipv)),
			Port:     port,
			Size:     size,
		}, true
	}

	return Request{}, false
}

// FormatChatOffer formats the CTCP argument string for an outbound DCC
// CHAT offer: "CHAT chat <ip> <port>".
func FormatChatOffer(ip [4]byte, port int) string {
	return fmt.Sprintf("CHAT chat %d %d", EncodeIPv4HostOrder(ip), port)
}

// FormatSendOffer formats the CTCP argument string for an outbound DCC
// SEND offer: "SEND <filename> <ip> <port> <size>".
func FormatSendOffer(filename string, ip [4]byte, port int, size uint64) string {
	return fmt.Sprintf("SEND %s %d %d %d", filename, EncodeIPv4HostOrder(ip), port, size)
}
