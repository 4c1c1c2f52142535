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
	"context"
	"fmt"

	libval "github.com/go-playground/validator/v10"
	libtls "github.com/mir-ror/libircclient/certificates"
	"github.com/mir-ror/libircclient/duration"
	liberr "github.com/mir-ror/libircclient/errors"
	"github.com/mir-ror/libircclient/ircerr"
	"github.com/mir-ror/libircclient/size"
)

// Config describes one IRC session (spec §3 "essential attributes"),
// modeled directly on ftpclient.Config: struct tags for mapstructure/json/
// yaml/toml loading, a validator-backed Validate, and optional context/TLS
// registration hooks.
type Config struct {
	// Host is the IRC server hostname or address.
	Host string `mapstructure:"host" json:"host" yaml:"host" toml:"host" validate:"required,hostname_rfc1123"`

	// Port is the IRC server TCP port.
	Port int `mapstructure:"port" json:"port" yaml:"port" toml:"port" validate:"required,min=1,max=65535"`

	// Password is the optional server password (PASS command).
	Password string `mapstructure:"password" json:"password" yaml:"password" toml:"password"`

	// Nick is the desired nickname.
	Nick string `mapstructure:"nick" json:"nick" yaml:"nick" toml:"nick" validate:"required"`

	// User is the username field of the USER command.
	User string `mapstructure:"user" json:"user" yaml:"user" toml:"user"`

	// RealName is the real-name field of the USER command.
	RealName string `mapstructure:"real_name" json:"real_name" yaml:"real_name" toml:"real_name"`

	// DCCTimeout bounds how long an idle DCC session (LISTENING, INIT, or
	// CONNECTED) may sit before being destroyed (spec §4.8).
	DCCTimeout duration.Duration `mapstructure:"dcc_timeout" json:"dcc_timeout" yaml:"dcc_timeout" toml:"dcc_timeout"`

	// DCCBufferSize is the configured per-DCC-session inbound buffer
	// capacity. DCC sessions do not read it: they always use
	// dcc.DefaultBufSize.
	DCCBufferSize size.Size `mapstructure:"dcc_buffer_size" json:"dcc_buffer_size" yaml:"dcc_buffer_size" toml:"dcc_buffer_size"`

	// IncomingBufferSize is the configured inbound buffer capacity of the
	// main session. The session does not enforce it: the inbound buffer
	// grows to hold any pending partial line.
	IncomingBufferSize size.Size `mapstructure:"incoming_buffer_size" json:"incoming_buffer_size" yaml:"incoming_buffer_size" toml:"incoming_buffer_size"`

	// OutgoingBufferSize is the main session's outbound buffer capacity
	// (spec §3's "outgoing_offset <= capacity" invariant).
	OutgoingBufferSize size.Size `mapstructure:"outgoing_buffer_size" json:"outgoing_buffer_size" yaml:"outgoing_buffer_size" toml:"outgoing_buffer_size"`

	// StripNicks sets the STRIPNICKS option at session creation.
	StripNicks bool `mapstructure:"strip_nicks" json:"strip_nicks" yaml:"strip_nicks" toml:"strip_nicks"`

	// Debug sets the DEBUG option at session creation.
	Debug bool `mapstructure:"debug" json:"debug" yaml:"debug" toml:"debug"`

	// TLS holds TLS settings for the main session link. Connect performs no
	// TLS handshake, so the main socket is always plaintext.
	TLS libtls.Config `mapstructure:"tls" json:"tls" yaml:"tls" toml:"tls"`

	// ForceTLS records whether TLS is mandatory for the main link. Connect
	// does not read it.
	ForceTLS bool `mapstructure:"force_tls" json:"force_tls" yaml:"force_tls" toml:"force_tls"`

	fctx func() context.Context
	ftls func() libtls.TLSConfig
}

// Validate checks the config' struct against the awaiting model.
func (c *Config) Validate() liberr.Error {
	e := ircerr.Error(ircerr.ErrInval)

	if err := libval.New().Struct(c); err != nil {
		if er, ok := err.(*libval.InvalidValidationError); ok {
			e.Add(er)
		}
		for _, er := range err.(libval.ValidationErrors) {
			e.Add(fmt.Errorf("config field '%s' is not validated by constraint '%s'", er.Namespace(), er.ActualTag()))
		}
	}

	if !e.HasParent() {
		return nil
	}
	return e
}

// RegisterContext registers a function supplying the config's
// context.Context. Connect does not consult it: host resolution and the
// TCP connect are not bounded by this context.
func (c *Config) RegisterContext(fct func() context.Context) {
	c.fctx = fct
}

// RegisterDefaultTLS registers a fallback TLSConfig inherited by c.TLS when
// InheritDefault is set, mirroring ftpclient.Config's optional-TLS hook.
func (c *Config) RegisterDefaultTLS(fct func() libtls.TLSConfig) {
	c.ftls = fct
}

func (c *Config) context() context.Context {
	if c.fctx != nil {
		return c.fctx()
	}
	return context.Background()
}

func (c *Config) tlsConfig() libtls.TLSConfig {
	if c.ftls != nil {
		return c.TLS.NewFrom(c.ftls())
	}
	return c.TLS.New()
}

func defaultConfig() Config {
	return Config{
		DCCTimeout:         duration.Seconds(300),
		DCCBufferSize:      size.SizeKilo * 8,
		IncomingBufferSize: size.SizeKilo * 8,
		OutgoingBufferSize: size.SizeKilo * 8,
	}
}
