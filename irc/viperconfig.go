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
	"fmt"

	liberr "github.com/mir-ror/libircclient/errors"
	"github.com/mir-ror/libircclient/ircerr"
	spfvpr "github.com/spf13/viper"
)

// LoadConfig unmarshals the sub-tree rooted at key into a Config using v's
// mapstructure-backed decoder, then validates the result, mirroring the
// config/components.*'s "UnmarshalKey + Validate" idiom. An empty key
// unmarshals the whole of v.
func LoadConfig(v *spfvpr.Viper, key string) (Config, liberr.Error) {
	cfg := defaultConfig()

	if v == nil {
		return cfg, ircerr.Error(ircerr.ErrInval, fmt.Errorf("nil viper instance"))
	}

	var err error
	if key == "" {
		err = v.Unmarshal(&cfg)
	} else {
		err = v.UnmarshalKey(key, &cfg)
	}
	if err != nil {
		return cfg, ircerr.Error(ircerr.ErrInval, err)
	}

	if e := cfg.Validate(); e != nil {
		return cfg, e
	}
	return cfg, nil
}
