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

// Package size provides a byte-count type used to size buffers, rate limits
// and file thresholds throughout the library.
package size

import (
	"math"
	"strconv"
	"strings"
)

// Size represents a count of bytes. It is backed by uint64 so it can express
// sizes up to the full exabyte range used by the binary constants below.
type Size uint64

const SizeNul Size = 0

const (
	SizeUnit Size = 1 << (10 * iota)
	SizeKilo
	SizeMega
	SizeGiga
	SizeTera
	SizePeta
	SizeExa
)

// ParseInt64 clamps a signed integer into a Size, flooring negative values to zero.
func ParseInt64(i int64) Size {
	if i <= 0 {
		return SizeNul
	}
	return Size(i)
}

// SizeFromInt64 is an alias of ParseInt64.
func SizeFromInt64(i int64) Size {
	return ParseInt64(i)
}

// ParseUint64 wraps a uint64 directly into a Size.
func ParseUint64(i uint64) Size {
	return Size(i)
}

// SizeFromUint64 is an alias of ParseUint64.
func SizeFromUint64(i uint64) Size {
	return ParseUint64(i)
}

// ParseFloat64 rounds a floating point byte count into a Size, clamping to the
// uint64 range and flooring negative or NaN values to zero.
func ParseFloat64(f float64) Size {
	if math.IsNaN(f) || f <= 0 {
		return SizeNul
	}
	if f >= math.MaxUint64 {
		return Size(math.MaxUint64)
	}
	return Size(math.Round(f))
}

// SizeFromFloat64 is an alias of ParseFloat64.
func SizeFromFloat64(f float64) Size {
	return ParseFloat64(f)
}

func (s Size) Uint64() uint64 {
	return uint64(s)
}

func (s Size) Uint32() uint32 {
	if s > Size(math.MaxUint32) {
		return math.MaxUint32
	}
	return uint32(s)
}

func (s Size) Uint() uint {
	if uint64(s) > math.MaxUint {
		return math.MaxUint
	}
	return uint(s)
}

func (s Size) Int64() int64 {
	if s > Size(math.MaxInt64) {
		return math.MaxInt64
	}
	return int64(s)
}

func (s Size) Int32() int32 {
	if s > Size(math.MaxInt32) {
		return math.MaxInt32
	}
	return int32(s)
}

func (s Size) Float64() float64 {
	return float64(s)
}

// String formats the size with the largest binary unit that keeps the value >= 1.
func (s Size) String() string {
	var (
		val  = float64(s)
		unit = "B"
	)

	switch {
	case s >= SizeExa:
		val, unit = val/float64(SizeExa), "EiB"
	case s >= SizePeta:
		val, unit = val/float64(SizePeta), "PiB"
	case s >= SizeTera:
		val, unit = val/float64(SizeTera), "TiB"
	case s >= SizeGiga:
		val, unit = val/float64(SizeGiga), "GiB"
	case s >= SizeMega:
		val, unit = val/float64(SizeMega), "MiB"
	case s >= SizeKilo:
		val, unit = val/float64(SizeKilo), "KiB"
	default:
		return strconv.FormatUint(uint64(s), 10) + " B"
	}

	return strconv.FormatFloat(val, 'f', 2, 64) + " " + unit
}

// Code returns the unit suffix (B, KiB, MiB, ...) for the given precision, ignoring it.
func (s Size) Code(_ int) string {
	parts := strings.SplitN(s.String(), " ", 2)
	if len(parts) != 2 {
		return "B"
	}
	return parts[1]
}

func (s Size) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(s), 10)), nil
}

func (s *Size) UnmarshalJSON(b []byte) error {
	v, err := strconv.ParseUint(strings.Trim(string(b), `"`), 10, 64)
	if err != nil {
		return err
	}
	*s = Size(v)
	return nil
}

func (s Size) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(s), 10)), nil
}

func (s *Size) UnmarshalText(b []byte) error {
	v, err := strconv.ParseUint(strings.TrimSpace(string(b)), 10, 64)
	if err != nil {
		return err
	}
	*s = Size(v)
	return nil
}
