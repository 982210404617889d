// Copyright 2026 TiKV Project Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package coarsetime

import (
	"math"
	"math/bits"
	"time"

	"github.com/tikv/coarsetime/pkg/utils/tickutil"
)

// Duration is a span of time encoded as 64-bit fixed-point seconds: the high
// 32 bits are whole seconds and the low 32 bits are the fraction of a second
// in ticks of 1/2^32 s. It covers about 136 years.
//
// Arithmetic through the methods is total: it saturates at MaxDuration and at
// zero instead of wrapping. The built-in operators wrap like any uint64.
type Duration uint64

// MaxDuration is the longest representable duration.
const MaxDuration Duration = math.MaxUint64

const (
	secsPerMin  = 60
	secsPerHour = 60 * secsPerMin
	secsPerDay  = 24 * secsPerHour
)

// NewDuration creates a duration from whole seconds and nanoseconds.
// Nanoseconds above one second are carried into the seconds.
func NewDuration(secs uint64, nanos uint32) Duration {
	if nanos >= 1_000_000_000 {
		secs = saturatingAdd(secs, uint64(nanos/1_000_000_000))
		nanos %= 1_000_000_000
	}
	return Duration(tickutil.TimespecToTicks(secs, nanos))
}

// FromDays creates a duration from days.
func FromDays(days uint64) Duration {
	return FromSecs(saturatingMul(days, secsPerDay))
}

// FromHours creates a duration from hours.
func FromHours(hours uint64) Duration {
	return FromSecs(saturatingMul(hours, secsPerHour))
}

// FromMins creates a duration from minutes.
func FromMins(mins uint64) Duration {
	return FromSecs(saturatingMul(mins, secsPerMin))
}

// FromSecs creates a duration from seconds.
func FromSecs(secs uint64) Duration {
	return Duration(tickutil.SecsToTicks(secs))
}

// FromMillis creates a duration from milliseconds.
func FromMillis(millis uint64) Duration {
	return Duration(tickutil.MillisToTicks(millis))
}

// FromMicros creates a duration from microseconds.
func FromMicros(micros uint64) Duration {
	return Duration(tickutil.MicrosToTicks(micros))
}

// FromNanos creates a duration from nanoseconds.
func FromNanos(nanos uint64) Duration {
	return Duration(tickutil.NanosToTicks(nanos))
}

// FromTicks creates a duration from its raw encoding.
func FromTicks(ticks uint64) Duration {
	return Duration(ticks)
}

// FromStd converts a time.Duration. Negative values become zero.
func FromStd(d time.Duration) Duration {
	if d <= 0 {
		return 0
	}
	return FromNanos(uint64(d))
}

// AsDays returns the number of whole days.
func (d Duration) AsDays() uint64 {
	return d.AsSecs() / secsPerDay
}

// AsHours returns the number of whole hours.
func (d Duration) AsHours() uint64 {
	return d.AsSecs() / secsPerHour
}

// AsMins returns the number of whole minutes.
func (d Duration) AsMins() uint64 {
	return d.AsSecs() / secsPerMin
}

// AsSecs returns the number of whole seconds.
func (d Duration) AsSecs() uint64 {
	return uint64(d) >> tickutil.FracBits
}

// AsMillis returns the number of whole milliseconds.
func (d Duration) AsMillis() uint64 {
	return tickutil.TicksToMillis(uint64(d))
}

// AsMicros returns the number of whole microseconds.
func (d Duration) AsMicros() uint64 {
	return tickutil.TicksToMicros(uint64(d))
}

// AsNanos returns the number of whole nanoseconds.
func (d Duration) AsNanos() uint64 {
	return tickutil.TicksToNanos(uint64(d))
}

// AsTicks returns the raw encoding.
func (d Duration) AsTicks() uint64 {
	return uint64(d)
}

// SubsecNanos returns the fractional part in nanoseconds.
func (d Duration) SubsecNanos() uint32 {
	return tickutil.SubsecNanos(uint64(d))
}

// SubsecMillis returns the fractional part in milliseconds.
func (d Duration) SubsecMillis() uint32 {
	return d.SubsecNanos() / 1_000_000
}

// AsSeconds returns the duration as floating point seconds.
func (d Duration) AsSeconds() float64 {
	return float64(d) / float64(tickutil.TicksPerSecond)
}

// Std converts to a time.Duration. The longest Duration is about 136 years,
// well within the range of time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d.AsNanos())
}

// String formats the duration like time.Duration does.
func (d Duration) String() string {
	return d.Std().String()
}

// Add returns d+u, saturating at MaxDuration.
func (d Duration) Add(u Duration) Duration {
	return Duration(saturatingAdd(uint64(d), uint64(u)))
}

// Sub returns d-u, saturating at zero.
func (d Duration) Sub(u Duration) Duration {
	if u >= d {
		return 0
	}
	return d - u
}

// Mul returns d*n, saturating at MaxDuration.
func (d Duration) Mul(n uint64) Duration {
	return Duration(saturatingMul(uint64(d), n))
}

// Div returns d/n. Dividing by zero yields MaxDuration.
func (d Duration) Div(n uint64) Duration {
	if n == 0 {
		return MaxDuration
	}
	return d / Duration(n)
}

// AbsDiff returns the distance between d and u.
func (d Duration) AbsDiff(u Duration) Duration {
	if d > u {
		return d - u
	}
	return u - d
}

// Compare returns -1, 0 or +1 depending on whether d is shorter than, equal
// to or longer than u.
func (d Duration) Compare(u Duration) int {
	switch {
	case d < u:
		return -1
	case d > u:
		return 1
	default:
		return 0
	}
}

func saturatingAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

func saturatingMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
