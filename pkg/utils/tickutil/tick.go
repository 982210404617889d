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

package tickutil

import (
	"math"
	"math/bits"
)

// A tick value is a 64-bit fixed-point number of seconds: the high 32 bits
// hold whole seconds and the low 32 bits hold the fraction of a second in
// units of 1/2^32 s.
const (
	// FracBits is the number of fractional bits.
	FracBits = 32
	// TicksPerSecond is the number of ticks in one second.
	TicksPerSecond uint64 = 1 << FracBits
	// FracMask selects the fractional part of a tick value.
	FracMask uint64 = TicksPerSecond - 1

	// Reciprocal constants are ceil(2^63 / unitsPerSecond). Multiplying a
	// sub-second remainder by one and shifting right by 31 yields the fraction
	// in ticks.
	millisRecip uint64 = 9_223_372_036_854_776
	microsRecip uint64 = 9_223_372_036_855
	nanosRecip  uint64 = 9_223_372_037
	recipShift         = 31
	recipRound  uint64 = 1<<recipShift - 1
)

// SecsToTicks converts whole seconds, saturating at math.MaxUint64.
func SecsToTicks(secs uint64) uint64 {
	if secs > math.MaxUint32 {
		return math.MaxUint64
	}
	return secs << FracBits
}

// MillisToTicks converts milliseconds to ticks.
func MillisToTicks(millis uint64) uint64 {
	secs := millis / 1_000
	return withFrac(secs, fracFromRem(millis-secs*1_000, millisRecip))
}

// MicrosToTicks converts microseconds to ticks.
func MicrosToTicks(micros uint64) uint64 {
	secs := micros / 1_000_000
	return withFrac(secs, fracFromRem(micros-secs*1_000_000, microsRecip))
}

// NanosToTicks converts nanoseconds to ticks.
func NanosToTicks(nanos uint64) uint64 {
	secs := nanos / 1_000_000_000
	return withFrac(secs, fracFromRem(nanos-secs*1_000_000_000, nanosRecip))
}

// TimespecToTicks converts a (seconds, nanoseconds) pair as returned by
// clock_gettime. The nanosecond part must be below one second.
func TimespecToTicks(sec uint64, nsec uint32) uint64 {
	return withFrac(sec, fracFromRem(uint64(nsec), nanosRecip))
}

// TimevalToTicks converts a (seconds, microseconds) pair as returned by
// gettimeofday. The microsecond part must be below one second.
func TimevalToTicks(sec uint64, usec uint32) uint64 {
	return withFrac(sec, fracFromRem(uint64(usec), microsRecip))
}

// fracFromRem rounds up so that converting the fraction back with a
// truncating multiply returns rem exactly.
func fracFromRem(rem, recip uint64) uint64 {
	return (rem*recip + recipRound) >> recipShift
}

func withFrac(secs, frac uint64) uint64 {
	whole := SecsToTicks(secs)
	if whole == math.MaxUint64 {
		return whole
	}
	return whole | frac
}

// TicksToMillis truncates ticks to whole milliseconds.
func TicksToMillis(ticks uint64) uint64 {
	return mulShift(ticks, 1_000)
}

// TicksToMicros truncates ticks to whole microseconds.
func TicksToMicros(ticks uint64) uint64 {
	return mulShift(ticks, 1_000_000)
}

// TicksToNanos truncates ticks to whole nanoseconds.
func TicksToNanos(ticks uint64) uint64 {
	return mulShift(ticks, 1_000_000_000)
}

// SubsecNanos returns the fractional part of ticks in nanoseconds.
func SubsecNanos(ticks uint64) uint32 {
	return uint32(((ticks & FracMask) * 1_000_000_000) >> FracBits)
}

// mulShift computes ticks*units>>32 with a 128-bit intermediate product, so
// the whole uint64 range converts without overflow.
func mulShift(ticks, units uint64) uint64 {
	hi, lo := bits.Mul64(ticks, units)
	return hi<<(64-FracBits) | lo>>FracBits
}
