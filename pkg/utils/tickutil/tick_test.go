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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSecsToTicks(t *testing.T) {
	re := require.New(t)
	re.Equal(uint64(0), SecsToTicks(0))
	re.Equal(TicksPerSecond, SecsToTicks(1))
	re.Equal(uint64(math.MaxUint32)<<FracBits, SecsToTicks(math.MaxUint32))
	re.Equal(uint64(math.MaxUint64), SecsToTicks(math.MaxUint32+1))
	re.Equal(uint64(math.MaxUint64), SecsToTicks(math.MaxUint64))
}

func TestSubsecondRoundTrip(t *testing.T) {
	re := require.New(t)
	for ms := range uint64(1_000) {
		re.Equal(ms, TicksToMillis(MillisToTicks(ms)), "millis %d", ms)
	}
	for range 10_000 {
		us := rand.Uint64N(1_000_000)
		re.Equal(us, TicksToMicros(MicrosToTicks(us)), "micros %d", us)
		ns := rand.Uint64N(1_000_000_000)
		re.Equal(ns, TicksToNanos(NanosToTicks(ns)), "nanos %d", ns)
		re.Equal(uint32(ns), SubsecNanos(TimespecToTicks(0, uint32(ns))), "nanos %d", ns)
	}
	// Edges of the fractional range must not spill into the seconds.
	re.Equal(uint64(0), MillisToTicks(999)>>FracBits)
	re.Equal(uint64(0), MicrosToTicks(999_999)>>FracBits)
	re.Equal(uint64(0), NanosToTicks(999_999_999)>>FracBits)
}

func TestWholeRoundTrip(t *testing.T) {
	re := require.New(t)
	for range 10_000 {
		ms := rand.Uint64N(uint64(math.MaxUint32) * 1_000)
		re.Equal(ms, TicksToMillis(MillisToTicks(ms)))
		re.Equal(ms/1_000, MillisToTicks(ms)>>FracBits)
	}
	re.Equal(uint64(1_500), TicksToMillis(TimevalToTicks(1, 500_000)))
	re.Equal(uint64(2_000_000_001), TicksToNanos(TimespecToTicks(2, 1)))
}

func TestWideConversions(t *testing.T) {
	re := require.New(t)
	re.Equal(uint64(math.MaxUint32)*1_000+999, TicksToMillis(math.MaxUint64))
	re.Equal(uint64(math.MaxUint32)*1_000_000+999_999, TicksToMicros(math.MaxUint64))
	re.Equal(uint64(math.MaxUint32)*1_000_000_000+999_999_999, TicksToNanos(math.MaxUint64))
	re.Equal(uint32(999_999_999), SubsecNanos(math.MaxUint64))
	// Seconds beyond the representable range saturate instead of wrapping.
	re.Equal(uint64(math.MaxUint64), NanosToTicks(math.MaxUint64))
	re.Equal(uint64(math.MaxUint64), TimespecToTicks(math.MaxUint64, 1))
}
