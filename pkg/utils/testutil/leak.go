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

package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

// LeakOptions is used to filter the goroutines.
var LeakOptions = []goleak.Option{
	goleak.IgnoreTopFunction("sync.runtime_notifyListWait"),
}

/*
MustTestMainWithLeakDetection verifies tests do not leave any leaky
goroutines, such as an updater worker that was never stopped.

	func TestMain(m *testing.M) {
		testutil.MustTestMainWithLeakDetection(m)
	}
*/
func MustTestMainWithLeakDetection(m *testing.M) {
	goleak.VerifyTestMain(m, LeakOptions...)
}

// RegisterLeakDetection is a convenient way to register before-and-after code to a test.
func RegisterLeakDetection(t *testing.T) {
	opts := append([]goleak.Option{goleak.IgnoreCurrent()}, LeakOptions...)
	t.Cleanup(func() {
		goleak.VerifyNone(t, opts...)
	})
}
