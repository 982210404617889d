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

package command

import (
	"fmt"
	"time"

	"github.com/docker/go-units"
	"github.com/pingcap/log"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/spf13/cobra"

	"github.com/tikv/coarsetime/pkg/clock"
	"github.com/tikv/coarsetime/pkg/coarsetime"
	"github.com/tikv/coarsetime/pkg/errs"
	"github.com/tikv/coarsetime/pkg/timesource"
)

// NewNowCommand returns a command printing one fresh reading.
func NewNowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "print the current coarse time",
		Args:  cobra.NoArgs,
		Run:   nowCommandF,
	}
}

func nowCommandF(cmd *cobra.Command, _ []string) {
	now := coarsetime.Now()
	sinceEpoch := clock.RecentSinceEpoch()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "source:        %s\n", timesource.Name())
	fmt.Fprintf(out, "instant:       %s\n", now)
	fmt.Fprintf(out, "monotonic-age: %s\n", units.HumanDuration(coarsetime.FromTicks(now.AsTicks()).Std()))
	fmt.Fprintf(out, "since-epoch:   %.6fs\n", sinceEpoch.AsSeconds())
	fmt.Fprintf(out, "wall:          %s\n", clock.Recent().Format(time.RFC3339Nano))

	// On most hosts the monotonic clock counts from boot, so the two lines
	// below should roughly agree.
	bootTime, err := host.BootTime()
	if err != nil {
		log.Warn("failed to read the host boot time", errs.ZapError(err))
		return
	}
	derived := clock.Recent().Add(-coarsetime.FromTicks(now.AsTicks()).Std())
	fmt.Fprintf(out, "host-boot:     %s\n", time.Unix(int64(bootTime), 0).Format(time.RFC3339))
	fmt.Fprintf(out, "derived-boot:  %s\n", derived.Format(time.RFC3339))
}
