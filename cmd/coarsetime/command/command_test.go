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
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/tikv/coarsetime/pkg/utils/testutil"
)

func TestMain(m *testing.M) {
	testutil.MustTestMainWithLeakDetection(m)
}

func TestNowCommand(t *testing.T) {
	re := require.New(t)
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"now"})
	re.NoError(cmd.Execute())
	for _, key := range []string{"source:", "instant:", "monotonic-age:", "since-epoch:", "wall:"} {
		re.Contains(out.String(), key)
	}

	cmd = NewRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"now", "extra"})
	re.Error(cmd.Execute())
}

func TestWatchCommand(t *testing.T) {
	re := require.New(t)
	cmd := NewRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{
		"watch",
		"--period=5ms",
		"--interval=50ms",
		"--duration=300ms",
		"--metrics-addr=127.0.0.1:0",
		"--log-level=warn",
	})
	start := time.Now()
	re.NoError(cmd.Execute())
	re.GreaterOrEqual(time.Since(start), 300*time.Millisecond)
}

func TestWatchCommandBadConfig(t *testing.T) {
	re := require.New(t)
	cmd := NewRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"watch", "--log-level=loud", "--duration=1ms"})
	re.ErrorContains(cmd.Execute(), "invalid log level")
}

func TestMetricsServer(t *testing.T) {
	re := require.New(t)
	srv, addr, err := runMetricsServer("127.0.0.1:0")
	re.NoError(err)
	defer func() {
		re.NoError(srv.Shutdown(t.Context()))
	}()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + addr.String() + "/metrics")
	re.NoError(err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	re.NoError(err)
	re.Equal(http.StatusOK, resp.StatusCode)
	re.Contains(string(body), "coarsetime_clock_recent_unix_seconds")
	re.Contains(string(body), "coarsetime_updater_running")
}

func newTestFlagSet() *pflag.FlagSet {
	return NewWatchCommand().Flags()
}

func TestWatchConfigDefaults(t *testing.T) {
	re := require.New(t)
	flagSet := newTestFlagSet()
	re.NoError(flagSet.Parse(nil))
	cfg := newWatchConfig()
	re.NoError(cfg.Parse(flagSet))
	re.Equal(defaultInterval, cfg.Interval.Duration)
	re.Zero(cfg.Duration.Duration)
	re.Equal("default", cfg.Updater.Name)
	re.Equal(10*time.Millisecond, cfg.Updater.Period.Duration)
	re.Equal(defaultLogLevel, cfg.Log.Level)
	re.Empty(cfg.WarningMsgs)
}

func TestWatchConfigFromFile(t *testing.T) {
	re := require.New(t)
	path := filepath.Join(t.TempDir(), "watch.toml")
	re.NoError(os.WriteFile(path, []byte(`
interval = "2s"
metrics-addr = "127.0.0.1:9090"
unknown = true

[updater]
name = "file"
period = "50ms"

[log]
level = "debug"
`), 0o600))

	flagSet := newTestFlagSet()
	re.NoError(flagSet.Parse([]string{"--config", path, "--period=20ms", "--log-level=error"}))
	cfg := newWatchConfig()
	re.NoError(cfg.Parse(flagSet))
	re.Equal(2*time.Second, cfg.Interval.Duration)
	re.Equal("127.0.0.1:9090", cfg.MetricsAddr)
	re.Equal("file", cfg.Updater.Name)
	re.Equal(20*time.Millisecond, cfg.Updater.Period.Duration)
	re.Equal("error", cfg.Log.Level)
	re.Len(cfg.WarningMsgs, 1)
	re.Contains(cfg.WarningMsgs[0], "unknown")

	flagSet = newTestFlagSet()
	re.NoError(flagSet.Parse([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")}))
	re.Error(newWatchConfig().Parse(flagSet))
}

func TestWatchConfigClampsPeriod(t *testing.T) {
	re := require.New(t)
	flagSet := newTestFlagSet()
	re.NoError(flagSet.Parse([]string{"--period=1m"}))
	cfg := newWatchConfig()
	re.NoError(cfg.Parse(flagSet))
	re.Equal(10*time.Second, cfg.Updater.Period.Duration)
	re.Len(cfg.WarningMsgs, 1)
}
