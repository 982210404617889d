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

package configutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/tikv/coarsetime/pkg/utils/typeutil"
)

type testConfig struct {
	Name   string            `toml:"name"`
	Period typeutil.Duration `toml:"period"`
	Inner  struct {
		Level string `toml:"level"`
	} `toml:"inner"`
}

func TestConfigFromFile(t *testing.T) {
	re := require.New(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	re.NoError(os.WriteFile(path, []byte(`
name = "foo"
period = "25ms"
unknown = 1

[inner]
level = "warn"
`), 0o600))

	cfg := &testConfig{}
	meta, err := ConfigFromFile(cfg, path)
	re.NoError(err)
	re.Equal("foo", cfg.Name)
	re.Equal(25*time.Millisecond, cfg.Period.Duration)

	md := NewConfigMetadata(meta)
	re.True(md.IsDefined("period"))
	re.False(md.IsDefined("missing"))
	re.True(md.Child("inner").IsDefined("level"))
	re.False(md.Child("inner").IsDefined("period"))
	re.ErrorContains(md.CheckUndecoded(), "unknown")

	_, err = ConfigFromFile(cfg, filepath.Join(t.TempDir(), "missing.toml"))
	re.Error(err)
	re.ErrorContains(err, "load config from")
}

func TestNilMetadata(t *testing.T) {
	re := require.New(t)
	md := NewConfigMetadata(nil)
	re.False(md.IsDefined("period"))
	re.NoError(md.CheckUndecoded())
}

func TestAdjust(t *testing.T) {
	re := require.New(t)
	s := ""
	AdjustString(&s, "default")
	re.Equal("default", s)
	AdjustString(&s, "other")
	re.Equal("default", s)

	var d typeutil.Duration
	AdjustDuration(&d, time.Second)
	re.Equal(time.Second, d.Duration)
	AdjustDuration(&d, time.Minute)
	re.Equal(time.Second, d.Duration)
}

func TestAdjustCommandLine(t *testing.T) {
	re := require.New(t)
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.String("name", "", "")
	flagSet.Duration("period", 10*time.Millisecond, "")
	flagSet.Duration("interval", time.Second, "")
	re.NoError(flagSet.Parse([]string{"--name=bar", "--period=5ms"}))

	name := "foo"
	AdjustCommandLineString(flagSet, &name, "name")
	re.Equal("bar", name)

	period := typeutil.NewDuration(time.Minute)
	AdjustCommandLineDuration(flagSet, &period, "period")
	re.Equal(5*time.Millisecond, period.Duration)

	interval := typeutil.NewDuration(time.Minute)
	AdjustCommandLineDuration(flagSet, &interval, "interval")
	re.Equal(time.Minute, interval.Duration)
}
