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
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/spf13/pflag"

	"github.com/tikv/coarsetime/pkg/updater"
	"github.com/tikv/coarsetime/pkg/utils/configutil"
	"github.com/tikv/coarsetime/pkg/utils/logutil"
	"github.com/tikv/coarsetime/pkg/utils/typeutil"
)

const (
	defaultInterval  = time.Second
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

type watchConfig struct {
	// Interval is how often the cached time is logged.
	Interval typeutil.Duration `toml:"interval" json:"interval"`
	// Duration stops the watch after it elapses. Zero runs until interrupted.
	Duration    typeutil.Duration `toml:"duration" json:"duration"`
	MetricsAddr string            `toml:"metrics-addr" json:"metrics-addr"`

	Updater updater.Config `toml:"updater" json:"updater"`
	Log     log.Config     `toml:"log" json:"log"`

	// WarningMsgs contains all warnings during parsing.
	WarningMsgs []string `toml:"-" json:"-"`
}

func newWatchConfig() *watchConfig {
	return &watchConfig{}
}

// Parse loads the config file named by the config flag, if any, and then
// applies the other flags on top of it.
func (c *watchConfig) Parse(flagSet *pflag.FlagSet) error {
	var (
		meta *toml.MetaData
		err  error
	)
	if configFile, _ := flagSet.GetString("config"); configFile != "" {
		meta, err = configutil.ConfigFromFile(c, configFile)
		if err != nil {
			return err
		}
	}

	configutil.AdjustCommandLineString(flagSet, &c.Log.Level, "log-level")
	configutil.AdjustCommandLineString(flagSet, &c.MetricsAddr, "metrics-addr")
	configutil.AdjustCommandLineString(flagSet, &c.Updater.Name, "name")
	configutil.AdjustCommandLineDuration(flagSet, &c.Updater.Period, "period")
	configutil.AdjustCommandLineDuration(flagSet, &c.Interval, "interval")
	configutil.AdjustCommandLineDuration(flagSet, &c.Duration, "duration")
	return c.adjust(meta)
}

func (c *watchConfig) adjust(meta *toml.MetaData) error {
	configMetaData := configutil.NewConfigMetadata(meta)
	if err := configMetaData.CheckUndecoded(); err != nil {
		c.WarningMsgs = append(c.WarningMsgs, err.Error())
	}

	configutil.AdjustDuration(&c.Interval, defaultInterval)
	if c.Duration.Duration < 0 {
		return errors.Errorf("negative watch duration %s", c.Duration)
	}

	c.Updater.Adjust(configMetaData.Child("updater"))
	c.WarningMsgs = append(c.WarningMsgs, c.Updater.WarningMsgs...)
	return c.adjustLog()
}

func (c *watchConfig) adjustLog() error {
	configutil.AdjustString(&c.Log.Level, defaultLogLevel)
	configutil.AdjustString(&c.Log.Format, defaultLogFormat)
	if !logutil.IsLevelLegal(c.Log.Level) {
		return errors.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}
