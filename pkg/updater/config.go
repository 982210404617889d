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

package updater

import (
	"fmt"
	"time"

	"github.com/tikv/coarsetime/pkg/utils/configutil"
	"github.com/tikv/coarsetime/pkg/utils/typeutil"
)

const (
	defaultName   = "default"
	defaultPeriod = 10 * time.Millisecond
	minPeriod     = time.Millisecond
	maxPeriod     = 10 * time.Second
)

// Config is the configuration of an Updater.
type Config struct {
	// Name identifies the updater in logs and metrics.
	Name string `toml:"name" json:"name"`
	// Period is the interval between two refreshes of the cache.
	Period typeutil.Duration `toml:"period" json:"period"`

	// WarningMsgs contains all warnings during parsing.
	WarningMsgs []string `toml:"-" json:"-"`
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Name:   defaultName,
		Period: typeutil.NewDuration(defaultPeriod),
	}
}

// ConfigFromFile loads and adjusts a Config from a TOML file.
func ConfigFromFile(path string) (*Config, error) {
	cfg := &Config{}
	meta, err := configutil.ConfigFromFile(cfg, path)
	if err != nil {
		return nil, err
	}
	configMetaData := configutil.NewConfigMetadata(meta)
	if err := configMetaData.CheckUndecoded(); err != nil {
		cfg.WarningMsgs = append(cfg.WarningMsgs, err.Error())
	}
	cfg.Adjust(configMetaData)
	return cfg, nil
}

// Adjust fills the undefined fields with defaults and clamps the period.
// meta points at the table the Config was decoded from.
func (c *Config) Adjust(meta *configutil.ConfigMetaData) {
	configutil.AdjustString(&c.Name, defaultName)
	if !meta.IsDefined("period") {
		configutil.AdjustDuration(&c.Period, defaultPeriod)
	}
	switch {
	case c.Period.Duration < minPeriod:
		c.WarningMsgs = append(c.WarningMsgs, fmt.Sprintf("period %s is too short, use %s instead", c.Period, minPeriod))
		c.Period.Duration = minPeriod
	case c.Period.Duration > maxPeriod:
		c.WarningMsgs = append(c.WarningMsgs, fmt.Sprintf("period %s is too long, use %s instead", c.Period, maxPeriod))
		c.Period.Duration = maxPeriod
	}
}
