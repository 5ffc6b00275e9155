// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/go-air/simcec/cec"
)

type config struct {
	cec.Options `mapstructure:",squash"`
	LogLevel    string `mapstructure:"log-level"`
	Jobs        int    `mapstructure:"jobs"`
}

func defaultConfig() *config {
	return &config{
		Options:  cec.DefaultOptions(),
		LogLevel: "info",
		Jobs:     1}
}

// decodeConfig decodes yaml data into cfg.  Unknown keys are errors.
func decodeConfig(data []byte, cfg *config) error {
	raw := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "parse config")
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           cfg})
	if err != nil {
		return err
	}
	return errors.Wrap(dec.Decode(raw), "decode config")
}

// loadConfig builds the configuration from the file named by the
// config flag, if any, and then the flags set on the command line.
func loadConfig(flags *pflag.FlagSet) (*config, error) {
	cfg := defaultConfig()
	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := decodeConfig(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "%s", path)
		}
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("node-overhead") {
		cfg.NodeOverhead, _ = flags.GetUint64("node-overhead")
	}
	if flags.Changed("jobs") {
		cfg.Jobs, _ = flags.GetInt("jobs")
	}
	if cfg.Jobs < 1 {
		return nil, errors.Errorf("jobs must be positive, got %d", cfg.Jobs)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

// logger returns a logger writing to stderr at the configured level.
func (c *config) logger() *logrus.Logger {
	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	return log
}

// checker returns a checker with the configured options logging to log.
func (c *config) checker(log logrus.FieldLogger) *cec.Checker {
	opts := c.Options
	opts.Log = log
	return cec.New(opts)
}
