// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// exitCode is returned by commands which finish normally but report
// their outcome through the exit status.
type exitCode int

func (e exitCode) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

// state shared by the commands, set before any of them runs.
var (
	cfg = defaultConfig()
	log = logrus.New()
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "simcec",
		Short:         "simulation based combinational equivalence checking",
		Long:          `simcec checks aiger circuits for equivalence by simulating all input patterns.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			cfg = c
			log = cfg.logger()
			return nil
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "yaml configuration file")
	flags.String("log-level", "info", "log level (panic, fatal, error, warn, info, debug, trace)")
	flags.Uint64("node-overhead", 0, "bytes of bookkeeping per node assumed when planning rounds (default 32)")

	rootCmd.AddCommand(newCheckCmd(), newBatchCmd(), newGenCmd())
	return rootCmd
}

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}
	if code, ok := errors.Cause(err).(exitCode); ok {
		os.Exit(int(code))
	}
	log.Error(err)
	os.Exit(1)
}
