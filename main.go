// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/cybrota/mountainhike/hike"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

const asciiLogo = `
 __  __                   _        _       _     _ _
|  \/  | ___  _   _ _ __ | |_ __ _(_)_ __ | |__ (_) | _____
| |\/| |/ _ \| | | | '_ \| __/ _' | | '_ \| '_ \| | |/ / _ \
| |  | | (_) | |_| | | | | || (_| | | | | | | | | |   <  __/
|_|  |_|\___/ \__,_|_| |_|\__\__,_|_|_| |_|_| |_|_|_|\_\___|
Every trail from the summit to the bottom of the mountain [Version: %s%s%s]

`

// app carries what every command needs once flags and config are resolved.
type app struct {
	configPath string
	logLevel   string
	config     *Config
	loader     *MountainLoader
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.configPath == "" {
		path, err := getConfigPath()
		if err != nil {
			return err
		}
		a.configPath = path
	}

	cfg, err := LoadConfigFrom(a.configPath)
	if err != nil {
		logger.WithError(err).Warn("failed to load configuration, using default settings")
	}
	a.config = cfg

	level := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		level = a.logLevel
	}
	if err := setLogLevel(logger, level); err != nil {
		return err
	}

	a.loader = NewMountainLoader(cfg.Ingest, NewMountainCache())
	return nil
}

// startingPack takes the config's hiker and applies any supply flags given on
// the command line. Every supply must end up non-negative.
func startingPack(cmd *cobra.Command, cfg HikerConfig) (hike.Traveler, error) {
	start := hike.Traveler{Food: cfg.Food, Raft: cfg.Raft, Axe: cfg.Axe}
	supplies := []struct {
		name string
		dst  *int
	}{
		{"food", &start.Food},
		{"raft", &start.Raft},
		{"axe", &start.Axe},
	}

	for _, s := range supplies {
		if !cmd.Flags().Changed(s.name) {
			if *s.dst < 0 {
				return start, fmt.Errorf("hiker.%s in the config must be non-negative, got %d", s.name, *s.dst)
			}
			continue
		}
		v, err := cmd.Flags().GetInt(s.name)
		if err != nil {
			return start, err
		}
		if v < 0 {
			return start, fmt.Errorf("--%s must be non-negative, got %d", s.name, v)
		}
		*s.dst = v
	}
	return start, nil
}

func newHikeCommand(a *app, use string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: "Print every complete trail down the given mountains",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := startingPack(cmd, a.config.Hiker)
			if err != nil {
				return err
			}

			showProgress, _ := cmd.Flags().GetBool("progress")
			if showProgress {
				a.loader.WithProgress(os.Stderr)
			}

			copyPaths, _ := cmd.Flags().GetBool("copy")
			showStats, _ := cmd.Flags().GetBool("stats")
			return runHike(os.Stdout, os.Stderr, a.loader, args, hikeOptions{
				Start:     start,
				Copy:      copyPaths,
				ShowStats: showStats,
				Color:     a.config.Display.Color,
			})
		},
	}

	cmd.Flags().Int("food", 0, "food in the hiker's pack at the summit (overrides config)")
	cmd.Flags().Int("raft", 0, "rafts in the hiker's pack at the summit (overrides config)")
	cmd.Flags().Int("axe", 0, "axes in the hiker's pack at the summit (overrides config)")
	cmd.Flags().Bool("copy", false, "copy the printed trails to the clipboard")
	cmd.Flags().Bool("progress", false, "show a progress bar while reading trail files")
	cmd.Flags().Bool("stats", false, "print a summary of each mountain and hike to stderr")
	return cmd
}

func newRootCommand() *cobra.Command {
	a := &app{}
	logo := fmt.Sprintf(asciiLogo, Green, version, Reset)

	var rootCmd = newHikeCommand(a, "mountainhike <file>...")
	rootCmd.Long = logo
	rootCmd.Version = version
	rootCmd.SilenceUsage = true
	rootCmd.PersistentPreRunE = a.setup
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/"+configFileName+")")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	var cmdHike = newHikeCommand(a, "hike <file>...")
	cmdHike.Long = fmt.Sprintf("%s\n%s", logo, `Hike reads each trail file, builds its mountain and prints every trail that reaches the bottom`)

	var cmdRender = &cobra.Command{
		Use:   "render <file>",
		Short: "Print the shape of a mountain",
		Long:  fmt.Sprintf("%s\n%s", logo, `Render prints the balanced tree built from a trail file, one rest stop per line`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			check, _ := cmd.Flags().GetBool("check")
			return runRender(os.Stdout, a.loader, args[0], check, a.config.Display.Color)
		},
	}
	cmdRender.Flags().Bool("check", false, "verify ordering, heights and balance")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Mountainhike usage guide",
		Long:  fmt.Sprintf("%s\n%s", logo, `Usage displays the mountainhike usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating the default file if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(os.Stdout, a.configPath)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Mountainhike version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(cmdHike, cmdRender, cmdUsage, cmdSettings, cmdVersion)
	return rootCmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
