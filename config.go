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
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const configFileName = ".mountainhike.yaml"

// HikerConfig is what the hiker carries at the summit.
type HikerConfig struct {
	Food int `yaml:"food"`
	Raft int `yaml:"raft"`
	Axe  int `yaml:"axe"`
}

type IngestConfig struct {
	ShowProgress bool `yaml:"show_progress"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type DisplayConfig struct {
	Color bool `yaml:"color"`
}

type Config struct {
	Hiker   HikerConfig   `yaml:"hiker"`
	Ingest  IngestConfig  `yaml:"ingest"`
	Log     LogConfig     `yaml:"log"`
	Display DisplayConfig `yaml:"display"`
}

var defaultConfig = Config{
	Hiker: HikerConfig{
		Food: 0,
		Raft: 0,
		Axe:  0,
	},
	Ingest: IngestConfig{
		ShowProgress: false,
	},
	Log: LogConfig{
		Level: "warn",
	},
	Display: DisplayConfig{
		Color: true,
	},
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfigFrom reads the config at configPath. Keys absent from the file keep
// their default values. On a read or parse error the defaults are returned
// together with the error.
func LoadConfigFrom(configPath string) (*Config, error) {
	cfg := defaultConfig

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return &cfg, errors.Wrapf(err, "failed to read config %s", configPath)
	}

	loaded := defaultConfig
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return &cfg, errors.Wrapf(err, "failed to parse config %s", configPath)
	}

	return &loaded, nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// displaySettings prints the active configuration, creating the default file
// first when none exists.
func displaySettings(w io.Writer, configPath string) error {
	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		created = true
	}

	cfg, err := LoadConfigFrom(configPath)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	st := newStyles(cfg.Display.Color)
	fmt.Fprintln(w, st.Title.Render("⛰  Mountainhike Configuration Settings"))
	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", configPath)
	}
	fmt.Fprint(w, string(data))
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.Muted.Render("💡 hiker.* sets the starting pack; --food, --raft and --axe override it per run."))

	return nil
}
