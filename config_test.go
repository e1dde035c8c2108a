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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	require.Equal(t, defaultConfig, *cfg)
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "hiker:\n  food: 4\n  axe: 1\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)
	require.Equal(t, HikerConfig{Food: 4, Axe: 1}, cfg.Hiker)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, defaultConfig.Ingest, cfg.Ingest)
	require.True(t, cfg.Display.Color)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hiker: [not, a, map"), 0644))

	cfg, err := LoadConfigFrom(path)
	require.Error(t, err)
	require.Equal(t, defaultConfig, *cfg)
}

func TestDisplaySettingsCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)

	var out bytes.Buffer
	require.NoError(t, displaySettings(&out, path))
	require.FileExists(t, path)
	require.Contains(t, out.String(), "newly created")
	require.Contains(t, out.String(), "show_progress: false")

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)
	require.Equal(t, defaultConfig, *cfg)

	out.Reset()
	require.NoError(t, displaySettings(&out, path))
	require.NotContains(t, out.String(), "newly created")
}
