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

	"github.com/cybrota/mountainhike/mountain"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

// LoadStats summarizes how a trail file turned into a mountain.
type LoadStats struct {
	Lines      int
	Blank      int
	Skipped    int
	Duplicates int
	Inserted   int
}

// MountainLoader builds mountains from trail files.
type MountainLoader struct {
	config   IngestConfig
	cache    *cache.Cache
	progress io.Writer // nil disables the progress bar
}

func NewMountainLoader(config IngestConfig, c *cache.Cache) *MountainLoader {
	ml := &MountainLoader{config: config, cache: c}
	if config.ShowProgress {
		ml.progress = os.Stderr
	}
	return ml
}

// WithProgress shows a progress bar on w while reading.
func (ml *MountainLoader) WithProgress(w io.Writer) *MountainLoader {
	ml.progress = w
	return ml
}

// LoadFile validates path and builds its mountain, reusing a cached tree when
// the file is unchanged.
func (ml *MountainLoader) LoadFile(path string) (*mountain.Tree, LoadStats, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	info, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		return nil, LoadStats{}, errors.Errorf("the file %s does not exist", absPath)
	}
	if err != nil {
		return nil, LoadStats{}, errors.Wrapf(err, "cannot stat %s", absPath)
	}
	if info.IsDir() {
		return nil, LoadStats{}, errors.Errorf("%s is a directory, expected a trail file", absPath)
	}

	if ml.cache != nil {
		if m, ok := GetMountain(ml.cache, absPath, info); ok {
			logger.WithField("file", absPath).Debug("using cached mountain")
			return m.Tree, m.Stats, nil
		}
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, LoadStats{}, errors.Wrapf(err, "the file %s cannot be opened for reading", absPath)
	}
	defer file.Close()

	tree, stats, err := ml.Load(file, info.Size())
	if err != nil {
		return nil, stats, errors.Wrapf(err, "failed to load %s", absPath)
	}

	if ml.cache != nil {
		CacheMountain(ml.cache, absPath, &cachedMountain{
			Tree:    tree,
			Stats:   stats,
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}

	return tree, stats, nil
}

// Load reads trail lines from r into a new mountain. size is used for the
// progress bar only; pass -1 when unknown. Malformed lines and duplicate
// labels are skipped and counted.
func (ml *MountainLoader) Load(r io.Reader, size int64) (*mountain.Tree, LoadStats, error) {
	var stats LoadStats
	tree := mountain.New()

	var bar *progressbar.ProgressBar
	if ml.progress != nil {
		bar = progressbar.NewOptions64(size,
			progressbar.OptionSetWriter(ml.progress),
			progressbar.OptionSetDescription("⛰  Reading trail..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(ml.progress)
			}),
		)
		r = io.TeeReader(r, bar)
	}

	err := readTrail(r, func(line TrailLine) error {
		stats.Lines++
		entry := logger.WithField("line", line.Number)

		if errors.Is(line.Err, errBlankLine) {
			stats.Blank++
			return nil
		}
		if line.Err != nil {
			stats.Skipped++
			entry.WithError(line.Err).Warn("skipping malformed trail line")
			return nil
		}

		inserted, err := tree.Insert(line.Record)
		if err != nil {
			return err
		}
		if !inserted {
			stats.Duplicates++
			entry.WithField("label", line.Record.Label()).Warn("skipping duplicate rest stop")
			return nil
		}
		stats.Inserted++
		return nil
	})

	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return nil, stats, err
	}

	logger.WithFields(logrus.Fields{
		"lines":      stats.Lines,
		"inserted":   stats.Inserted,
		"duplicates": stats.Duplicates,
		"skipped":    stats.Skipped,
		"height":     tree.Height(),
	}).Debug("mountain loaded")

	return tree, stats, nil
}
