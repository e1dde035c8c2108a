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
	"os"
	"time"

	"github.com/cybrota/mountainhike/mountain"
	"github.com/patrickmn/go-cache"
)

const (
	// A loaded mountain stays around for the life of a run; repeated files on
	// the command line are read once.
	mountainCacheExpiration = 30 * time.Minute
	mountainCacheCleanup    = 5 * time.Minute
)

// cachedMountain is a built tree together with the file state it was read from.
type cachedMountain struct {
	Tree    *mountain.Tree
	Stats   LoadStats
	ModTime time.Time
	Size    int64
}

func NewMountainCache() *cache.Cache {
	return cache.New(mountainCacheExpiration, mountainCacheCleanup)
}

func CacheMountain(c *cache.Cache, path string, m *cachedMountain) {
	c.Set(path, m, cache.DefaultExpiration)
}

// GetMountain returns the cached tree for path if the file has not changed
// since it was loaded.
func GetMountain(c *cache.Cache, path string, info os.FileInfo) (*cachedMountain, bool) {
	val, ok := c.Get(path)
	if !ok {
		return nil, false
	}
	m := val.(*cachedMountain)
	if !m.ModTime.Equal(info.ModTime()) || m.Size != info.Size() {
		c.Delete(path)
		return nil, false
	}
	return m, true
}
