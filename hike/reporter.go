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

package hike

import (
	"io"
	"strings"
)

// Reporter receives every complete path down the mountain. Each path is a fresh
// slice that reporters may keep but must not modify.
type Reporter interface {
	Report(path []string)
}

// ReporterFunc adapts a function to a Reporter.
type ReporterFunc func(path []string)

func (f ReporterFunc) Report(path []string) { f(path) }

// LineReporter writes each path on its own line, labels separated by a single
// space. The first write error stops further output and is kept in Err.
type LineReporter struct {
	W     io.Writer
	Err   error
	Lines int
}

func NewLineReporter(w io.Writer) *LineReporter {
	return &LineReporter{W: w}
}

func (lr *LineReporter) Report(path []string) {
	if lr.Err != nil {
		return
	}
	if _, err := io.WriteString(lr.W, strings.Join(path, " ")+"\n"); err != nil {
		lr.Err = err
		return
	}
	lr.Lines++
}

// Collector keeps every reported path in order.
type Collector struct {
	Paths [][]string
}

func (c *Collector) Report(path []string) {
	c.Paths = append(c.Paths, path)
}

// Lines returns the collected paths formatted the way LineReporter prints them.
func (c *Collector) Lines() []string {
	lines := make([]string, 0, len(c.Paths))
	for _, p := range c.Paths {
		lines = append(lines, strings.Join(p, " "))
	}
	return lines
}

// multiReporter fans a path out to several reporters.
type multiReporter []Reporter

func (m multiReporter) Report(path []string) {
	for _, r := range m {
		r.Report(path)
	}
}

// MultiReporter returns a Reporter that forwards to each of reporters in turn.
func MultiReporter(reporters ...Reporter) Reporter {
	return multiReporter(reporters)
}
