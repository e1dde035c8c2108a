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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/cybrota/mountainhike/hike"
	"github.com/cybrota/mountainhike/mountain"
	"github.com/pkg/errors"
)

// hikeOptions controls a single hike run.
type hikeOptions struct {
	Start     hike.Traveler
	Copy      bool
	ShowStats bool
	Color     bool
}

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// runHike loads every trail file and prints the complete paths for each one
// to out. Summaries and warnings go to errOut.
func runHike(out, errOut io.Writer, loader *MountainLoader, files []string, opts hikeOptions) error {
	st := newStyles(opts.Color)
	var copied []string

	for _, file := range files {
		tree, loadStats, err := loader.LoadFile(file)
		if err != nil {
			return err
		}

		lines := hike.NewLineReporter(out)
		var rep hike.Reporter = lines
		collector := &hike.Collector{}
		if opts.Copy {
			rep = hike.MultiReporter(lines, collector)
		}

		stats := hike.SearchWithStats(tree, opts.Start, rep)
		if lines.Err != nil {
			return errors.Wrap(lines.Err, "failed to write paths")
		}
		copied = append(copied, collector.Lines()...)

		if opts.ShowStats {
			printSummary(errOut, st, file, tree, opts.Start, loadStats, stats)
		}
	}

	if opts.Copy {
		if len(copied) == 0 {
			fmt.Fprintln(errOut, st.Warning.Render("No paths to copy."))
			return nil
		}
		if err := clipboardWrite(strings.Join(copied, "\n")); err != nil {
			return errors.Wrap(err, "failed to copy paths to clipboard")
		}
		fmt.Fprintf(errOut, "📋 Copied %s to clipboard.\n", st.Success.Render(fmt.Sprintf("%d path(s)", len(copied))))
	}

	return nil
}

func printSummary(w io.Writer, st *Styles, file string, tree *mountain.Tree, start hike.Traveler, load LoadStats, stats hike.Stats) {
	fmt.Fprintln(w, st.Title.Render("⛰  "+file))
	fmt.Fprintf(w, "  %s %s\n", st.Label.Render("pack:"), start)
	fmt.Fprintf(w, "  %s %d rest stops, height %d (%d duplicate, %d malformed lines skipped)\n",
		st.Label.Render("mountain:"), tree.Len(), tree.Height(), load.Duplicates, load.Skipped)
	fmt.Fprintf(w, "  %s %d stops visited, %d blocked, %d starved, %d cliffs\n",
		st.Label.Render("hike:"), stats.Visited, stats.Blocked, stats.Starved, stats.Cliffs)
	fmt.Fprintf(w, "  %s %s\n", st.Label.Render("paths:"), st.Success.Render(fmt.Sprint(stats.Reported)))
}

// runRender prints the shape of a mountain. With check set it also verifies
// the tree invariants.
func runRender(out io.Writer, loader *MountainLoader, file string, check bool, color bool) error {
	tree, _, err := loader.LoadFile(file)
	if err != nil {
		return err
	}

	st := newStyles(color)
	fmt.Fprintln(out, st.Muted.Render(fmt.Sprintf("# %d rest stops, height %d", tree.Len(), tree.Height())))
	fmt.Fprint(out, tree.Render())

	if check {
		if err := tree.Validate(); err != nil {
			return err
		}
		fmt.Fprintln(out, st.Success.Render("✔ balanced and ordered"))
	}
	return nil
}
