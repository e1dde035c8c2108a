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
	"bufio"
	"io"
	"strings"

	"github.com/cybrota/mountainhike/mountain"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

var (
	// errBlankLine marks a trail line with no tokens.
	errBlankLine = errors.New("blank line")
	// errMalformedLine marks a quoted line that does not tokenize in full.
	errMalformedLine = errors.New("malformed line")
)

// TrailLine is one parsed line of a trail file.
type TrailLine struct {
	Number int
	Record *mountain.Record
	Err    error
}

// parseTrailLine turns a line such as
//
//	camp food food axe fallen tree river
//
// into a rest stop. The first token is the label. Supplies (food, raft, axe)
// are counted until the first "river" or "fallen tree"; from there on only
// obstacles are counted. Anything else is ignored. Labels may be quoted.
func parseTrailLine(line string) (*mountain.Record, error) {
	tokens, err := splitTrailLine(line)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, errBlankLine
	}

	label := tokens[0]
	var food, raft, axe, fallenTree, river int

	i := 1
supplies:
	for ; i < len(tokens); i++ {
		switch tokens[i] {
		case "food":
			food++
		case "raft":
			raft++
		case "axe":
			axe++
		case "river":
			break supplies
		case "fallen":
			if isFallenTree(tokens, i) {
				break supplies
			}
		}
	}

	for ; i < len(tokens); i++ {
		switch tokens[i] {
		case "river":
			river++
		case "fallen":
			if isFallenTree(tokens, i) {
				fallenTree++
				i++
			}
		}
	}

	return mountain.NewRecord(label, food, raft, axe, fallenTree, river)
}

// splitTrailLine splits on whitespace, so labels keep shell characters such
// as semicolons, apostrophes and backslashes. Lines holding a double quote go
// through shellwords to allow labels with spaces, and must tokenize up to the
// end of the line.
func splitTrailLine(line string) ([]string, error) {
	if !strings.Contains(line, `"`) {
		return strings.Fields(line), nil
	}

	p := shellwords.NewParser()
	tokens, err := p.Parse(line)
	if err != nil {
		return nil, errors.Wrapf(errMalformedLine, "failed to tokenize line: %v", err)
	}
	if p.Position >= 0 {
		return nil, errors.Wrapf(errMalformedLine, "unexpected %q in quoted line", []rune(line)[p.Position])
	}
	return tokens, nil
}

func isFallenTree(tokens []string, i int) bool {
	return i+1 < len(tokens) && tokens[i+1] == "tree"
}

// readTrail parses r line by line and calls fn for every line, including the
// ones that failed to parse. Returning an error from fn stops reading.
func readTrail(r io.Reader, fn func(TrailLine) error) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	number := 0
	for scanner.Scan() {
		number++
		rec, err := parseTrailLine(scanner.Text())
		if err := fn(TrailLine{Number: number, Record: rec, Err: err}); err != nil {
			return err
		}
	}

	return errors.Wrap(scanner.Err(), "failed to read trail")
}
