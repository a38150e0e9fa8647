//  Copyright (c) 2023 Uber Technologies, Inc.
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

package printer

import (
	"strings"

	"github.com/astforge/astforge/internal/vlq"
)

// segment is one mapping entry: generated column, source index, original
// line/column, and (for renamed identifiers) an index into the names
// table. fields mirrors the 1/4/5-integer-field shapes Source Map
// Revision 3 allows.
type segment struct {
	generatedColumn int
	hasSource       bool
	sourceIndex     int
	originalLine    int
	originalColumn  int
	hasName         bool
	nameIndex       int
}

// sourceMapState is the printer's local, non-shared mapping emitter: the
// current generated position, one segment list per generated line, and a
// deduped names table. It never leaks out of a single Print call.
type sourceMapState struct {
	line int
	col  int

	lines [][]segment

	names     []string
	nameIndex map[string]int

	source        string
	hasSource     bool
	sourceContent string
}

func newSourceMapState(source string, hasSource bool, content string) *sourceMapState {
	return &sourceMapState{
		lines:         [][]segment{{}},
		nameIndex:     make(map[string]int),
		source:        source,
		hasSource:     hasSource,
		sourceContent: content,
	}
}

func (s *sourceMapState) advance(text string) {
	for _, r := range text {
		if r == '\n' {
			s.line++
			s.col = 0
			s.lines = append(s.lines, []segment{})
			continue
		}
		s.col++
	}
}

// mark pushes a mapping at the current generated position for a node
// whose original position is (origLine, origCol) (0-based). name is the
// original identifier text when getName has mangled it, or "" otherwise.
func (s *sourceMapState) mark(origLine, origCol int, name string) {
	seg := segment{
		generatedColumn: s.col,
		hasSource:       true,
		sourceIndex:     0,
		originalLine:    origLine,
		originalColumn:  origCol,
	}
	if name != "" {
		seg.hasName = true
		seg.nameIndex = s.internName(name)
	}

	line := s.lines[s.line]
	if len(line) > 0 {
		prev := line[len(line)-1]
		if !seg.hasName && prev.hasSource == seg.hasSource &&
			prev.originalLine == seg.originalLine &&
			prev.originalColumn == seg.originalColumn && !prev.hasName {
			return
		}
	}
	s.lines[s.line] = append(line, seg)
}

func (s *sourceMapState) internName(name string) int {
	if i, ok := s.nameIndex[name]; ok {
		return i
	}
	i := len(s.names)
	s.names = append(s.names, name)
	s.nameIndex[name] = i
	return i
}

// encodeMappings renders the VLQ-encoded "mappings" string, with each
// segment's fields relative to the previous segment's, per the Source
// Map Revision 3 spec.
func (s *sourceMapState) encodeMappings() string {
	var b strings.Builder
	prevGeneratedColumn, prevSourceIndex, prevOriginalLine, prevOriginalColumn, prevNameIndex := 0, 0, 0, 0, 0

	for li, line := range s.lines {
		if li > 0 {
			b.WriteByte(';')
		}
		prevGeneratedColumn = 0
		for si, seg := range line {
			if si > 0 {
				b.WriteByte(',')
			}
			fields := []int{seg.generatedColumn - prevGeneratedColumn}
			prevGeneratedColumn = seg.generatedColumn
			if seg.hasSource {
				fields = append(fields,
					seg.sourceIndex-prevSourceIndex,
					seg.originalLine-prevOriginalLine,
					seg.originalColumn-prevOriginalColumn,
				)
				prevSourceIndex, prevOriginalLine, prevOriginalColumn = seg.sourceIndex, seg.originalLine, seg.originalColumn
				if seg.hasName {
					fields = append(fields, seg.nameIndex-prevNameIndex)
					prevNameIndex = seg.nameIndex
				}
			}
			buf := vlq.Encode(nil, fields...)
			b.Write(buf)
		}
	}
	return b.String()
}

// decodedMappings renders the un-encoded mapping array form used when
// sourceMapEncodeMappings is false: one entry per generated line, each
// holding that line's segments as 1/4/5-integer-field arrays (absolute
// values, not the deltas the VLQ encoding uses).
func (s *sourceMapState) decodedMappings() [][][]int {
	out := make([][][]int, len(s.lines))
	for li, line := range s.lines {
		segs := make([][]int, 0, len(line))
		for _, seg := range line {
			fields := []int{seg.generatedColumn}
			if seg.hasSource {
				fields = append(fields, seg.sourceIndex, seg.originalLine, seg.originalColumn)
				if seg.hasName {
					fields = append(fields, seg.nameIndex)
				}
			}
			segs = append(segs, fields)
		}
		out[li] = segs
	}
	return out
}
