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

package template

import (
	"fmt"
	"strconv"
	"strings"
)

// marker is the "%h" token a template author writes at every hole site.
const marker = "%h"

const placeholderPrefix = "__h"

func placeholderName(i int) string {
	return fmt.Sprintf("%s%d", placeholderPrefix, i)
}

// placeholderIndex reports whether name is a hole placeholder produced by
// placeholderName, and if so which hole it stands for.
func placeholderIndex(name string) (int, bool) {
	if !strings.HasPrefix(name, placeholderPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(name[len(placeholderPrefix):])
	if err != nil {
		return 0, false
	}
	return n, true
}

// stitch splits tmpl on every "%h" marker and rejoins it with a
// placeholder identifier standing in for each hole, so the result is
// ordinary, parseable source text. It fails if the number of markers does
// not match the number of holes supplied.
func stitch(tmpl string, holeCount int) (string, error) {
	chunks := strings.Split(tmpl, marker)
	if len(chunks)-1 != holeCount {
		return "", &TemplateError{Message: fmt.Sprintf("template has %d %q markers but %d holes were given", len(chunks)-1, marker, holeCount)}
	}
	var b strings.Builder
	for i, chunk := range chunks {
		b.WriteString(chunk)
		if i < len(chunks)-1 {
			b.WriteString(placeholderName(i))
		}
	}
	return b.String(), nil
}
