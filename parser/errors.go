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

package parser

import "fmt"

// ParseError is returned when the wrapped input given to the underlying
// ECMAScript parser is not syntactically valid. It carries the upstream
// parser's message verbatim; hole positions in the original template are
// not exposed.
type ParseError struct {
	// Message is the underlying parser's error message.
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

func newParseError(err error) *ParseError {
	return &ParseError{Message: err.Error()}
}

// UnsupportedNodeError is returned by the goja-to-ast conversion pass when
// it encounters a construct this adapter does not (yet) convert. It is
// distinct from ParseError: the input was syntactically valid ECMAScript,
// but outside the subset this adapter builds fragments from.
type UnsupportedNodeError struct {
	GojaType string
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("parser: unsupported construct %s", e.GojaType)
}
