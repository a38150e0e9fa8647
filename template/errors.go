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

import "fmt"

// TemplateError is returned when a hole's kind does not match the
// position it was substituted into (e.g. a number where a statement is
// required).
type TemplateError struct {
	Message string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template error: %s", e.Message)
}

func errHoleKind(position string, value any) error {
	return &TemplateError{Message: fmt.Sprintf("hole of kind %T is not admissible in %s position", value, position)}
}
