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

import "fmt"

// UnhandledSigilError is returned when print encounters a sigil
// identifier ("@name" or "#name") still present at emission time.
type UnhandledSigilError struct {
	Name string
}

func (e *UnhandledSigilError) Error() string {
	return fmt.Sprintf("Unhandled sigil %s", e.Name)
}

// UnhandledTypeError is returned when print encounters an ast.Node
// variant it does not know how to emit.
type UnhandledTypeError struct {
	Type string
}

func (e *UnhandledTypeError) Error() string {
	return fmt.Sprintf("Unhandled type %s", e.Type)
}
