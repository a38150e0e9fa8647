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

import "github.com/astforge/astforge/ast"

// locationSetter is implemented by every ast node (via the embedded base
// struct); it lets the template engine clear a node's location metadata
// without depending on the node's concrete type.
type locationSetter interface {
	SetLoc(*ast.Loc)
}

// stripLocations clears Loc on every node of a freshly stitched-and-parsed
// fragment. Those positions point into the throwaway buffer the template
// text was stitched into, not into any source file a caller would
// recognize, so they are discarded before substitution. A hole value that
// carries its own Loc (because it was built by parsing real source
// elsewhere) is spliced in afterwards and keeps it.
func stripLocations(n ast.Node) error {
	return ast.Walk(locStripper{}, n)
}

type locStripper struct{}

func (locStripper) Pre(n ast.Node) error {
	if s, ok := n.(locationSetter); ok {
		s.SetLoc(nil)
	}
	return nil
}

func (locStripper) Post(ast.Node) error { return nil }
