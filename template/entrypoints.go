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
	"github.com/astforge/astforge/ast"
	"github.com/astforge/astforge/parser"
)

// B builds a statement list from a template. Each "%h" marker in tmpl is
// filled, in order, from holes: a falsy hole (false, nil, or a nil
// pointer/slice) elides the statement entirely; a slice hole splices in
// one statement per element; any other value is wrapped in an
// ExpressionStatement unless it is already an ast.Statement.
func B(tmpl string, holes ...any) ([]ast.Statement, error) {
	node, err := render(tmpl, parser.Statements, holes)
	if err != nil {
		return nil, err
	}
	return node.(*ast.Program).Body, nil
}

// X builds a single expression from a template.
func X(tmpl string, holes ...any) (ast.Expression, error) {
	node, err := render(tmpl, parser.Expression, holes)
	if err != nil {
		return nil, err
	}
	return node.(ast.Expression), nil
}

// P builds a single object-literal property from a template, for
// splicing into a surrounding object built by X or B via a shorthand hole
// property ("%h").
func P(tmpl string, holes ...any) (*ast.Property, error) {
	node, err := render(tmpl, parser.Property, holes)
	if err != nil {
		return nil, err
	}
	return node.(*ast.Property), nil
}
