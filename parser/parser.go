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

// Package parser is a thin front-end over a real ECMAScript parser
// (github.com/dop251/goja/parser). It accepts a source string and a mode
// and returns an astforge/ast fragment of the shape that mode implies. It
// is extended, via textual sigil tunneling, to tolerate identifiers
// beginning with the reserved sigil characters "@" and "#" anywhere a
// normal identifier is syntactically valid.
package parser

import (
	"github.com/dop251/goja/file"
	gojaparser "github.com/dop251/goja/parser"

	"github.com/astforge/astforge/ast"
)

// Mode selects which shape of fragment Parse returns.
type Mode int

const (
	// Expression wraps the input as an expression statement and returns
	// its expression child.
	Expression Mode = iota
	// Statements parses the input as a script and returns the resulting
	// *ast.Program, whose Body holds the statement list.
	Statements
	// Property wraps the input inside an object literal and returns the
	// sole property.
	Property
)

// Parse parses src under the given mode, tunneling sigil identifiers
// through the underlying parser and restoring them afterwards. It returns
// a *ParseError if the wrapped input is not syntactically valid.
func Parse(src string, mode Mode) (ast.Node, error) {
	wrapped, unwrap := wrapForMode(src, mode)

	fset := new(file.Set)
	tunneled := tunnelSigils(wrapped)
	program, err := gojaparser.ParseFile(fset, "<template>", tunneled, 0)
	if err != nil {
		return nil, newParseError(err)
	}

	c := &converter{fset: fset}
	root, err := c.program(program)
	if err != nil {
		return nil, err
	}
	return unwrap(root)
}

// wrapForMode produces the source text actually handed to the parser
// (expressions and properties need a syntactic wrapper to parse as a
// standalone script) plus a function that recovers the requested fragment
// from the parsed+converted *ast.Program.
func wrapForMode(src string, mode Mode) (string, func(*ast.Program) (ast.Node, error)) {
	switch mode {
	case Expression:
		return "(" + src + ");", func(p *ast.Program) (ast.Node, error) {
			if len(p.Body) != 1 {
				return nil, &UnsupportedNodeError{GojaType: "expression wrapper produced more than one statement"}
			}
			es, ok := p.Body[0].(*ast.ExpressionStatement)
			if !ok {
				return nil, &UnsupportedNodeError{GojaType: "expression wrapper did not produce an ExpressionStatement"}
			}
			return es.Expression, nil
		}
	case Property:
		return "({" + src + "});", func(p *ast.Program) (ast.Node, error) {
			if len(p.Body) != 1 {
				return nil, &UnsupportedNodeError{GojaType: "property wrapper produced more than one statement"}
			}
			es, ok := p.Body[0].(*ast.ExpressionStatement)
			if !ok {
				return nil, &UnsupportedNodeError{GojaType: "property wrapper did not produce an ExpressionStatement"}
			}
			obj, ok := es.Expression.(*ast.ObjectExpression)
			if !ok || len(obj.Properties) != 1 {
				return nil, &UnsupportedNodeError{GojaType: "property wrapper did not produce a single-property object"}
			}
			return obj.Properties[0], nil
		}
	default: // Statements
		return src, func(p *ast.Program) (ast.Node, error) {
			return p, nil
		}
	}
}
