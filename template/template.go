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

// Package template builds astforge/ast fragments from source-text
// templates with "%h" holes, playing the role the original system filled
// with JavaScript tagged template literals. A template is parsed once
// through the real ECMAScript grammar (package parser), then every hole
// site in the resulting tree is substituted for the corresponding Go
// value, coerced and spliced according to the position that hole occupied
// in the template text.
package template

import (
	"github.com/astforge/astforge/ast"
	"github.com/astforge/astforge/parser"
)

// render stitches tmpl's "%h" markers into placeholder identifiers,
// parses the result under mode, and substitutes every placeholder with
// its corresponding hole value.
func render(tmpl string, mode parser.Mode, holes []any) (ast.Node, error) {
	src, err := stitch(tmpl, len(holes))
	if err != nil {
		return nil, err
	}
	node, err := parser.Parse(src, mode)
	if err != nil {
		return nil, err
	}
	if err := stripLocations(node); err != nil {
		return nil, err
	}

	r := &resolver{holes: holes}
	switch mode {
	case parser.Expression:
		return r.resolveTopExpression(node)
	case parser.Property:
		return r.resolveTopProperty(node.(*ast.Property))
	default:
		if err := r.walkInto(node); err != nil {
			return nil, err
		}
		return node, nil
	}
}

// resolveTopExpression handles the case where the entire template is a
// single hole ("%h"), which resolveExpr would otherwise only catch when
// reached through a parent node's field.
func (r *resolver) resolveTopExpression(node ast.Node) (ast.Node, error) {
	if i, ok := identifierPlaceholder(node); ok {
		return coerceToExpression(r.hole(i), "expression")
	}
	if i, ok := stringLiteralPlaceholder(node); ok {
		return coerceStringLiteralContent(r.hole(i), "string literal")
	}
	if err := r.walkInto(node); err != nil {
		return nil, err
	}
	return node, nil
}

// resolveTopProperty handles the case where the entire template is a
// single shorthand hole property ("%h"), the splice form used to build a
// standalone fragment with the P entry point.
func (r *resolver) resolveTopProperty(prop *ast.Property) (ast.Node, error) {
	if prop.Shorthand {
		if i, ok := identifierPlaceholder(prop.Key); ok {
			return coerceToProperty(r.hole(i))
		}
	}
	return r.resolveProperty(prop)
}
