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
	"strconv"

	"github.com/astforge/astforge/ast"
)

// coerceToExpression implements the "expression position" row of §4.2's
// context-typed coercion table: AST nodes are used verbatim, numbers
// become Literals, and (per the hole-value table in §3's "otherwise"
// branch) bare strings become Identifiers, matching how callers actually
// use string holes to splice in a name rather than a string constant; a
// string destined to be a string constant is instead written inside
// quotes in the template text, which routes through
// coerceStringLiteralContent rather than here.
func coerceToExpression(v any, position string) (ast.Expression, error) {
	if v == nil {
		return &ast.Literal{Value: nil, Raw: "null"}, nil
	}
	if node, ok := asNode(v); ok {
		if expr, ok := node.(ast.Expression); ok {
			return expr, nil
		}
		return nil, errHoleKind(position, v)
	}
	if num, raw, ok := asNumber(v); ok {
		return &ast.Literal{Value: num, Raw: raw}, nil
	}
	if s, ok := asString(v); ok {
		return &ast.Identifier{Name: s}, nil
	}
	if b, ok := v.(bool); ok {
		return &ast.Literal{Value: b, Raw: strconv.FormatBool(b)}, nil
	}
	return nil, errHoleKind(position, v)
}

// coerceToIdentifier implements the "identifier position" row: only a
// string or a verbatim *ast.Identifier are admissible.
func coerceToIdentifier(v any, position string) (*ast.Identifier, error) {
	if id, ok := v.(*ast.Identifier); ok {
		return id, nil
	}
	if s, ok := asString(v); ok {
		return &ast.Identifier{Name: s}, nil
	}
	return nil, errHoleKind(position, v)
}

// coerceToPattern admits a verbatim Pattern node or a string (becoming an
// Identifier), for parameter lists and destructuring targets.
func coerceToPattern(v any, position string) (ast.Pattern, error) {
	if node, ok := asNode(v); ok {
		if p, ok := node.(ast.Pattern); ok {
			return p, nil
		}
		return nil, errHoleKind(position, v)
	}
	if s, ok := asString(v); ok {
		return &ast.Identifier{Name: s}, nil
	}
	return nil, errHoleKind(position, v)
}

// coerceToStatement wraps a bare expression-shaped hole value
// (Expression, string, number) into an ExpressionStatement, or passes a
// verbatim Statement through unchanged.
func coerceToStatement(v any, position string) (ast.Statement, error) {
	if node, ok := asNode(v); ok {
		if st, ok := node.(ast.Statement); ok {
			return st, nil
		}
		if expr, ok := node.(ast.Expression); ok {
			return &ast.ExpressionStatement{Expression: expr}, nil
		}
		return nil, errHoleKind(position, v)
	}
	expr, err := coerceToExpression(v, position)
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expression: expr}, nil
}

// coerceToNode admits a verbatim Node of any kind, or the same scalar
// coercions as coerceToExpression, for fields whose static type is the
// generic ast.Node (Property.Value, AssignmentExpression.Left,
// ForStatement.Init, ForInStatement.Left, ForOfStatement.Left) because
// ESTree allows either an Expression or a Pattern there.
func coerceToNode(v any, position string) (ast.Node, error) {
	if node, ok := asNode(v); ok {
		return node, nil
	}
	return coerceToExpression(v, position)
}

// coercePropertyValue admits anything coerceToExpression does, since
// ObjectExpression and ObjectPattern property values share the Property
// node and Identifier nodes already satisfy both Expression and Pattern.
func coercePropertyValue(v any, position string) (ast.Node, error) {
	if node, ok := asNode(v); ok {
		return node, nil
	}
	return coerceToExpression(v, position)
}

// coerceStringLiteralContent implements the "string-literal position"
// row: the hole value replaces the quoted literal's text content.
func coerceStringLiteralContent(v any, position string) (*ast.Literal, error) {
	if s, ok := asString(v); ok {
		return &ast.Literal{Value: s, Raw: quoteString(s)}, nil
	}
	if num, raw, ok := asNumber(v); ok {
		return &ast.Literal{Value: num, Raw: raw}, nil
	}
	return nil, errHoleKind(position, v)
}

func quoteString(s string) string {
	return "'" + escapeSingleQuoted(s) + "'"
}

func escapeSingleQuoted(s string) string {
	out := make([]byte, 0, len(s)+2)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\'':
			out = append(out, '\\', '\'')
		case '\\':
			out = append(out, '\\', '\\')
		case '\n':
			out = append(out, '\\', 'n')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
