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

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astforge/astforge/ast"
)

func TestParseExpressionBinary(t *testing.T) {
	node, err := Parse("a + b", Expression)
	require.NoError(t, err)

	bin, ok := node.(*ast.BinaryExpression)
	require.True(t, ok, "expected *ast.BinaryExpression, got %T", node)
	require.Equal(t, "+", bin.Operator)

	left, ok := bin.Left.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "a", left.Name)
}

func TestParseAcceptsSigilIdentifiers(t *testing.T) {
	node, err := Parse("@bar", Expression)
	require.NoError(t, err)

	id, ok := node.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "@bar", id.Name)
}

func TestParseStatementsReturnsBody(t *testing.T) {
	node, err := Parse("a++; b++;", Statements)
	require.NoError(t, err)

	program, ok := node.(*ast.Program)
	require.True(t, ok)
	require.Len(t, program.Body, 2)
}

func TestParsePropertyReturnsSoleProperty(t *testing.T) {
	node, err := Parse("a: 1", Property)
	require.NoError(t, err)

	_, ok := node.(*ast.Property)
	require.True(t, ok, "expected *ast.Property, got %T", node)
}

func TestParseSyntaxErrorSurfacesUpstreamMessage(t *testing.T) {
	_, err := Parse("this is broken", Expression)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseTemplateLiteral(t *testing.T) {
	node, err := Parse("`hello ${name}!`", Expression)
	require.NoError(t, err)

	tmpl, ok := node.(*ast.TemplateLiteral)
	require.True(t, ok, "expected *ast.TemplateLiteral, got %T", node)
	require.Len(t, tmpl.Quasis, 2)
	require.Equal(t, "hello ", tmpl.Quasis[0].Cooked)
	require.False(t, tmpl.Quasis[0].Tail)
	require.Equal(t, "!", tmpl.Quasis[1].Cooked)
	require.True(t, tmpl.Quasis[1].Tail)

	require.Len(t, tmpl.Expressions, 1)
	id, ok := tmpl.Expressions[0].(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "name", id.Name)
}

func TestParseArrowFunctionExpressionBody(t *testing.T) {
	node, err := Parse("(a, b) => a + b", Expression)
	require.NoError(t, err)

	fn, ok := node.(*ast.ArrowFunctionExpression)
	require.True(t, ok, "expected *ast.ArrowFunctionExpression, got %T", node)
	require.True(t, fn.ExpressionBody)
	require.Len(t, fn.Params, 2)

	_, ok = fn.Body.(*ast.BinaryExpression)
	require.True(t, ok)
}

func TestParseArrowFunctionBlockBody(t *testing.T) {
	node, err := Parse("x => { return x; }", Expression)
	require.NoError(t, err)

	fn, ok := node.(*ast.ArrowFunctionExpression)
	require.True(t, ok)
	require.False(t, fn.ExpressionBody)
	require.Len(t, fn.Params, 1)

	_, ok = fn.Body.(*ast.BlockStatement)
	require.True(t, ok)
}

func TestParseFunctionRestParameter(t *testing.T) {
	fnNode, err := Parse("function f(a, ...rest) {}", Statements)
	require.NoError(t, err)
	program, ok := fnNode.(*ast.Program)
	require.True(t, ok)
	require.Len(t, program.Body, 1)

	decl, ok := program.Body[0].(*ast.FunctionDeclaration)
	require.True(t, ok)
	require.Len(t, decl.Params, 2)

	rest, ok := decl.Params[1].(*ast.RestElement)
	require.True(t, ok, "expected *ast.RestElement, got %T", decl.Params[1])
	id, ok := rest.Argument.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "rest", id.Name)
}
