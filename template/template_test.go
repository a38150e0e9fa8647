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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astforge/astforge/ast"
)

func TestXBinaryExpressionWithIdentifierHoles(t *testing.T) {
	left, err := X("%h", "a")
	require.NoError(t, err)
	right, err := X("%h", "b")
	require.NoError(t, err)

	expr, err := X("%h + %h", left, right)
	require.NoError(t, err)

	bin, ok := expr.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "+", bin.Operator)

	leftID, ok := bin.Left.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "a", leftID.Name)
}

func TestBAssignmentStatement(t *testing.T) {
	value, err := X("%h", 42)
	require.NoError(t, err)

	stmts, err := B("%h = %h;", "x", value)
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	es, ok := stmts[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	assign, ok := es.Expression.(*ast.AssignmentExpression)
	require.True(t, ok)
	require.Equal(t, "=", assign.Operator)

	lit, ok := assign.Right.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, int64(42), asInt64(t, lit.Value))
}

func TestBFalsyHoleElidesStatement(t *testing.T) {
	stmts, err := B("foo(); %h; bar();", false)
	require.NoError(t, err)
	require.Len(t, stmts, 2)
}

func TestBNilHoleElidesStatement(t *testing.T) {
	stmts, err := B("foo(); %h;", nil)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
}

func TestXArrayHoleFlattensIdentifiers(t *testing.T) {
	a, _ := X("%h", "a")
	b, _ := X("%h", "b")
	c, _ := X("%h", "c")

	expr, err := X("[%h]", []ast.Expression{a, b, c})
	require.NoError(t, err)

	arr, ok := expr.(*ast.ArrayExpression)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
}

func TestPPropertyFlattensIntoObject(t *testing.T) {
	prop, err := P("bar: %h", 1)
	require.NoError(t, err)

	obj, err := X("{ foo: 1, %h }", prop)
	require.NoError(t, err)

	o, ok := obj.(*ast.ObjectExpression)
	require.True(t, ok)
	require.Len(t, o.Properties, 2)
	require.Equal(t, "bar", keyName(t, o.Properties[1]))
}

func TestPFalsyHoleRemovesProperty(t *testing.T) {
	obj, err := X("{ foo: 1, %h }", nil)
	require.NoError(t, err)

	o, ok := obj.(*ast.ObjectExpression)
	require.True(t, ok)
	require.Len(t, o.Properties, 1)
}

func TestXFalsyKeyedPropertyValueRemovesWholeProperty(t *testing.T) {
	obj, err := X("{ a: %h, b: %h }", 1, false)
	require.NoError(t, err)

	o, ok := obj.(*ast.ObjectExpression)
	require.True(t, ok)
	require.Len(t, o.Properties, 1)
	require.Equal(t, "a", keyName(t, o.Properties[0]))
}

func TestBStatementHoleUsedVerbatim(t *testing.T) {
	inner, err := B("foo();")
	require.NoError(t, err)
	require.Len(t, inner, 1)

	stmts, err := B("%h", inner[0])
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	_, ok := stmts[0].(*ast.ExpressionStatement)
	require.True(t, ok)
}

func asInt64(t *testing.T, v any) int64 {
	t.Helper()
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	}
	t.Fatalf("not an integer: %#v", v)
	return 0
}

func keyName(t *testing.T, p *ast.Property) string {
	t.Helper()
	id, ok := p.Key.(*ast.Identifier)
	require.True(t, ok)
	return id.Name
}
