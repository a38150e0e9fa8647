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

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astforge/astforge/ast"
	"github.com/astforge/astforge/parser"
	"github.com/astforge/astforge/template"
)

func TestPrintBinaryExpressionParenthesizesByPrecedence(t *testing.T) {
	a, err := template.X("%h", "a")
	require.NoError(t, err)
	b, err := template.X("%h", "b")
	require.NoError(t, err)
	c, err := template.X("%h", "c")
	require.NoError(t, err)

	mul, err := template.X("%h * %h", b, c)
	require.NoError(t, err)
	expr, err := template.X("%h + %h", a, mul)
	require.NoError(t, err)

	code, _, err := Print(expr, Options{})
	require.NoError(t, err)
	require.Equal(t, "a + b * c", code)
}

func TestPrintLowerPrecedenceChildIsParenthesized(t *testing.T) {
	a, err := template.X("%h", "a")
	require.NoError(t, err)
	b, err := template.X("%h", "b")
	require.NoError(t, err)
	c, err := template.X("%h", "c")
	require.NoError(t, err)

	sum, err := template.X("%h + %h", a, b)
	require.NoError(t, err)
	expr, err := template.X("%h * %h", sum, c)
	require.NoError(t, err)

	code, _, err := Print(expr, Options{})
	require.NoError(t, err)
	require.Equal(t, "(a + b) * c", code)
}

func TestPrintExponentiationIsRightAssociative(t *testing.T) {
	a, err := template.X("%h", "a")
	require.NoError(t, err)
	b, err := template.X("%h", "b")
	require.NoError(t, err)
	c, err := template.X("%h", "c")
	require.NoError(t, err)

	inner, err := template.X("%h ** %h", b, c)
	require.NoError(t, err)
	expr, err := template.X("%h ** %h", a, inner)
	require.NoError(t, err)

	code, _, err := Print(expr, Options{})
	require.NoError(t, err)
	require.Equal(t, "a ** b ** c", code)

	// left-nested exponentiation must be parenthesized: (a ** b) ** c
	// differs in meaning from a ** (b ** c).
	leftNested, err := template.X("%h ** %h", inner, a)
	require.NoError(t, err)
	code, _, err = Print(leftNested, Options{})
	require.NoError(t, err)
	require.Equal(t, "(b ** c) ** a", code)
}

func TestPrintVariableDeclarationStatement(t *testing.T) {
	value, err := template.X("%h", 42)
	require.NoError(t, err)
	stmts, err := template.B("let %h = %h;", "x", value)
	require.NoError(t, err)

	code, _, err := PrintProgram(stmts, Options{})
	require.NoError(t, err)
	require.Equal(t, "let x = 42;", code)
}

func TestPrintBlockStatementIsTabIndented(t *testing.T) {
	call, err := template.X("foo()")
	require.NoError(t, err)
	stmts, err := template.B("if (%h) { %h; }", "cond", call)
	require.NoError(t, err)

	code, _, err := PrintProgram(stmts, Options{})
	require.NoError(t, err)
	require.Equal(t, "if (cond) {\n\tfoo();\n}", code)
}

func TestPrintFunctionDeclarationNestedBlock(t *testing.T) {
	body, err := template.B("if (%h) { return %h; } return %h;", "x", "x", "y")
	require.NoError(t, err)
	stmts, err := template.B("function f(%h, %h) { %h }", "x", "y", body)
	require.NoError(t, err)

	code, _, err := PrintProgram(stmts, Options{})
	require.NoError(t, err)
	require.Equal(t, "function f(x, y) {\n\tif (x) {\n\t\treturn x;\n\t}\n\treturn y;\n}", code)
}

func TestPrintObjectLiteralWithSplicedProperty(t *testing.T) {
	prop, err := template.P("bar: %h", 1)
	require.NoError(t, err)
	expr, err := template.X("{ foo: 1, %h }", prop)
	require.NoError(t, err)

	code, _, err := Print(expr, Options{})
	require.NoError(t, err)
	require.Equal(t, "{foo: 1, bar: 1}", code)
}

func TestPrintTemplateLiteralReassembly(t *testing.T) {
	name, err := template.X("%h", "name")
	require.NoError(t, err)
	expr, err := template.X("`hello ${%h}`", name)
	require.NoError(t, err)

	code, _, err := Print(expr, Options{})
	require.NoError(t, err)
	require.Equal(t, "`hello ${name}`", code)
}

func TestPrintRejectsSigilIdentifier(t *testing.T) {
	stmts, err := template.B("let foo = @bar;")
	require.NoError(t, err)

	_, _, err = PrintProgram(stmts, Options{})
	require.Error(t, err)

	var sigilErr *UnhandledSigilError
	require.ErrorAs(t, err, &sigilErr)
	require.Equal(t, "@bar", sigilErr.Name)
}

func TestPrintGetNameMangleOnlyAppliesToBindingPositions(t *testing.T) {
	expr, err := template.X("obj.foo")
	require.NoError(t, err)

	mangle := func(name string) string {
		if name == "obj" {
			return "obj$1"
		}
		return name
	}

	code, _, err := Print(expr, Options{GetName: mangle})
	require.NoError(t, err)
	require.Equal(t, "obj$1.foo", code)
}

func TestPrintSourceMapVLQEncoding(t *testing.T) {
	// A node with genuine Loc metadata (as opposed to one produced by a
	// template call, whose own ephemeral fragment locations are always
	// stripped) spliced into console.log(${answer}) reproduces spec §8's
	// scenario exactly: the surrounding call expression is entirely
	// template-synthesized and carries no Loc, so the literal's own
	// start and end positions are the map's only two segments.
	answer := &ast.Literal{Value: float64(42), Raw: "42"}
	answer.SetLoc(&ast.Loc{
		Start: &ast.Position{Line: 10, Column: 5},
		End:   &ast.Position{Line: 10, Column: 7},
	})
	expr, err := template.X("console.log(%h)", answer)
	require.NoError(t, err)

	code, sm, err := Print(expr, Options{
		SourceMapSource:         "input.js",
		SourceMapEncodeMappings: true,
	})
	require.NoError(t, err)
	require.Equal(t, "console.log(42)", code)
	require.Equal(t, 3, sm.Version)
	require.Equal(t, []string{"input.js"}, sm.Sources)
	require.Equal(t, "YASK,EAAE", sm.Mappings)
}

func TestPrintSourceMapDecodedMappingsShape(t *testing.T) {
	parsedNode, err := parser.Parse("42", parser.Expression)
	require.NoError(t, err)
	parsed := parsedNode.(ast.Expression)
	stmts, err := template.B("var %h = %h;", "answer", parsed)
	require.NoError(t, err)

	_, sm, err := PrintProgram(stmts, Options{
		SourceMapSource:         "input.js",
		SourceMapEncodeMappings: false,
	})
	require.NoError(t, err)
	require.Empty(t, sm.Mappings)
	require.NotEmpty(t, sm.DecodedMappings)
	require.Len(t, sm.DecodedMappings[0][0], 4)
}

func TestPrintUnhandledTypeErrorOnNonComputedPropertyKeyLiteral(t *testing.T) {
	// MemberExpression.Property must be an *ast.Identifier in the
	// non-computed form; any other Expression there is an ast shape the
	// printer cannot emit a property name for.
	obj, err := template.X("%h", "obj")
	require.NoError(t, err)
	member := &ast.MemberExpression{
		Object:   obj,
		Property: &ast.Literal{Value: "foo", Raw: "'foo'"},
		Computed: false,
	}

	_, _, err = Print(member, Options{})
	require.Error(t, err)

	var typeErr *UnhandledTypeError
	require.ErrorAs(t, err, &typeErr)
}
