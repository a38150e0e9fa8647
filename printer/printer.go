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

// Package printer walks an astforge/ast fragment and emits its canonical
// JavaScript surface syntax, building a Source Map Revision 3 document in
// the same pass.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/astforge/astforge/ast"
)

// Options configures Print.
type Options struct {
	// SourceMapSource is recorded as sources[0] in the emitted map. A
	// zero value omits sources entirely.
	SourceMapSource string
	// SourceMapContent, if non-empty, is recorded verbatim as
	// sourcesContent[0].
	SourceMapContent string
	// SourceMapEncodeMappings selects VLQ-encoded mappings (true, the
	// encoding Source Map Revision 3 uses) or structured decoded mappings
	// (false). The zero value is false, so an Options{} yields decoded
	// mappings.
	SourceMapEncodeMappings bool
	// GetName mangles an Identifier's binding-position name before
	// emission. Defaults to the identity function.
	GetName func(name string) string
}

// SourceMap is a Source Map Revision 3 document. Mappings holds the
// VLQ-encoded string when Options.SourceMapEncodeMappings is true, or is
// empty and DecodedMappings is populated otherwise.
type SourceMap struct {
	Version         int      `json:"version"`
	Sources         []string `json:"sources,omitempty"`
	SourcesContent  []string `json:"sourcesContent,omitempty"`
	Names           []string `json:"names"`
	Mappings        string   `json:"mappings,omitempty"`
	DecodedMappings [][][]int `json:"decodedMappings,omitempty"`
}

type printer struct {
	opts Options
	buf  strings.Builder
	sm   *sourceMapState
	tab  int
}

// Print renders node's canonical JavaScript text and a source map tying
// every located node back to its original position.
func Print(node ast.Node, opts Options) (string, SourceMap, error) {
	if opts.GetName == nil {
		opts.GetName = func(name string) string { return name }
	}
	p := &printer{
		opts: opts,
		sm:   newSourceMapState(opts.SourceMapSource, opts.SourceMapSource != "", opts.SourceMapContent),
	}
	if err := p.printNode(node); err != nil {
		return "", SourceMap{}, err
	}

	sm := SourceMap{Version: 3, Names: p.sm.names}
	if opts.SourceMapSource != "" {
		sm.Sources = []string{opts.SourceMapSource}
		if opts.SourceMapContent != "" {
			sm.SourcesContent = []string{opts.SourceMapContent}
		}
	}
	if opts.SourceMapEncodeMappings {
		sm.Mappings = p.sm.encodeMappings()
	} else {
		sm.DecodedMappings = p.sm.decodedMappings()
	}
	return p.buf.String(), sm, nil
}

// PrintProgram is a convenience wrapper for the common case of printing a
// whole statement list (e.g. the result of B) as one program.
func PrintProgram(stmts []ast.Statement, opts Options) (string, SourceMap, error) {
	return Print(&ast.Program{Body: stmts}, opts)
}

func (p *printer) write(s string) {
	p.buf.WriteString(s)
	p.sm.advance(s)
}

func (p *printer) writeIndent() {
	if p.tab > 0 {
		p.write(strings.Repeat("\t", p.tab))
	}
}

// recordLoc pushes a mapping for n if it carries original location
// metadata, per §4.4's "on entering any node whose loc.start is defined"
// rule. name is the pre-mangling identifier text, used only when it
// differs from what was actually emitted.
func (p *printer) recordLoc(n ast.Node, name string) {
	loc := n.Location()
	if loc == nil || loc.Start == nil {
		return
	}
	p.sm.mark(loc.Start.Line-1, loc.Start.Column, name)
}

// recordLocEnd pushes a trailing mapping at n's loc.end, once its text has
// been fully written, so a source-map consumer can resolve the generated
// range of n and not just its starting point.
func (p *printer) recordLocEnd(n ast.Node) {
	loc := n.Location()
	if loc == nil || loc.End == nil {
		return
	}
	p.sm.mark(loc.End.Line-1, loc.End.Column, "")
}

func (p *printer) printComments(n ast.Node) {
	leading, _ := n.Comments()
	for _, c := range leading {
		if c.Block {
			p.writeIndent()
			p.write("/*" + c.Text + "*/\n")
		} else {
			p.writeIndent()
			p.write("//" + c.Text + "\n")
		}
	}
}

func (p *printer) printTrailingComments(n ast.Node) {
	_, trailing := n.Comments()
	for _, c := range trailing {
		if c.Block {
			p.write(" /*" + c.Text + "*/")
		} else {
			p.write(" //" + c.Text)
		}
	}
}

// ---- statements ----

func (p *printer) printNode(n ast.Node) error {
	switch v := n.(type) {
	case *ast.Program:
		return p.printStatements(v.Body)
	case ast.Statement:
		return p.printStatement(v)
	case ast.Expression:
		return p.printExpr(v, precSequence)
	case *ast.Property:
		return p.printProperty(v)
	default:
		return &UnhandledTypeError{Type: fmt.Sprintf("%T", n)}
	}
}

func (p *printer) printStatements(stmts []ast.Statement) error {
	for i, s := range stmts {
		if i > 0 {
			p.write("\n")
		}
		if err := p.printStatement(s); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) printStatement(s ast.Statement) error {
	p.printComments(s)
	// A statement that follows a keyword or ")" on the same line (an if/loop
	// body, an else branch) continues that line and takes no indent of its own.
	if p.sm.col == 0 {
		p.writeIndent()
	}
	p.recordLoc(s, "")

	switch n := s.(type) {
	case *ast.ExpressionStatement:
		if err := p.printExpr(n.Expression, precSequence); err != nil {
			return err
		}
		p.write(";")

	case *ast.BlockStatement:
		if err := p.printBlock(n); err != nil {
			return err
		}

	case *ast.EmptyStatement:
		p.write(";")

	case *ast.VariableDeclaration:
		if err := p.printVariableDeclaration(n); err != nil {
			return err
		}
		p.write(";")

	case *ast.FunctionDeclaration:
		if err := p.printFunction("function", n.Id, n.Params, n.Body, n.Generator, n.Async); err != nil {
			return err
		}

	case *ast.ReturnStatement:
		p.write("return")
		if n.Argument != nil {
			p.write(" ")
			if err := p.printExpr(n.Argument, precSequence); err != nil {
				return err
			}
		}
		p.write(";")

	case *ast.IfStatement:
		if err := p.printIf(n); err != nil {
			return err
		}

	case *ast.ForStatement:
		if err := p.printFor(n); err != nil {
			return err
		}

	case *ast.ForInStatement:
		if err := p.printForInOf(n.Left, "in", n.Right, n.Body); err != nil {
			return err
		}

	case *ast.ForOfStatement:
		kw := "of"
		if n.Await {
			kw = "await of"
		}
		if err := p.printForInOf(n.Left, kw, n.Right, n.Body); err != nil {
			return err
		}

	case *ast.WhileStatement:
		p.write("while (")
		if err := p.printExpr(n.Test, precSequence); err != nil {
			return err
		}
		p.write(") ")
		if err := p.printStatement(n.Body); err != nil {
			return err
		}

	case *ast.DoWhileStatement:
		p.write("do ")
		if err := p.printStatement(n.Body); err != nil {
			return err
		}
		p.write(" while (")
		if err := p.printExpr(n.Test, precSequence); err != nil {
			return err
		}
		p.write(");")

	case *ast.BreakStatement:
		p.write("break")
		if n.Label != nil {
			p.write(" ")
			if err := p.printIdentifier(n.Label); err != nil {
				return err
			}
		}
		p.write(";")

	case *ast.ContinueStatement:
		p.write("continue")
		if n.Label != nil {
			p.write(" ")
			if err := p.printIdentifier(n.Label); err != nil {
				return err
			}
		}
		p.write(";")

	case *ast.ThrowStatement:
		p.write("throw ")
		if err := p.printExpr(n.Argument, precSequence); err != nil {
			return err
		}
		p.write(";")

	case *ast.TryStatement:
		if err := p.printTry(n); err != nil {
			return err
		}

	case *ast.LabeledStatement:
		if err := p.printIdentifier(n.Label); err != nil {
			return err
		}
		p.write(": ")
		if err := p.printStatement(n.Body); err != nil {
			return err
		}

	case *ast.SwitchStatement:
		if err := p.printSwitch(n); err != nil {
			return err
		}

	default:
		return &UnhandledTypeError{Type: fmt.Sprintf("%T", s)}
	}

	p.recordLocEnd(s)
	p.printTrailingComments(s)
	return nil
}

func (p *printer) printBlock(b *ast.BlockStatement) error {
	p.write("{")
	if len(b.Body) == 0 {
		p.write("}")
		return nil
	}
	p.write("\n")
	p.tab++
	for _, s := range b.Body {
		if err := p.printStatement(s); err != nil {
			return err
		}
		p.write("\n")
	}
	p.tab--
	p.writeIndent()
	p.write("}")
	return nil
}

func (p *printer) printVariableDeclaration(n *ast.VariableDeclaration) error {
	p.write(n.Kind)
	p.write(" ")
	for i, d := range n.Declarations {
		if i > 0 {
			p.write(", ")
		}
		if err := p.printPattern(d.Id); err != nil {
			return err
		}
		if d.Init != nil {
			p.write(" = ")
			if err := p.printExpr(d.Init, precAssignment); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *printer) printIf(n *ast.IfStatement) error {
	p.write("if (")
	if err := p.printExpr(n.Test, precSequence); err != nil {
		return err
	}
	p.write(") ")
	if err := p.printStatement(n.Consequent); err != nil {
		return err
	}
	if n.Alternate != nil {
		p.write("\n")
		p.writeIndent()
		p.write("else ")
		if err := p.printStatement(n.Alternate); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) printFor(n *ast.ForStatement) error {
	p.write("for (")
	switch init := n.Init.(type) {
	case nil:
	case *ast.VariableDeclaration:
		if err := p.printVariableDeclaration(init); err != nil {
			return err
		}
	case ast.Expression:
		if err := p.printExpr(init, precSequence); err != nil {
			return err
		}
	}
	p.write("; ")
	if n.Test != nil {
		if err := p.printExpr(n.Test, precSequence); err != nil {
			return err
		}
	}
	p.write("; ")
	if n.Update != nil {
		if err := p.printExpr(n.Update, precSequence); err != nil {
			return err
		}
	}
	p.write(") ")
	return p.printStatement(n.Body)
}

func (p *printer) printForInOf(left ast.Node, kw string, right ast.Expression, body ast.Statement) error {
	p.write("for (")
	switch l := left.(type) {
	case *ast.VariableDeclaration:
		if err := p.printVariableDeclaration(l); err != nil {
			return err
		}
	case ast.Pattern:
		if err := p.printPattern(l); err != nil {
			return err
		}
	}
	p.write(" " + kw + " ")
	if err := p.printExpr(right, precSequence); err != nil {
		return err
	}
	p.write(") ")
	return p.printStatement(body)
}

func (p *printer) printTry(n *ast.TryStatement) error {
	p.write("try ")
	if err := p.printBlock(n.Block); err != nil {
		return err
	}
	if n.Handler != nil {
		p.write(" catch ")
		if n.Handler.Param != nil {
			p.write("(")
			if err := p.printPattern(n.Handler.Param); err != nil {
				return err
			}
			p.write(") ")
		}
		if err := p.printBlock(n.Handler.Body); err != nil {
			return err
		}
	}
	if n.Finalizer != nil {
		p.write(" finally ")
		if err := p.printBlock(n.Finalizer); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) printSwitch(n *ast.SwitchStatement) error {
	p.write("switch (")
	if err := p.printExpr(n.Discriminant, precSequence); err != nil {
		return err
	}
	p.write(") {\n")
	p.tab++
	for _, c := range n.Cases {
		p.writeIndent()
		if c.Test != nil {
			p.write("case ")
			if err := p.printExpr(c.Test, precSequence); err != nil {
				return err
			}
			p.write(":\n")
		} else {
			p.write("default:\n")
		}
		p.tab++
		for _, s := range c.Consequent {
			if err := p.printStatement(s); err != nil {
				return err
			}
			p.write("\n")
		}
		p.tab--
	}
	p.tab--
	p.writeIndent()
	p.write("}")
	return nil
}

func (p *printer) printFunction(kw string, id *ast.Identifier, params []ast.Pattern, body *ast.BlockStatement, generator, async bool) error {
	if async {
		p.write("async ")
	}
	p.write(kw)
	if generator {
		p.write("*")
	}
	if id != nil {
		p.write(" ")
		if err := p.printIdentifier(id); err != nil {
			return err
		}
	} else {
		p.write(" ")
	}
	p.write("(")
	if err := p.printPatternList(params); err != nil {
		return err
	}
	p.write(") ")
	return p.printBlock(body)
}

func (p *printer) printPatternList(params []ast.Pattern) error {
	for i, param := range params {
		if i > 0 {
			p.write(", ")
		}
		if err := p.printPattern(param); err != nil {
			return err
		}
	}
	return nil
}

// ---- patterns ----

func (p *printer) printPattern(pat ast.Pattern) error {
	switch n := pat.(type) {
	case *ast.Identifier:
		return p.printIdentifier(n)
	case *ast.ArrayPattern:
		p.write("[")
		for i, el := range n.Elements {
			if i > 0 {
				p.write(", ")
			}
			if el == nil {
				continue
			}
			if err := p.printPattern(el); err != nil {
				return err
			}
		}
		p.write("]")
		return nil
	case *ast.ObjectPattern:
		p.write("{")
		for i, prop := range n.Properties {
			if i > 0 {
				p.write(", ")
			}
			if err := p.printProperty(prop); err != nil {
				return err
			}
		}
		p.write("}")
		return nil
	case *ast.AssignmentPattern:
		if err := p.printPattern(n.Left); err != nil {
			return err
		}
		p.write(" = ")
		return p.printExpr(n.Right, precAssignment)
	case *ast.RestElement:
		p.write("...")
		return p.printPattern(n.Argument)
	default:
		return &UnhandledTypeError{Type: fmt.Sprintf("%T", pat)}
	}
}

// ---- expressions ----

// printExpr emits e, parenthesizing it when its own precedence is
// strictly lower than minPrec or (for the one operator that matters,
// "**") when it sits on the associativity-wrong side at equal
// precedence.
func (p *printer) printExpr(e ast.Expression, minPrec int) error {
	prec := exprPrecedence(e)
	needsParens := prec < minPrec
	if needsParens {
		p.write("(")
	}
	if err := p.printExprBare(e); err != nil {
		return err
	}
	if needsParens {
		p.write(")")
	}
	return nil
}

func (p *printer) printExprBare(e ast.Expression) error {
	p.printComments(e)
	p.recordLoc(e, "")

	switch n := e.(type) {
	case *ast.Identifier:
		if err := p.printIdentifier(n); err != nil {
			return err
		}

	case *ast.Literal:
		p.write(literalText(n))

	case *ast.ThisExpression:
		p.write("this")

	case *ast.ArrayExpression:
		p.write("[")
		for i, el := range n.Elements {
			if i > 0 {
				p.write(", ")
			}
			if el == nil {
				continue
			}
			if err := p.printExpr(el, precAssignment); err != nil {
				return err
			}
		}
		p.write("]")

	case *ast.ObjectExpression:
		p.write("{")
		for i, prop := range n.Properties {
			if i > 0 {
				p.write(", ")
			}
			if err := p.printProperty(prop); err != nil {
				return err
			}
		}
		p.write("}")

	case *ast.FunctionExpression:
		if err := p.printFunction("function", n.Id, n.Params, n.Body, n.Generator, n.Async); err != nil {
			return err
		}

	case *ast.ArrowFunctionExpression:
		if err := p.printArrow(n); err != nil {
			return err
		}

	case *ast.UnaryExpression:
		if err := p.printUnary(n); err != nil {
			return err
		}

	case *ast.UpdateExpression:
		if err := p.printUpdate(n); err != nil {
			return err
		}

	case *ast.BinaryExpression:
		if err := p.printBinary(n.Operator, n.Left, n.Right); err != nil {
			return err
		}

	case *ast.LogicalExpression:
		if err := p.printBinary(n.Operator, n.Left, n.Right); err != nil {
			return err
		}

	case *ast.AssignmentExpression:
		if err := p.printNodeAsExpr(n.Left, precCallNew); err != nil {
			return err
		}
		p.write(" " + n.Operator + " ")
		if err := p.printExpr(n.Right, precAssignment); err != nil {
			return err
		}

	case *ast.ConditionalExpression:
		if err := p.printExpr(n.Test, precNullish); err != nil {
			return err
		}
		p.write(" ? ")
		if err := p.printExpr(n.Consequent, precAssignment); err != nil {
			return err
		}
		p.write(" : ")
		if err := p.printExpr(n.Alternate, precAssignment); err != nil {
			return err
		}

	case *ast.CallExpression:
		if err := p.printExpr(n.Callee, precCallNew); err != nil {
			return err
		}
		p.write("(")
		if err := p.printArguments(n.Arguments); err != nil {
			return err
		}
		p.write(")")

	case *ast.NewExpression:
		p.write("new ")
		if err := p.printExpr(n.Callee, precMember); err != nil {
			return err
		}
		p.write("(")
		if err := p.printArguments(n.Arguments); err != nil {
			return err
		}
		p.write(")")

	case *ast.MemberExpression:
		if err := p.printExpr(n.Object, precMember); err != nil {
			return err
		}
		if n.Computed {
			p.write("[")
			if err := p.printExpr(n.Property, precSequence); err != nil {
				return err
			}
			p.write("]")
		} else {
			p.write(".")
			id, ok := n.Property.(*ast.Identifier)
			if !ok {
				return &UnhandledTypeError{Type: fmt.Sprintf("%T", n.Property)}
			}
			if err := p.printPropertyName(id); err != nil {
				return err
			}
		}

	case *ast.SequenceExpression:
		for i, expr := range n.Expressions {
			if i > 0 {
				p.write(", ")
			}
			if err := p.printExpr(expr, precAssignment); err != nil {
				return err
			}
		}

	case *ast.SpreadElement:
		p.write("...")
		if err := p.printExpr(n.Argument, precAssignment); err != nil {
			return err
		}

	case *ast.TemplateLiteral:
		if err := p.printTemplateLiteral(n); err != nil {
			return err
		}

	default:
		return &UnhandledTypeError{Type: fmt.Sprintf("%T", e)}
	}

	p.recordLocEnd(e)
	p.printTrailingComments(e)
	return nil
}

// printNodeAsExpr prints an assignment-target Node (Expression or
// Pattern, per ESTree's destructuring-assignment allowance) at minPrec.
func (p *printer) printNodeAsExpr(n ast.Node, minPrec int) error {
	if expr, ok := n.(ast.Expression); ok {
		return p.printExpr(expr, minPrec)
	}
	if pat, ok := n.(ast.Pattern); ok {
		return p.printPattern(pat)
	}
	return &UnhandledTypeError{Type: fmt.Sprintf("%T", n)}
}

func (p *printer) printArguments(args []ast.Expression) error {
	for i, a := range args {
		if i > 0 {
			p.write(", ")
		}
		if err := p.printExpr(a, precAssignment); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) printUnary(n *ast.UnaryExpression) error {
	p.write(n.Operator)
	if isWordOperator(n.Operator) {
		p.write(" ")
	}
	return p.printExpr(n.Argument, precUnary)
}

func isWordOperator(op string) bool {
	switch op {
	case "typeof", "void", "delete":
		return true
	}
	return false
}

func (p *printer) printUpdate(n *ast.UpdateExpression) error {
	if n.Prefix {
		p.write(n.Operator)
		return p.printExpr(n.Argument, precUnary)
	}
	if err := p.printExpr(n.Argument, precPostfix); err != nil {
		return err
	}
	p.write(n.Operator)
	return nil
}

func (p *printer) printBinary(op string, left, right ast.Expression) error {
	prec := operatorPrecedence(op)
	rightAssoc := isRightAssociative(op)

	leftMin, rightMin := prec, prec+1
	if rightAssoc {
		leftMin, rightMin = prec+1, prec
	}
	if err := p.printExpr(left, leftMin); err != nil {
		return err
	}
	p.write(" " + op + " ")
	return p.printExpr(right, rightMin)
}

func operatorPrecedence(op string) int {
	if prec, ok := logicalOperatorPrecedence[op]; ok {
		return prec
	}
	return binaryOperatorPrecedence[op]
}

func (p *printer) printArrow(n *ast.ArrowFunctionExpression) error {
	if n.Async {
		p.write("async ")
	}
	p.write("(")
	if err := p.printPatternList(n.Params); err != nil {
		return err
	}
	p.write(") => ")
	if n.ExpressionBody {
		body, ok := n.Body.(ast.Expression)
		if !ok {
			return &UnhandledTypeError{Type: fmt.Sprintf("%T", n.Body)}
		}
		return p.printExpr(body, precAssignment)
	}
	block, ok := n.Body.(*ast.BlockStatement)
	if !ok {
		return &UnhandledTypeError{Type: fmt.Sprintf("%T", n.Body)}
	}
	return p.printBlock(block)
}

func (p *printer) printTemplateLiteral(n *ast.TemplateLiteral) error {
	p.write("`")
	for i, q := range n.Quasis {
		p.write(escapeTemplateText(q.Raw))
		if i < len(n.Expressions) {
			p.write("${")
			if err := p.printExpr(n.Expressions[i], precSequence); err != nil {
				return err
			}
			p.write("}")
		}
	}
	p.write("`")
	return nil
}

func escapeTemplateText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "`", "\\`")
	s = strings.ReplaceAll(s, "${", "\\${")
	return s
}

// ---- properties ----

func (p *printer) printProperty(prop *ast.Property) error {
	if prop.Shorthand {
		id, ok := prop.Key.(*ast.Identifier)
		if !ok {
			return &UnhandledTypeError{Type: fmt.Sprintf("%T", prop.Key)}
		}
		// the key keeps its original name; when getName renames the
		// binding, the property is written out as `key: binding`.
		if p.opts.GetName(id.Name) != id.Name {
			if err := p.printPropertyName(id); err != nil {
				return err
			}
			p.write(": ")
			return p.printNodeAsExpr(prop.Value, precAssignment)
		}
		if err := p.printIdentifier(id); err != nil {
			return err
		}
		// shorthand destructuring with a default, `{ a = 1 }`, still
		// carries the default on Value even though Key/Value name the
		// same binding.
		if def, ok := prop.Value.(*ast.AssignmentPattern); ok {
			p.write(" = ")
			return p.printExpr(def.Right, precAssignment)
		}
		return nil
	}

	switch prop.Kind {
	case "get", "set":
		p.write(prop.Kind + " ")
	}

	if prop.Computed {
		p.write("[")
		if err := p.printExpr(prop.Key, precAssignment); err != nil {
			return err
		}
		p.write("]")
	} else if err := p.printPropertyKey(prop.Key); err != nil {
		return err
	}

	if prop.Method || prop.Kind == "get" || prop.Kind == "set" {
		fn, ok := prop.Value.(*ast.FunctionExpression)
		if !ok {
			return &UnhandledTypeError{Type: fmt.Sprintf("%T", prop.Value)}
		}
		p.write("(")
		if err := p.printPatternList(fn.Params); err != nil {
			return err
		}
		p.write(") ")
		return p.printBlock(fn.Body)
	}

	p.write(": ")
	return p.printNodeAsExpr(prop.Value, precAssignment)
}

func (p *printer) printPropertyKey(key ast.Expression) error {
	switch k := key.(type) {
	case *ast.Identifier:
		return p.printPropertyName(k)
	case *ast.Literal:
		p.write(literalText(k))
		return nil
	default:
		return &UnhandledTypeError{Type: fmt.Sprintf("%T", key)}
	}
}

// printPropertyName emits an Identifier used as an object-literal key or
// non-computed member name: getName is never applied here, per the
// binding-position-only scoping decision.
func (p *printer) printPropertyName(id *ast.Identifier) error {
	if err := rejectSigil(id.Name); err != nil {
		return err
	}
	p.write(id.Name)
	return nil
}

// printIdentifier emits a binding-position Identifier: sigils are
// rejected, getName mangles the text, and the mapping (if any) records
// the original name when mangling changed it.
func (p *printer) printIdentifier(id *ast.Identifier) error {
	if err := rejectSigil(id.Name); err != nil {
		return err
	}
	mangled := p.opts.GetName(id.Name)
	originalForMapping := ""
	if mangled != id.Name {
		originalForMapping = id.Name
	}
	p.recordLoc(id, originalForMapping)
	p.write(mangled)
	return nil
}

func rejectSigil(name string) error {
	if strings.HasPrefix(name, "@") || strings.HasPrefix(name, "#") {
		return &UnhandledSigilError{Name: name}
	}
	return nil
}

func literalText(lit *ast.Literal) string {
	if lit.Raw != "" {
		return lit.Raw
	}
	switch v := lit.Value.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case string:
		return quoteLiteral(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func quoteLiteral(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString("\\'")
		case '\\':
			b.WriteString("\\\\")
		case '\n':
			b.WriteString("\\n")
		case '\r':
			b.WriteString("\\r")
		case '\t':
			b.WriteString("\\t")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
