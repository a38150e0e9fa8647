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
	"fmt"

	gojaast "github.com/dop251/goja/ast"
	"github.com/dop251/goja/file"
	gojatoken "github.com/dop251/goja/token"

	"github.com/astforge/astforge/ast"
)

// converter holds the goja file set used to resolve byte offsets (file.Idx)
// to line/column positions during the conversion pass. It is local to a
// single Parse call, matching the printer's own "no globals" discipline.
type converter struct {
	fset *file.Set
}

func (c *converter) loc(from, to file.Idx) *ast.Loc {
	if c.fset == nil || from == 0 {
		return nil
	}
	start := c.fset.Position(from)
	loc := &ast.Loc{
		Start: &ast.Position{Line: start.Line, Column: start.Column - 1},
		Range: [2]int{int(from) - 1, int(to) - 1},
	}
	if to != 0 {
		end := c.fset.Position(to)
		loc.End = &ast.Position{Line: end.Line, Column: end.Column - 1}
	}
	return loc
}

func unsupported(node gojaast.Node) error {
	return &UnsupportedNodeError{GojaType: fmt.Sprintf("%T", node)}
}

func (c *converter) program(p *gojaast.Program) (*ast.Program, error) {
	body, err := c.statements(p.Body)
	if err != nil {
		return nil, err
	}
	return &ast.Program{Body: body}, nil
}

func (c *converter) statements(in []gojaast.Statement) ([]ast.Statement, error) {
	out := make([]ast.Statement, 0, len(in))
	for _, s := range in {
		cs, err := c.statement(s)
		if err != nil {
			return nil, err
		}
		if cs != nil {
			out = append(out, cs)
		}
	}
	return out, nil
}

func (c *converter) statement(s gojaast.Statement) (ast.Statement, error) {
	switch n := s.(type) {
	case *gojaast.ExpressionStatement:
		expr, err := c.expression(n.Expression)
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Expression: expr}, nil

	case *gojaast.BlockStatement:
		body, err := c.statements(n.List)
		if err != nil {
			return nil, err
		}
		return &ast.BlockStatement{Body: body}, nil

	case *gojaast.EmptyStatement:
		return &ast.EmptyStatement{}, nil

	case *gojaast.VariableStatement:
		return c.variableDeclaration("var", n.List)

	case *gojaast.LexicalDeclaration:
		kind := "let"
		if n.Token == gojatoken.CONST {
			kind = "const"
		}
		return c.variableDeclaration(kind, n.List)

	case *gojaast.FunctionDeclaration:
		fn, err := c.functionLiteral(n.Function)
		if err != nil {
			return nil, err
		}
		return &ast.FunctionDeclaration{Id: fn.Id, Params: fn.Params, Body: fn.Body, Generator: fn.Generator, Async: fn.Async}, nil

	case *gojaast.ReturnStatement:
		var arg ast.Expression
		if n.Argument != nil {
			var err error
			arg, err = c.expression(n.Argument)
			if err != nil {
				return nil, err
			}
		}
		return &ast.ReturnStatement{Argument: arg}, nil

	case *gojaast.IfStatement:
		test, err := c.expression(n.Test)
		if err != nil {
			return nil, err
		}
		cons, err := c.statement(n.Consequent)
		if err != nil {
			return nil, err
		}
		var alt ast.Statement
		if n.Alternate != nil {
			alt, err = c.statement(n.Alternate)
			if err != nil {
				return nil, err
			}
		}
		return &ast.IfStatement{Test: test, Consequent: cons, Alternate: alt}, nil

	case *gojaast.ForStatement:
		return c.forStatement(n)

	case *gojaast.ForInStatement:
		return c.forInStatement(n)

	case *gojaast.ForOfStatement:
		return c.forOfStatement(n)

	case *gojaast.WhileStatement:
		test, err := c.expression(n.Test)
		if err != nil {
			return nil, err
		}
		body, err := c.statement(n.Body)
		if err != nil {
			return nil, err
		}
		return &ast.WhileStatement{Test: test, Body: body}, nil

	case *gojaast.DoWhileStatement:
		body, err := c.statement(n.Body)
		if err != nil {
			return nil, err
		}
		test, err := c.expression(n.Test)
		if err != nil {
			return nil, err
		}
		return &ast.DoWhileStatement{Body: body, Test: test}, nil

	case *gojaast.BranchStatement:
		var label *ast.Identifier
		if n.Label != nil {
			label = c.identifier(n.Label)
		}
		if n.Token == gojatoken.BREAK {
			return &ast.BreakStatement{Label: label}, nil
		}
		return &ast.ContinueStatement{Label: label}, nil

	case *gojaast.ThrowStatement:
		arg, err := c.expression(n.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.ThrowStatement{Argument: arg}, nil

	case *gojaast.TryStatement:
		return c.tryStatement(n)

	case *gojaast.LabelledStatement:
		body, err := c.statement(n.Statement)
		if err != nil {
			return nil, err
		}
		return &ast.LabeledStatement{Label: c.identifier(n.Label), Body: body}, nil

	case *gojaast.SwitchStatement:
		return c.switchStatement(n)

	default:
		return nil, unsupported(s)
	}
}

func (c *converter) variableDeclaration(kind string, list []*gojaast.Binding) (ast.Statement, error) {
	decls := make([]*ast.VariableDeclarator, 0, len(list))
	for _, b := range list {
		id, ok := b.Target.(*gojaast.Identifier)
		if !ok {
			return nil, &UnsupportedNodeError{GojaType: "destructuring variable binding"}
		}
		var init ast.Expression
		if b.Initializer != nil {
			e, err := c.expression(b.Initializer)
			if err != nil {
				return nil, err
			}
			init = e
		}
		decls = append(decls, &ast.VariableDeclarator{Id: c.identifier(id), Init: init})
	}
	return &ast.VariableDeclaration{Kind: kind, Declarations: decls}, nil
}

func (c *converter) forStatement(n *gojaast.ForStatement) (ast.Statement, error) {
	var init ast.Node
	switch ini := n.Initializer.(type) {
	case nil:
		// no initializer
	case *gojaast.VariableStatement:
		decl, err := c.variableDeclaration("var", ini.List)
		if err != nil {
			return nil, err
		}
		init = decl
	case *gojaast.LexicalDeclaration:
		kind := "let"
		if ini.Token == gojatoken.CONST {
			kind = "const"
		}
		decl, err := c.variableDeclaration(kind, ini.List)
		if err != nil {
			return nil, err
		}
		init = decl
	case gojaast.Expression:
		expr, err := c.expression(ini)
		if err != nil {
			return nil, err
		}
		init = expr
	default:
		return nil, unsupported(n)
	}

	var test, update ast.Expression
	var err error
	if n.Test != nil {
		if test, err = c.expression(n.Test); err != nil {
			return nil, err
		}
	}
	if n.Update != nil {
		if update, err = c.expression(n.Update); err != nil {
			return nil, err
		}
	}
	body, err := c.statement(n.Body)
	if err != nil {
		return nil, err
	}
	return &ast.ForStatement{Init: init, Test: test, Update: update, Body: body}, nil
}

func (c *converter) forInStatement(n *gojaast.ForInStatement) (ast.Statement, error) {
	left, err := c.forInto(n.Into)
	if err != nil {
		return nil, err
	}
	right, err := c.expression(n.Source)
	if err != nil {
		return nil, err
	}
	body, err := c.statement(n.Body)
	if err != nil {
		return nil, err
	}
	return &ast.ForInStatement{Left: left, Right: right, Body: body}, nil
}

func (c *converter) forOfStatement(n *gojaast.ForOfStatement) (ast.Statement, error) {
	left, err := c.forInto(n.Into)
	if err != nil {
		return nil, err
	}
	right, err := c.expression(n.Source)
	if err != nil {
		return nil, err
	}
	body, err := c.statement(n.Body)
	if err != nil {
		return nil, err
	}
	return &ast.ForOfStatement{Left: left, Right: right, Body: body}, nil
}

func (c *converter) forInto(into gojaast.ForInto) (ast.Node, error) {
	switch t := into.(type) {
	case *gojaast.ForIntoVar:
		return c.variableDeclaration("var", []*gojaast.Binding{{Target: t.Binding.Target, Initializer: t.Binding.Initializer}})
	case *gojaast.ForIntoIdentifier:
		return c.identifier(t.Expression), nil
	case gojaast.Expression:
		return c.expression(t)
	default:
		return nil, unsupported(into)
	}
}

func (c *converter) tryStatement(n *gojaast.TryStatement) (ast.Statement, error) {
	block, err := c.statement(n.Body)
	if err != nil {
		return nil, err
	}
	blockStmt, ok := block.(*ast.BlockStatement)
	if !ok {
		return nil, unsupported(n.Body)
	}

	var handler *ast.CatchClause
	if n.Catch != nil {
		var param ast.Pattern
		if n.Catch.Parameter != nil {
			id, ok := n.Catch.Parameter.(*gojaast.Identifier)
			if !ok {
				return nil, &UnsupportedNodeError{GojaType: "destructuring catch binding"}
			}
			param = c.identifier(id)
		}
		catchBody, err := c.statement(n.Catch.Body)
		if err != nil {
			return nil, err
		}
		catchBlock, ok := catchBody.(*ast.BlockStatement)
		if !ok {
			return nil, unsupported(n.Catch.Body)
		}
		handler = &ast.CatchClause{Param: param, Body: catchBlock}
	}

	var finalizer *ast.BlockStatement
	if n.Finally != nil {
		fin, err := c.statement(n.Finally)
		if err != nil {
			return nil, err
		}
		finBlock, ok := fin.(*ast.BlockStatement)
		if !ok {
			return nil, unsupported(n.Finally)
		}
		finalizer = finBlock
	}

	return &ast.TryStatement{Block: blockStmt, Handler: handler, Finalizer: finalizer}, nil
}

func (c *converter) switchStatement(n *gojaast.SwitchStatement) (ast.Statement, error) {
	disc, err := c.expression(n.Discriminant)
	if err != nil {
		return nil, err
	}
	cases := make([]*ast.SwitchCase, 0, len(n.Body))
	for _, cs := range n.Body {
		var test ast.Expression
		if cs.Test != nil {
			test, err = c.expression(cs.Test)
			if err != nil {
				return nil, err
			}
		}
		consequent, err := c.statements(cs.Consequent)
		if err != nil {
			return nil, err
		}
		cases = append(cases, &ast.SwitchCase{Test: test, Consequent: consequent})
	}
	return &ast.SwitchStatement{Discriminant: disc, Cases: cases}, nil
}

func (c *converter) identifier(id *gojaast.Identifier) *ast.Identifier {
	n := &ast.Identifier{Name: restoreSigil(string(id.Name))}
	n.SetLoc(c.loc(id.Idx0(), id.Idx1()))
	return n
}

func (c *converter) expressions(in []gojaast.Expression) ([]ast.Expression, error) {
	out := make([]ast.Expression, len(in))
	for i, e := range in {
		if e == nil {
			continue
		}
		ce, err := c.expression(e)
		if err != nil {
			return nil, err
		}
		out[i] = ce
	}
	return out, nil
}

func (c *converter) expression(e gojaast.Expression) (ast.Expression, error) {
	switch n := e.(type) {
	case *gojaast.Identifier:
		return c.identifier(n), nil

	case *gojaast.StringLiteral:
		lit := &ast.Literal{Value: string(n.Value), Raw: n.Literal}
		lit.SetLoc(c.loc(n.Idx0(), n.Idx1()))
		return lit, nil

	case *gojaast.NumberLiteral:
		lit := &ast.Literal{Value: n.Value, Raw: n.Literal}
		lit.SetLoc(c.loc(n.Idx0(), n.Idx1()))
		return lit, nil

	case *gojaast.BooleanLiteral:
		lit := &ast.Literal{Value: n.Value, Raw: n.Literal}
		lit.SetLoc(c.loc(n.Idx0(), n.Idx1()))
		return lit, nil

	case *gojaast.NullLiteral:
		lit := &ast.Literal{Value: nil, Raw: "null"}
		lit.SetLoc(c.loc(n.Idx0(), n.Idx1()))
		return lit, nil

	case *gojaast.ThisExpression:
		th := &ast.ThisExpression{}
		th.SetLoc(c.loc(n.Idx0(), n.Idx1()))
		return th, nil

	case *gojaast.ArrayLiteral:
		elems, err := c.expressions(n.Value)
		if err != nil {
			return nil, err
		}
		arr := &ast.ArrayExpression{Elements: elems}
		arr.SetLoc(c.loc(n.Idx0(), n.Idx1()))
		return arr, nil

	case *gojaast.ObjectLiteral:
		return c.objectLiteral(n)

	case *gojaast.BinaryExpression:
		left, err := c.expression(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := c.expression(n.Right)
		if err != nil {
			return nil, err
		}
		op := n.Operator.String()
		be := expressionForBinaryOperator(op, left, right)
		be.SetLoc(c.loc(n.Idx0(), n.Idx1()))
		return be, nil

	case *gojaast.AssignExpression:
		left, err := c.expression(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := c.expression(n.Right)
		if err != nil {
			return nil, err
		}
		op := n.Operator.String()
		if op == "" {
			op = "="
		}
		ae := &ast.AssignmentExpression{Operator: op, Left: left, Right: right}
		ae.SetLoc(c.loc(n.Idx0(), n.Idx1()))
		return ae, nil

	case *gojaast.UnaryExpression:
		operand, err := c.expression(n.Operand)
		if err != nil {
			return nil, err
		}
		op := n.Operator.String()
		if op == "++" || op == "--" {
			ue := &ast.UpdateExpression{Operator: op, Argument: operand, Prefix: !n.Postfix}
			ue.SetLoc(c.loc(n.Idx0(), n.Idx1()))
			return ue, nil
		}
		ue := &ast.UnaryExpression{Operator: op, Argument: operand, Prefix: !n.Postfix}
		ue.SetLoc(c.loc(n.Idx0(), n.Idx1()))
		return ue, nil

	case *gojaast.ConditionalExpression:
		test, err := c.expression(n.Test)
		if err != nil {
			return nil, err
		}
		cons, err := c.expression(n.Consequent)
		if err != nil {
			return nil, err
		}
		alt, err := c.expression(n.Alternate)
		if err != nil {
			return nil, err
		}
		ce := &ast.ConditionalExpression{Test: test, Consequent: cons, Alternate: alt}
		ce.SetLoc(c.loc(n.Idx0(), n.Idx1()))
		return ce, nil

	case *gojaast.CallExpression:
		callee, err := c.expression(n.Callee)
		if err != nil {
			return nil, err
		}
		args, err := c.expressions(n.ArgumentList)
		if err != nil {
			return nil, err
		}
		ce := &ast.CallExpression{Callee: callee, Arguments: args}
		ce.SetLoc(c.loc(n.Idx0(), n.Idx1()))
		return ce, nil

	case *gojaast.NewExpression:
		callee, err := c.expression(n.Callee)
		if err != nil {
			return nil, err
		}
		args, err := c.expressions(n.ArgumentList)
		if err != nil {
			return nil, err
		}
		ne := &ast.NewExpression{Callee: callee, Arguments: args}
		ne.SetLoc(c.loc(n.Idx0(), n.Idx1()))
		return ne, nil

	case *gojaast.DotExpression:
		obj, err := c.expression(n.Left)
		if err != nil {
			return nil, err
		}
		me := &ast.MemberExpression{Object: obj, Property: c.identifier(&n.Identifier), Computed: false}
		me.SetLoc(c.loc(n.Idx0(), n.Idx1()))
		return me, nil

	case *gojaast.BracketExpression:
		obj, err := c.expression(n.Left)
		if err != nil {
			return nil, err
		}
		member, err := c.expression(n.Member)
		if err != nil {
			return nil, err
		}
		me := &ast.MemberExpression{Object: obj, Property: member, Computed: true}
		me.SetLoc(c.loc(n.Idx0(), n.Idx1()))
		return me, nil

	case *gojaast.SequenceExpression:
		exprs, err := c.expressions(n.Sequence)
		if err != nil {
			return nil, err
		}
		se := &ast.SequenceExpression{Expressions: exprs}
		return se, nil

	case *gojaast.FunctionLiteral:
		return c.functionLiteral(n)

	case *gojaast.ArrowFunctionLiteral:
		return c.arrowFunctionLiteral(n)

	case *gojaast.TemplateLiteral:
		return c.templateLiteral(n)

	default:
		return nil, unsupported(e)
	}
}

func (c *converter) templateLiteral(n *gojaast.TemplateLiteral) (ast.Expression, error) {
	exprs, err := c.expressions(n.Expressions)
	if err != nil {
		return nil, err
	}
	quasis := make([]*ast.TemplateElement, len(n.Elements))
	for i, el := range n.Elements {
		quasis[i] = &ast.TemplateElement{
			Raw:    el.Literal,
			Cooked: string(el.Parsed),
			Tail:   i == len(n.Elements)-1,
		}
	}
	lit := &ast.TemplateLiteral{Quasis: quasis, Expressions: exprs}
	lit.SetLoc(c.loc(n.Idx0(), n.Idx1()))
	return lit, nil
}

func (c *converter) arrowFunctionLiteral(n *gojaast.ArrowFunctionLiteral) (ast.Expression, error) {
	params, err := c.parameterList(n.ParameterList)
	if err != nil {
		return nil, err
	}

	var body ast.Node
	exprBody := false
	switch b := n.Body.(type) {
	case *gojaast.ExpressionBody:
		expr, err := c.expression(b.Expression)
		if err != nil {
			return nil, err
		}
		body = expr
		exprBody = true
	case *gojaast.BlockStatement:
		stmt, err := c.statement(b)
		if err != nil {
			return nil, err
		}
		body = stmt
	default:
		return nil, unsupported(n.Body)
	}

	fn := &ast.ArrowFunctionExpression{Params: params, Body: body, ExpressionBody: exprBody, Async: n.Async}
	fn.SetLoc(c.loc(n.Idx0(), n.Idx1()))
	return fn, nil
}

// expressionForBinaryOperator maps a token's textual operator to either a
// BinaryExpression or a LogicalExpression node, matching ESTree's split
// between the two (&&, ||, ?? are LogicalExpression; everything else is
// BinaryExpression).
func expressionForBinaryOperator(op string, left, right ast.Expression) interface {
	ast.Expression
	SetLoc(*ast.Loc)
} {
	switch op {
	case "&&", "||", "??":
		return &ast.LogicalExpression{Operator: op, Left: left, Right: right}
	default:
		return &ast.BinaryExpression{Operator: op, Left: left, Right: right}
	}
}

func (c *converter) objectLiteral(n *gojaast.ObjectLiteral) (ast.Expression, error) {
	props := make([]*ast.Property, 0, len(n.Value))
	for _, p := range n.Value {
		prop, err := c.property(p)
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
	}
	obj := &ast.ObjectExpression{Properties: props}
	obj.SetLoc(c.loc(n.Idx0(), n.Idx1()))
	return obj, nil
}

func (c *converter) property(p gojaast.Property) (*ast.Property, error) {
	switch pr := p.(type) {
	case *gojaast.PropertyShort:
		id := c.identifier(&pr.Name)
		var value ast.Node = id
		if pr.Initializer != nil {
			init, err := c.expression(pr.Initializer)
			if err != nil {
				return nil, err
			}
			value = &ast.AssignmentPattern{Left: id, Right: init}
		}
		return &ast.Property{Key: id, Value: value, Kind: "init", Shorthand: true}, nil

	case *gojaast.PropertyKeyed:
		key, err := c.expression(pr.Key)
		if err != nil {
			return nil, err
		}
		value, err := c.expression(pr.Value)
		if err != nil {
			return nil, err
		}
		kind := "init"
		switch pr.Kind {
		case gojaast.PropertyKindGet:
			kind = "get"
		case gojaast.PropertyKindSet:
			kind = "set"
		}
		return &ast.Property{Key: key, Value: value, Kind: kind, Computed: pr.Computed}, nil

	default:
		return nil, unsupported(p)
	}
}

func (c *converter) functionLiteral(n *gojaast.FunctionLiteral) (*ast.FunctionExpression, error) {
	var id *ast.Identifier
	if n.Name != nil {
		id = c.identifier(n.Name)
	}

	params, err := c.parameterList(n.ParameterList)
	if err != nil {
		return nil, err
	}

	bodyStmt, err := c.statement(n.Body)
	if err != nil {
		return nil, err
	}
	body, ok := bodyStmt.(*ast.BlockStatement)
	if !ok {
		return nil, unsupported(n.Body)
	}

	fn := &ast.FunctionExpression{Id: id, Params: params, Body: body}
	fn.SetLoc(c.loc(n.Function, 0))
	return fn, nil
}

// parameterList converts a goja parameter list, including a rest parameter
// (`...args`) into a trailing *ast.RestElement.
func (c *converter) parameterList(pl *gojaast.ParameterList) ([]ast.Pattern, error) {
	if pl == nil {
		return nil, nil
	}
	params := make([]ast.Pattern, 0, len(pl.List)+1)
	for _, b := range pl.List {
		target, ok := b.Target.(*gojaast.Identifier)
		if !ok {
			return nil, &UnsupportedNodeError{GojaType: "destructuring function parameter"}
		}
		var p ast.Pattern = c.identifier(target)
		if b.Initializer != nil {
			init, err := c.expression(b.Initializer)
			if err != nil {
				return nil, err
			}
			p = &ast.AssignmentPattern{Left: p, Right: init}
		}
		params = append(params, p)
	}
	if pl.Rest != nil {
		target, ok := pl.Rest.(*gojaast.Identifier)
		if !ok {
			return nil, &UnsupportedNodeError{GojaType: "destructuring rest parameter"}
		}
		params = append(params, &ast.RestElement{Argument: c.identifier(target)})
	}
	return params, nil
}
