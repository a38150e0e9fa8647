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

package ast

import "fmt"

// CloneStatements returns a deep copy of a statement list, suitable for a
// caller that wants to mutate a fragment returned from the template engine
// without disturbing the original (fragments are read-only during a print,
// but callers commonly mutate them afterwards, e.g. to splice further
// statements in).
func CloneStatements(stmts []Statement) []Statement {
	out := make([]Statement, len(stmts))
	for i, s := range stmts {
		out[i] = Clone(s).(Statement)
	}
	return out
}

// Clone returns a deep copy of node. Location metadata is copied by value;
// no node identity is shared between the original and the clone.
func Clone(node Node) Node {
	if node == nil {
		return nil
	}
	c := &cloner{}
	return c.clone(node)
}

type cloner struct{}

func (c *cloner) cloneLoc(b base) base {
	nb := base{LeadingComments: append([]*Comment(nil), b.LeadingComments...), TrailingComments: append([]*Comment(nil), b.TrailingComments...)}
	if b.Loc != nil {
		loc := *b.Loc
		nb.Loc = &loc
	}
	return nb
}

func (c *cloner) cloneExpr(e Expression) Expression {
	if e == nil {
		return nil
	}
	return c.clone(e).(Expression)
}

func (c *cloner) clonePattern(p Pattern) Pattern {
	if p == nil {
		return nil
	}
	return c.clone(p).(Pattern)
}

func (c *cloner) cloneStmt(s Statement) Statement {
	if s == nil {
		return nil
	}
	return c.clone(s).(Statement)
}

func (c *cloner) cloneExprs(in []Expression) []Expression {
	if in == nil {
		return nil
	}
	out := make([]Expression, len(in))
	for i, e := range in {
		out[i] = c.cloneExpr(e)
	}
	return out
}

func (c *cloner) clonePatterns(in []Pattern) []Pattern {
	if in == nil {
		return nil
	}
	out := make([]Pattern, len(in))
	for i, p := range in {
		out[i] = c.clonePattern(p)
	}
	return out
}

func (c *cloner) cloneStmts(in []Statement) []Statement {
	if in == nil {
		return nil
	}
	out := make([]Statement, len(in))
	for i, s := range in {
		out[i] = c.cloneStmt(s)
	}
	return out
}

func (c *cloner) cloneProps(in []*Property) []*Property {
	if in == nil {
		return nil
	}
	out := make([]*Property, len(in))
	for i, p := range in {
		out[i] = c.clone(p).(*Property)
	}
	return out
}

// clone performs the structural switch; every variant must be listed here
// to support deep copy of an arbitrary subtree.
func (c *cloner) clone(node Node) Node {
	switch n := node.(type) {
	case *Program:
		return &Program{base: c.cloneLoc(n.base), Body: c.cloneStmts(n.Body)}
	case *Identifier:
		return &Identifier{base: c.cloneLoc(n.base), Name: n.Name}
	case *Literal:
		return &Literal{base: c.cloneLoc(n.base), Value: n.Value, Raw: n.Raw}
	case *ThisExpression:
		return &ThisExpression{base: c.cloneLoc(n.base)}
	case *ArrayExpression:
		return &ArrayExpression{base: c.cloneLoc(n.base), Elements: c.cloneExprs(n.Elements)}
	case *ObjectExpression:
		return &ObjectExpression{base: c.cloneLoc(n.base), Properties: c.cloneProps(n.Properties)}
	case *Property:
		var v Node
		if n.Value != nil {
			v = c.clone(n.Value)
		}
		return &Property{base: c.cloneLoc(n.base), Key: c.cloneExpr(n.Key), Value: v, Kind: n.Kind, Computed: n.Computed, Shorthand: n.Shorthand, Method: n.Method}
	case *FunctionExpression:
		var id *Identifier
		if n.Id != nil {
			id = c.clone(n.Id).(*Identifier)
		}
		var body *BlockStatement
		if n.Body != nil {
			body = c.clone(n.Body).(*BlockStatement)
		}
		return &FunctionExpression{base: c.cloneLoc(n.base), Id: id, Params: c.clonePatterns(n.Params), Body: body, Generator: n.Generator, Async: n.Async}
	case *FunctionDeclaration:
		var id *Identifier
		if n.Id != nil {
			id = c.clone(n.Id).(*Identifier)
		}
		var body *BlockStatement
		if n.Body != nil {
			body = c.clone(n.Body).(*BlockStatement)
		}
		return &FunctionDeclaration{base: c.cloneLoc(n.base), Id: id, Params: c.clonePatterns(n.Params), Body: body, Generator: n.Generator, Async: n.Async}
	case *ArrowFunctionExpression:
		var body Node
		if n.Body != nil {
			body = c.clone(n.Body)
		}
		return &ArrowFunctionExpression{base: c.cloneLoc(n.base), Params: c.clonePatterns(n.Params), Body: body, ExpressionBody: n.ExpressionBody, Async: n.Async}
	case *UnaryExpression:
		return &UnaryExpression{base: c.cloneLoc(n.base), Operator: n.Operator, Argument: c.cloneExpr(n.Argument), Prefix: n.Prefix}
	case *UpdateExpression:
		return &UpdateExpression{base: c.cloneLoc(n.base), Operator: n.Operator, Argument: c.cloneExpr(n.Argument), Prefix: n.Prefix}
	case *BinaryExpression:
		return &BinaryExpression{base: c.cloneLoc(n.base), Operator: n.Operator, Left: c.cloneExpr(n.Left), Right: c.cloneExpr(n.Right)}
	case *LogicalExpression:
		return &LogicalExpression{base: c.cloneLoc(n.base), Operator: n.Operator, Left: c.cloneExpr(n.Left), Right: c.cloneExpr(n.Right)}
	case *AssignmentExpression:
		var left Node
		if n.Left != nil {
			left = c.clone(n.Left)
		}
		return &AssignmentExpression{base: c.cloneLoc(n.base), Operator: n.Operator, Left: left, Right: c.cloneExpr(n.Right)}
	case *ConditionalExpression:
		return &ConditionalExpression{base: c.cloneLoc(n.base), Test: c.cloneExpr(n.Test), Consequent: c.cloneExpr(n.Consequent), Alternate: c.cloneExpr(n.Alternate)}
	case *CallExpression:
		return &CallExpression{base: c.cloneLoc(n.base), Callee: c.cloneExpr(n.Callee), Arguments: c.cloneExprs(n.Arguments)}
	case *NewExpression:
		return &NewExpression{base: c.cloneLoc(n.base), Callee: c.cloneExpr(n.Callee), Arguments: c.cloneExprs(n.Arguments)}
	case *MemberExpression:
		return &MemberExpression{base: c.cloneLoc(n.base), Object: c.cloneExpr(n.Object), Property: c.cloneExpr(n.Property), Computed: n.Computed}
	case *SequenceExpression:
		return &SequenceExpression{base: c.cloneLoc(n.base), Expressions: c.cloneExprs(n.Expressions)}
	case *SpreadElement:
		return &SpreadElement{base: c.cloneLoc(n.base), Argument: c.cloneExpr(n.Argument)}
	case *TemplateElement:
		return &TemplateElement{base: c.cloneLoc(n.base), Raw: n.Raw, Cooked: n.Cooked, Tail: n.Tail}
	case *TemplateLiteral:
		quasis := make([]*TemplateElement, len(n.Quasis))
		for i, q := range n.Quasis {
			quasis[i] = c.clone(q).(*TemplateElement)
		}
		return &TemplateLiteral{base: c.cloneLoc(n.base), Quasis: quasis, Expressions: c.cloneExprs(n.Expressions)}
	case *ArrayPattern:
		return &ArrayPattern{base: c.cloneLoc(n.base), Elements: c.clonePatterns(n.Elements)}
	case *ObjectPattern:
		return &ObjectPattern{base: c.cloneLoc(n.base), Properties: c.cloneProps(n.Properties)}
	case *AssignmentPattern:
		return &AssignmentPattern{base: c.cloneLoc(n.base), Left: c.clonePattern(n.Left), Right: c.cloneExpr(n.Right)}
	case *RestElement:
		return &RestElement{base: c.cloneLoc(n.base), Argument: c.clonePattern(n.Argument)}
	case *ExpressionStatement:
		return &ExpressionStatement{base: c.cloneLoc(n.base), Expression: c.cloneExpr(n.Expression)}
	case *BlockStatement:
		return &BlockStatement{base: c.cloneLoc(n.base), Body: c.cloneStmts(n.Body)}
	case *EmptyStatement:
		return &EmptyStatement{base: c.cloneLoc(n.base)}
	case *VariableDeclarator:
		return &VariableDeclarator{base: c.cloneLoc(n.base), Id: c.clonePattern(n.Id), Init: c.cloneExpr(n.Init)}
	case *VariableDeclaration:
		decls := make([]*VariableDeclarator, len(n.Declarations))
		for i, d := range n.Declarations {
			decls[i] = c.clone(d).(*VariableDeclarator)
		}
		return &VariableDeclaration{base: c.cloneLoc(n.base), Kind: n.Kind, Declarations: decls}
	case *ReturnStatement:
		return &ReturnStatement{base: c.cloneLoc(n.base), Argument: c.cloneExpr(n.Argument)}
	case *IfStatement:
		var alt Statement
		if n.Alternate != nil {
			alt = c.cloneStmt(n.Alternate)
		}
		return &IfStatement{base: c.cloneLoc(n.base), Test: c.cloneExpr(n.Test), Consequent: c.cloneStmt(n.Consequent), Alternate: alt}
	case *ForStatement:
		var init Node
		if n.Init != nil {
			init = c.clone(n.Init)
		}
		return &ForStatement{base: c.cloneLoc(n.base), Init: init, Test: c.cloneExpr(n.Test), Update: c.cloneExpr(n.Update), Body: c.cloneStmt(n.Body)}
	case *ForInStatement:
		return &ForInStatement{base: c.cloneLoc(n.base), Left: c.clone(n.Left), Right: c.cloneExpr(n.Right), Body: c.cloneStmt(n.Body)}
	case *ForOfStatement:
		return &ForOfStatement{base: c.cloneLoc(n.base), Left: c.clone(n.Left), Right: c.cloneExpr(n.Right), Body: c.cloneStmt(n.Body), Await: n.Await}
	case *WhileStatement:
		return &WhileStatement{base: c.cloneLoc(n.base), Test: c.cloneExpr(n.Test), Body: c.cloneStmt(n.Body)}
	case *DoWhileStatement:
		return &DoWhileStatement{base: c.cloneLoc(n.base), Body: c.cloneStmt(n.Body), Test: c.cloneExpr(n.Test)}
	case *BreakStatement:
		var label *Identifier
		if n.Label != nil {
			label = c.clone(n.Label).(*Identifier)
		}
		return &BreakStatement{base: c.cloneLoc(n.base), Label: label}
	case *ContinueStatement:
		var label *Identifier
		if n.Label != nil {
			label = c.clone(n.Label).(*Identifier)
		}
		return &ContinueStatement{base: c.cloneLoc(n.base), Label: label}
	case *ThrowStatement:
		return &ThrowStatement{base: c.cloneLoc(n.base), Argument: c.cloneExpr(n.Argument)}
	case *CatchClause:
		return &CatchClause{base: c.cloneLoc(n.base), Param: c.clonePattern(n.Param), Body: c.clone(n.Body).(*BlockStatement)}
	case *TryStatement:
		var handler *CatchClause
		if n.Handler != nil {
			handler = c.clone(n.Handler).(*CatchClause)
		}
		var finalizer *BlockStatement
		if n.Finalizer != nil {
			finalizer = c.clone(n.Finalizer).(*BlockStatement)
		}
		return &TryStatement{base: c.cloneLoc(n.base), Block: c.clone(n.Block).(*BlockStatement), Handler: handler, Finalizer: finalizer}
	case *LabeledStatement:
		return &LabeledStatement{base: c.cloneLoc(n.base), Label: c.clone(n.Label).(*Identifier), Body: c.cloneStmt(n.Body)}
	case *SwitchCase:
		return &SwitchCase{base: c.cloneLoc(n.base), Test: c.cloneExpr(n.Test), Consequent: c.cloneStmts(n.Consequent)}
	case *SwitchStatement:
		cases := make([]*SwitchCase, len(n.Cases))
		for i, sc := range n.Cases {
			cases[i] = c.clone(sc).(*SwitchCase)
		}
		return &SwitchStatement{base: c.cloneLoc(n.base), Discriminant: c.cloneExpr(n.Discriminant), Cases: cases}
	default:
		panic(fmt.Sprintf("ast.Clone: unhandled node type %T", node))
	}
}
