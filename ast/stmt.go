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

// Program is the root node returned for a parsed statement list.
type Program struct {
	base
	Body []Statement
}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	base
	Expression Expression
}

func (n *ExpressionStatement) stmt() {}

// BlockStatement is `{ statement; statement; ... }`.
type BlockStatement struct {
	base
	Body []Statement
}

func (n *BlockStatement) stmt() {}

// EmptyStatement is a bare `;`.
type EmptyStatement struct {
	base
}

func (n *EmptyStatement) stmt() {}

// VariableDeclarator is one `id = init` entry of a VariableDeclaration.
type VariableDeclarator struct {
	base
	Id   Pattern
	Init Expression
}

func (n *VariableDeclarator) node() {}

// VariableDeclaration is `var|let|const decl, decl, ...;`.
type VariableDeclaration struct {
	base
	Kind         string // "var", "let", or "const"
	Declarations []*VariableDeclarator
}

func (n *VariableDeclaration) stmt() {}

// FunctionDeclaration is a named function declaration.
type FunctionDeclaration struct {
	base
	Id        *Identifier
	Params    []Pattern
	Body      *BlockStatement
	Generator bool
	Async     bool
}

func (n *FunctionDeclaration) stmt() {}

// ReturnStatement is `return argument;` (Argument may be nil).
type ReturnStatement struct {
	base
	Argument Expression
}

func (n *ReturnStatement) stmt() {}

// IfStatement is `if (test) consequent else alternate` (Alternate may be
// nil).
type IfStatement struct {
	base
	Test       Expression
	Consequent Statement
	Alternate  Statement
}

func (n *IfStatement) stmt() {}

// ForStatement is a C-style `for (init; test; update) body`. Init may be
// an Expression, a *VariableDeclaration, or nil; Test and Update may be
// nil.
type ForStatement struct {
	base
	Init   Node
	Test   Expression
	Update Expression
	Body   Statement
}

func (n *ForStatement) stmt() {}

// ForInStatement is `for (left in right) body`.
type ForInStatement struct {
	base
	Left  Node // Pattern or *VariableDeclaration
	Right Expression
	Body  Statement
}

func (n *ForInStatement) stmt() {}

// ForOfStatement is `for (left of right) body`.
type ForOfStatement struct {
	base
	Left  Node // Pattern or *VariableDeclaration
	Right Expression
	Body  Statement
	Await bool
}

func (n *ForOfStatement) stmt() {}

// WhileStatement is `while (test) body`.
type WhileStatement struct {
	base
	Test Expression
	Body Statement
}

func (n *WhileStatement) stmt() {}

// DoWhileStatement is `do body while (test);`.
type DoWhileStatement struct {
	base
	Body Statement
	Test Expression
}

func (n *DoWhileStatement) stmt() {}

// BreakStatement is `break;` or `break label;`.
type BreakStatement struct {
	base
	Label *Identifier
}

func (n *BreakStatement) stmt() {}

// ContinueStatement is `continue;` or `continue label;`.
type ContinueStatement struct {
	base
	Label *Identifier
}

func (n *ContinueStatement) stmt() {}

// ThrowStatement is `throw argument;`.
type ThrowStatement struct {
	base
	Argument Expression
}

func (n *ThrowStatement) stmt() {}

// CatchClause is the `catch (param) body` part of a TryStatement. Param
// may be nil (an optional-catch-binding).
type CatchClause struct {
	base
	Param Pattern
	Body  *BlockStatement
}

func (n *CatchClause) node() {}

// TryStatement is `try block catch(param) handler finally finalizer`.
// Handler and Finalizer may each be nil, but not both.
type TryStatement struct {
	base
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

func (n *TryStatement) stmt() {}

// LabeledStatement is `label: body`.
type LabeledStatement struct {
	base
	Label *Identifier
	Body  Statement
}

func (n *LabeledStatement) stmt() {}

// SwitchCase is one `case test:` or `default:` arm of a SwitchStatement.
// Test is nil for the default arm.
type SwitchCase struct {
	base
	Test       Expression
	Consequent []Statement
}

func (n *SwitchCase) node() {}

// SwitchStatement is `switch (discriminant) { case ...; default: ... }`.
type SwitchStatement struct {
	base
	Discriminant Expression
	Cases        []*SwitchCase
}

func (n *SwitchStatement) stmt() {}
