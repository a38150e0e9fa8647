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

// Visitor is the interface that AST visitors must implement. Pre is called
// before a node's children are traversed and Post after; either may
// return an error to abort the walk.
type Visitor interface {
	Pre(Node) error
	Post(Node) error
}

// Walk traverses node depth-first, pre-order, calling v.Pre/v.Post around
// the traversal of each child. node must be non-nil.
//
// Nilness checking for interface-typed fields is not as simple as "x ==
// nil": an interface value holding a nil concrete pointer is itself
// non-nil. Every optional field is therefore guarded before recursing,
// following the same discipline as a standard library AST walker.
func Walk(v Visitor, node Node) error {
	if err := v.Pre(node); err != nil {
		return err
	}

	switch n := node.(type) {
	case *Program:
		if err := walkStatements(v, n.Body); err != nil {
			return err
		}

	case *Identifier, *Literal, *ThisExpression, *EmptyStatement:
		// leaves

	case *ArrayExpression:
		for _, el := range n.Elements {
			if el == nil {
				continue
			}
			if err := Walk(v, el); err != nil {
				return err
			}
		}

	case *ObjectExpression:
		for _, p := range n.Properties {
			if err := Walk(v, p); err != nil {
				return err
			}
		}

	case *Property:
		if n.Key != nil {
			if err := Walk(v, n.Key); err != nil {
				return err
			}
		}
		if n.Value != nil {
			if err := Walk(v, n.Value); err != nil {
				return err
			}
		}

	case *FunctionExpression:
		if err := walkFunction(v, n.Id, n.Params, n.Body); err != nil {
			return err
		}

	case *FunctionDeclaration:
		if err := walkFunction(v, n.Id, n.Params, n.Body); err != nil {
			return err
		}

	case *ArrowFunctionExpression:
		for _, p := range n.Params {
			if err := Walk(v, p); err != nil {
				return err
			}
		}
		if n.Body != nil {
			if err := Walk(v, n.Body); err != nil {
				return err
			}
		}

	case *UnaryExpression:
		if n.Argument != nil {
			if err := Walk(v, n.Argument); err != nil {
				return err
			}
		}

	case *UpdateExpression:
		if n.Argument != nil {
			if err := Walk(v, n.Argument); err != nil {
				return err
			}
		}

	case *BinaryExpression:
		if err := walkPair(v, n.Left, n.Right); err != nil {
			return err
		}

	case *LogicalExpression:
		if err := walkPair(v, n.Left, n.Right); err != nil {
			return err
		}

	case *AssignmentExpression:
		if n.Left != nil {
			if err := Walk(v, n.Left); err != nil {
				return err
			}
		}
		if n.Right != nil {
			if err := Walk(v, n.Right); err != nil {
				return err
			}
		}

	case *ConditionalExpression:
		if err := Walk(v, n.Test); err != nil {
			return err
		}
		if err := Walk(v, n.Consequent); err != nil {
			return err
		}
		if err := Walk(v, n.Alternate); err != nil {
			return err
		}

	case *CallExpression:
		if n.Callee != nil {
			if err := Walk(v, n.Callee); err != nil {
				return err
			}
		}
		if err := walkExpressions(v, n.Arguments); err != nil {
			return err
		}

	case *NewExpression:
		if n.Callee != nil {
			if err := Walk(v, n.Callee); err != nil {
				return err
			}
		}
		if err := walkExpressions(v, n.Arguments); err != nil {
			return err
		}

	case *MemberExpression:
		if n.Object != nil {
			if err := Walk(v, n.Object); err != nil {
				return err
			}
		}
		if n.Property != nil {
			if err := Walk(v, n.Property); err != nil {
				return err
			}
		}

	case *SequenceExpression:
		if err := walkExpressions(v, n.Expressions); err != nil {
			return err
		}

	case *SpreadElement:
		if n.Argument != nil {
			if err := Walk(v, n.Argument); err != nil {
				return err
			}
		}

	case *TemplateLiteral:
		for _, q := range n.Quasis {
			if err := Walk(v, q); err != nil {
				return err
			}
		}
		if err := walkExpressions(v, n.Expressions); err != nil {
			return err
		}

	case *TemplateElement:
		// leaf

	case *ArrayPattern:
		for _, el := range n.Elements {
			if el == nil {
				continue
			}
			if err := Walk(v, el); err != nil {
				return err
			}
		}

	case *ObjectPattern:
		for _, p := range n.Properties {
			if err := Walk(v, p); err != nil {
				return err
			}
		}

	case *AssignmentPattern:
		if n.Left != nil {
			if err := Walk(v, n.Left); err != nil {
				return err
			}
		}
		if n.Right != nil {
			if err := Walk(v, n.Right); err != nil {
				return err
			}
		}

	case *RestElement:
		if n.Argument != nil {
			if err := Walk(v, n.Argument); err != nil {
				return err
			}
		}

	case *ExpressionStatement:
		if n.Expression != nil {
			if err := Walk(v, n.Expression); err != nil {
				return err
			}
		}

	case *BlockStatement:
		if err := walkStatements(v, n.Body); err != nil {
			return err
		}

	case *VariableDeclarator:
		if n.Id != nil {
			if err := Walk(v, n.Id); err != nil {
				return err
			}
		}
		if n.Init != nil {
			if err := Walk(v, n.Init); err != nil {
				return err
			}
		}

	case *VariableDeclaration:
		for _, d := range n.Declarations {
			if err := Walk(v, d); err != nil {
				return err
			}
		}

	case *ReturnStatement:
		if n.Argument != nil {
			if err := Walk(v, n.Argument); err != nil {
				return err
			}
		}

	case *IfStatement:
		if err := Walk(v, n.Test); err != nil {
			return err
		}
		if err := Walk(v, n.Consequent); err != nil {
			return err
		}
		if n.Alternate != nil {
			if err := Walk(v, n.Alternate); err != nil {
				return err
			}
		}

	case *ForStatement:
		if n.Init != nil {
			if err := Walk(v, n.Init); err != nil {
				return err
			}
		}
		if n.Test != nil {
			if err := Walk(v, n.Test); err != nil {
				return err
			}
		}
		if n.Update != nil {
			if err := Walk(v, n.Update); err != nil {
				return err
			}
		}
		if err := Walk(v, n.Body); err != nil {
			return err
		}

	case *ForInStatement:
		if err := Walk(v, n.Left); err != nil {
			return err
		}
		if err := Walk(v, n.Right); err != nil {
			return err
		}
		if err := Walk(v, n.Body); err != nil {
			return err
		}

	case *ForOfStatement:
		if err := Walk(v, n.Left); err != nil {
			return err
		}
		if err := Walk(v, n.Right); err != nil {
			return err
		}
		if err := Walk(v, n.Body); err != nil {
			return err
		}

	case *WhileStatement:
		if err := Walk(v, n.Test); err != nil {
			return err
		}
		if err := Walk(v, n.Body); err != nil {
			return err
		}

	case *DoWhileStatement:
		if err := Walk(v, n.Body); err != nil {
			return err
		}
		if err := Walk(v, n.Test); err != nil {
			return err
		}

	case *BreakStatement:
		if n.Label != nil {
			if err := Walk(v, n.Label); err != nil {
				return err
			}
		}

	case *ContinueStatement:
		if n.Label != nil {
			if err := Walk(v, n.Label); err != nil {
				return err
			}
		}

	case *ThrowStatement:
		if err := Walk(v, n.Argument); err != nil {
			return err
		}

	case *CatchClause:
		if n.Param != nil {
			if err := Walk(v, n.Param); err != nil {
				return err
			}
		}
		if err := Walk(v, n.Body); err != nil {
			return err
		}

	case *TryStatement:
		if err := Walk(v, n.Block); err != nil {
			return err
		}
		if n.Handler != nil {
			if err := Walk(v, n.Handler); err != nil {
				return err
			}
		}
		if n.Finalizer != nil {
			if err := Walk(v, n.Finalizer); err != nil {
				return err
			}
		}

	case *LabeledStatement:
		if err := Walk(v, n.Label); err != nil {
			return err
		}
		if err := Walk(v, n.Body); err != nil {
			return err
		}

	case *SwitchCase:
		if n.Test != nil {
			if err := Walk(v, n.Test); err != nil {
				return err
			}
		}
		if err := walkStatements(v, n.Consequent); err != nil {
			return err
		}

	case *SwitchStatement:
		if err := Walk(v, n.Discriminant); err != nil {
			return err
		}
		for _, c := range n.Cases {
			if err := Walk(v, c); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("ast.Walk: unhandled node type %T", node)
	}

	return v.Post(node)
}

func walkFunction(v Visitor, id *Identifier, params []Pattern, body *BlockStatement) error {
	if id != nil {
		if err := Walk(v, id); err != nil {
			return err
		}
	}
	for _, p := range params {
		if err := Walk(v, p); err != nil {
			return err
		}
	}
	if body != nil {
		if err := Walk(v, body); err != nil {
			return err
		}
	}
	return nil
}

func walkPair(v Visitor, left, right Expression) error {
	if left != nil {
		if err := Walk(v, left); err != nil {
			return err
		}
	}
	if right != nil {
		if err := Walk(v, right); err != nil {
			return err
		}
	}
	return nil
}

func walkStatements(v Visitor, stmts []Statement) error {
	for _, s := range stmts {
		if err := Walk(v, s); err != nil {
			return err
		}
	}
	return nil
}

func walkExpressions(v Visitor, exprs []Expression) error {
	for _, e := range exprs {
		if e == nil {
			continue
		}
		if err := Walk(v, e); err != nil {
			return err
		}
	}
	return nil
}
