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
	"go.uber.org/multierr"

	"github.com/astforge/astforge/ast"
)

// resolver walks a freshly parsed fragment and replaces every hole
// placeholder it finds with the value the caller supplied for that hole,
// per the coercion and splicing rules of the astforge template surface.
// Because the fragment was just built by parser.Parse for this one call,
// nothing else holds a reference to it, so resolver mutates it in place
// rather than rebuilding a parallel tree.
type resolver struct {
	holes []any
}

func (r *resolver) hole(i int) any {
	return r.holes[i]
}

// identifierPlaceholder reports whether e is a bare placeholder
// Identifier, i.e. a hole site in "expression position" or "identifier
// position".
func identifierPlaceholder(e ast.Node) (int, bool) {
	id, ok := e.(*ast.Identifier)
	if !ok {
		return 0, false
	}
	return placeholderIndex(id.Name)
}

// stringLiteralPlaceholder reports whether e is a string Literal whose
// text is exactly a placeholder name, i.e. a hole site written inside
// quotes in the template ("%h").
func stringLiteralPlaceholder(e ast.Node) (int, bool) {
	lit, ok := e.(*ast.Literal)
	if !ok {
		return 0, false
	}
	s, ok := lit.Value.(string)
	if !ok {
		return 0, false
	}
	return placeholderIndex(s)
}

// ---- single-slot resolution ----

func (r *resolver) resolveExpr(e ast.Expression) (ast.Expression, error) {
	if e == nil {
		return nil, nil
	}
	if i, ok := identifierPlaceholder(e); ok {
		return coerceToExpression(r.hole(i), "expression")
	}
	if i, ok := stringLiteralPlaceholder(e); ok {
		return coerceStringLiteralContent(r.hole(i), "string literal")
	}
	if err := r.walkInto(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *resolver) resolvePattern(p ast.Pattern) (ast.Pattern, error) {
	if p == nil {
		return nil, nil
	}
	if i, ok := identifierPlaceholder(p); ok {
		return coerceToPattern(r.hole(i), "pattern")
	}
	if err := r.walkInto(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *resolver) resolveStatement(s ast.Statement) (ast.Statement, error) {
	if s == nil {
		return nil, nil
	}
	if es, ok := s.(*ast.ExpressionStatement); ok {
		if i, ok := identifierPlaceholder(es.Expression); ok {
			return coerceToStatement(r.hole(i), "statement")
		}
	}
	if err := r.walkInto(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *resolver) resolveNode(n ast.Node) (ast.Node, error) {
	if n == nil {
		return nil, nil
	}
	if i, ok := identifierPlaceholder(n); ok {
		return coerceToNode(r.hole(i), "expression")
	}
	if i, ok := stringLiteralPlaceholder(n); ok {
		return coerceStringLiteralContent(r.hole(i), "string literal")
	}
	if err := r.walkInto(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (r *resolver) resolveIdentifierField(id *ast.Identifier) (*ast.Identifier, error) {
	if id == nil {
		return nil, nil
	}
	if i, ok := placeholderIndex(id.Name); ok {
		return coerceToIdentifier(r.hole(i), "identifier")
	}
	return id, nil
}

// ---- list resolution: each element may expand to zero, one, or many ----

func (r *resolver) resolveStatements(list []ast.Statement) ([]ast.Statement, error) {
	out := make([]ast.Statement, 0, len(list))
	var errs error
	for _, s := range list {
		es, ok := s.(*ast.ExpressionStatement)
		idx, isPlaceholder := -1, false
		if ok {
			idx, isPlaceholder = identifierPlaceholder(es.Expression)
		}
		if !isPlaceholder {
			resolved, err := r.resolveStatement(s)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			out = append(out, resolved)
			continue
		}
		v := r.hole(idx)
		if isFalsy(v) {
			continue
		}
		if elems, ok := asSlice(v); ok {
			for _, elem := range elems {
				st, err := coerceToStatement(elem, "statement list")
				if err != nil {
					errs = multierr.Append(errs, err)
					continue
				}
				out = append(out, st)
			}
			continue
		}
		st, err := coerceToStatement(v, "statement list")
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, st)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func (r *resolver) resolveExpressions(list []ast.Expression) ([]ast.Expression, error) {
	out := make([]ast.Expression, 0, len(list))
	var errs error
	for _, e := range list {
		idx, isPlaceholder := identifierPlaceholder(e)
		if !isPlaceholder {
			resolved, err := r.resolveExpr(e)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			out = append(out, resolved)
			continue
		}
		v := r.hole(idx)
		if isFalsy(v) {
			continue
		}
		if elems, ok := asSlice(v); ok {
			for _, elem := range elems {
				expr, err := coerceToExpression(elem, "expression list")
				if err != nil {
					errs = multierr.Append(errs, err)
					continue
				}
				out = append(out, expr)
			}
			continue
		}
		expr, err := coerceToExpression(v, "expression list")
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, expr)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func (r *resolver) resolvePatterns(list []ast.Pattern) ([]ast.Pattern, error) {
	out := make([]ast.Pattern, 0, len(list))
	var errs error
	for _, p := range list {
		idx, isPlaceholder := identifierPlaceholder(p)
		if !isPlaceholder {
			resolved, err := r.resolvePattern(p)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			out = append(out, resolved)
			continue
		}
		v := r.hole(idx)
		if isFalsy(v) {
			continue
		}
		if elems, ok := asSlice(v); ok {
			for _, elem := range elems {
				p, err := coerceToPattern(elem, "pattern list")
				if err != nil {
					errs = multierr.Append(errs, err)
					continue
				}
				out = append(out, p)
			}
			continue
		}
		p, err := coerceToPattern(v, "pattern list")
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, p)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

// resolveProperties additionally recognizes a shorthand property whose key
// and value are both the same placeholder (the shape "%h" parses to
// inside `{ ... }`) as a splice site, so a hole bound to a *ast.Property
// or a []*ast.Property fragment built by the P entry point can be spread
// into the surrounding object.
func (r *resolver) resolveProperties(list []*ast.Property) ([]*ast.Property, error) {
	out := make([]*ast.Property, 0, len(list))
	var errs error
	for _, p := range list {
		idx, isPlaceholder := 0, false
		if p.Shorthand {
			idx, isPlaceholder = identifierPlaceholder(p.Key)
		}
		if !isPlaceholder {
			// A keyed (non-shorthand) property whose value is a lone
			// placeholder bound to a falsy hole is removed entirely,
			// not coerced into a `false`/`null` Literal: the hole is
			// standing in for the property, not for a legitimate value.
			if vidx, ok := identifierPlaceholder(p.Value); ok && isFalsy(r.hole(vidx)) {
				continue
			}
			resolved, err := r.resolveProperty(p)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			out = append(out, resolved)
			continue
		}
		v := r.hole(idx)
		if isFalsy(v) {
			continue
		}
		if elems, ok := asSlice(v); ok {
			for _, elem := range elems {
				prop, err := coerceToProperty(elem)
				if err != nil {
					errs = multierr.Append(errs, err)
					continue
				}
				out = append(out, prop)
			}
			continue
		}
		prop, err := coerceToProperty(v)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, prop)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func (r *resolver) resolveProperty(p *ast.Property) (*ast.Property, error) {
	key, err := r.resolveExpr(p.Key)
	if err != nil {
		return nil, err
	}
	p.Key = key
	value, err := r.resolveNode(p.Value)
	if err != nil {
		return nil, err
	}
	p.Value = value
	return p, nil
}

func coerceToProperty(v any) (*ast.Property, error) {
	if p, ok := v.(*ast.Property); ok {
		return p, nil
	}
	return nil, errHoleKind("property list", v)
}

// walkInto recurses into a composite node's own children, substituting
// any placeholders nested inside it. Leaf nodes with no Node-typed
// children are left untouched.
func (r *resolver) walkInto(n ast.Node) error {
	switch v := n.(type) {
	case *ast.Program:
		stmts, err := r.resolveStatements(v.Body)
		if err != nil {
			return err
		}
		v.Body = stmts

	case *ast.ExpressionStatement:
		e, err := r.resolveExpr(v.Expression)
		if err != nil {
			return err
		}
		v.Expression = e

	case *ast.BlockStatement:
		stmts, err := r.resolveStatements(v.Body)
		if err != nil {
			return err
		}
		v.Body = stmts

	case *ast.EmptyStatement:
		// no children

	case *ast.VariableDeclaration:
		for _, d := range v.Declarations {
			if err := r.resolveDeclarator(d); err != nil {
				return err
			}
		}

	case *ast.FunctionDeclaration:
		return r.resolveFunctionLike(&v.Id, &v.Params, v.Body)

	case *ast.ReturnStatement:
		e, err := r.resolveExpr(v.Argument)
		if err != nil {
			return err
		}
		v.Argument = e

	case *ast.IfStatement:
		test, err := r.resolveExpr(v.Test)
		if err != nil {
			return err
		}
		v.Test = test
		cons, err := r.resolveStatement(v.Consequent)
		if err != nil {
			return err
		}
		v.Consequent = cons
		alt, err := r.resolveStatement(v.Alternate)
		if err != nil {
			return err
		}
		v.Alternate = alt

	case *ast.ForStatement:
		init, err := r.resolveNode(v.Init)
		if err != nil {
			return err
		}
		v.Init = init
		test, err := r.resolveExpr(v.Test)
		if err != nil {
			return err
		}
		v.Test = test
		update, err := r.resolveExpr(v.Update)
		if err != nil {
			return err
		}
		v.Update = update
		body, err := r.resolveStatement(v.Body)
		if err != nil {
			return err
		}
		v.Body = body

	case *ast.ForInStatement:
		left, err := r.resolveNode(v.Left)
		if err != nil {
			return err
		}
		v.Left = left
		right, err := r.resolveExpr(v.Right)
		if err != nil {
			return err
		}
		v.Right = right
		body, err := r.resolveStatement(v.Body)
		if err != nil {
			return err
		}
		v.Body = body

	case *ast.ForOfStatement:
		left, err := r.resolveNode(v.Left)
		if err != nil {
			return err
		}
		v.Left = left
		right, err := r.resolveExpr(v.Right)
		if err != nil {
			return err
		}
		v.Right = right
		body, err := r.resolveStatement(v.Body)
		if err != nil {
			return err
		}
		v.Body = body

	case *ast.WhileStatement:
		test, err := r.resolveExpr(v.Test)
		if err != nil {
			return err
		}
		v.Test = test
		body, err := r.resolveStatement(v.Body)
		if err != nil {
			return err
		}
		v.Body = body

	case *ast.DoWhileStatement:
		body, err := r.resolveStatement(v.Body)
		if err != nil {
			return err
		}
		v.Body = body
		test, err := r.resolveExpr(v.Test)
		if err != nil {
			return err
		}
		v.Test = test

	case *ast.BreakStatement:
		label, err := r.resolveIdentifierField(v.Label)
		if err != nil {
			return err
		}
		v.Label = label

	case *ast.ContinueStatement:
		label, err := r.resolveIdentifierField(v.Label)
		if err != nil {
			return err
		}
		v.Label = label

	case *ast.ThrowStatement:
		arg, err := r.resolveExpr(v.Argument)
		if err != nil {
			return err
		}
		v.Argument = arg

	case *ast.TryStatement:
		if err := r.walkInto(v.Block); err != nil {
			return err
		}
		if v.Handler != nil {
			param, err := r.resolvePattern(v.Handler.Param)
			if err != nil {
				return err
			}
			v.Handler.Param = param
			if err := r.walkInto(v.Handler.Body); err != nil {
				return err
			}
		}
		if v.Finalizer != nil {
			if err := r.walkInto(v.Finalizer); err != nil {
				return err
			}
		}

	case *ast.LabeledStatement:
		label, err := r.resolveIdentifierField(v.Label)
		if err != nil {
			return err
		}
		v.Label = label
		body, err := r.resolveStatement(v.Body)
		if err != nil {
			return err
		}
		v.Body = body

	case *ast.SwitchStatement:
		disc, err := r.resolveExpr(v.Discriminant)
		if err != nil {
			return err
		}
		v.Discriminant = disc
		for _, c := range v.Cases {
			test, err := r.resolveExpr(c.Test)
			if err != nil {
				return err
			}
			c.Test = test
			stmts, err := r.resolveStatements(c.Consequent)
			if err != nil {
				return err
			}
			c.Consequent = stmts
		}

	case *ast.Identifier:
		// leaf, no children (placeholder case handled by caller)

	case *ast.Literal:
		// leaf

	case *ast.ThisExpression:
		// leaf

	case *ast.ArrayExpression:
		elems, err := r.resolveExpressions(v.Elements)
		if err != nil {
			return err
		}
		v.Elements = elems

	case *ast.ObjectExpression:
		props, err := r.resolveProperties(v.Properties)
		if err != nil {
			return err
		}
		v.Properties = props

	case *ast.FunctionExpression:
		return r.resolveFunctionLike(&v.Id, &v.Params, v.Body)

	case *ast.ArrowFunctionExpression:
		params, err := r.resolvePatterns(v.Params)
		if err != nil {
			return err
		}
		v.Params = params
		if v.ExpressionBody {
			body, err := r.resolveExpr(v.Body.(ast.Expression))
			if err != nil {
				return err
			}
			v.Body = body
		} else if err := r.walkInto(v.Body); err != nil {
			return err
		}

	case *ast.UnaryExpression:
		arg, err := r.resolveExpr(v.Argument)
		if err != nil {
			return err
		}
		v.Argument = arg

	case *ast.UpdateExpression:
		arg, err := r.resolveExpr(v.Argument)
		if err != nil {
			return err
		}
		v.Argument = arg

	case *ast.BinaryExpression:
		left, err := r.resolveExpr(v.Left)
		if err != nil {
			return err
		}
		v.Left = left
		right, err := r.resolveExpr(v.Right)
		if err != nil {
			return err
		}
		v.Right = right

	case *ast.LogicalExpression:
		left, err := r.resolveExpr(v.Left)
		if err != nil {
			return err
		}
		v.Left = left
		right, err := r.resolveExpr(v.Right)
		if err != nil {
			return err
		}
		v.Right = right

	case *ast.AssignmentExpression:
		left, err := r.resolveNode(v.Left)
		if err != nil {
			return err
		}
		v.Left = left
		right, err := r.resolveExpr(v.Right)
		if err != nil {
			return err
		}
		v.Right = right

	case *ast.ConditionalExpression:
		test, err := r.resolveExpr(v.Test)
		if err != nil {
			return err
		}
		v.Test = test
		cons, err := r.resolveExpr(v.Consequent)
		if err != nil {
			return err
		}
		v.Consequent = cons
		alt, err := r.resolveExpr(v.Alternate)
		if err != nil {
			return err
		}
		v.Alternate = alt

	case *ast.CallExpression:
		callee, err := r.resolveExpr(v.Callee)
		if err != nil {
			return err
		}
		v.Callee = callee
		args, err := r.resolveExpressions(v.Arguments)
		if err != nil {
			return err
		}
		v.Arguments = args

	case *ast.NewExpression:
		callee, err := r.resolveExpr(v.Callee)
		if err != nil {
			return err
		}
		v.Callee = callee
		args, err := r.resolveExpressions(v.Arguments)
		if err != nil {
			return err
		}
		v.Arguments = args

	case *ast.MemberExpression:
		obj, err := r.resolveExpr(v.Object)
		if err != nil {
			return err
		}
		v.Object = obj
		if v.Computed {
			prop, err := r.resolveExpr(v.Property)
			if err != nil {
				return err
			}
			v.Property = prop
		} else if i, ok := identifierPlaceholder(v.Property); ok {
			id, err := coerceToIdentifier(r.hole(i), "member property")
			if err != nil {
				return err
			}
			v.Property = id
		}

	case *ast.SequenceExpression:
		exprs, err := r.resolveExpressions(v.Expressions)
		if err != nil {
			return err
		}
		v.Expressions = exprs

	case *ast.SpreadElement:
		arg, err := r.resolveExpr(v.Argument)
		if err != nil {
			return err
		}
		v.Argument = arg

	case *ast.TemplateElement:
		// leaf

	case *ast.TemplateLiteral:
		exprs, err := r.resolveExpressions(v.Expressions)
		if err != nil {
			return err
		}
		v.Expressions = exprs

	case *ast.ArrayPattern:
		elems, err := r.resolvePatterns(v.Elements)
		if err != nil {
			return err
		}
		v.Elements = elems

	case *ast.ObjectPattern:
		props, err := r.resolveProperties(v.Properties)
		if err != nil {
			return err
		}
		v.Properties = props

	case *ast.AssignmentPattern:
		left, err := r.resolvePattern(v.Left)
		if err != nil {
			return err
		}
		v.Left = left
		right, err := r.resolveExpr(v.Right)
		if err != nil {
			return err
		}
		v.Right = right

	case *ast.RestElement:
		arg, err := r.resolvePattern(v.Argument)
		if err != nil {
			return err
		}
		v.Argument = arg
	}
	return nil
}

func (r *resolver) resolveDeclarator(d *ast.VariableDeclarator) error {
	id, err := r.resolvePattern(d.Id)
	if err != nil {
		return err
	}
	d.Id = id
	init, err := r.resolveExpr(d.Init)
	if err != nil {
		return err
	}
	d.Init = init
	return nil
}

func (r *resolver) resolveFunctionLike(id **ast.Identifier, params *[]ast.Pattern, body *ast.BlockStatement) error {
	resolvedID, err := r.resolveIdentifierField(*id)
	if err != nil {
		return err
	}
	*id = resolvedID
	resolvedParams, err := r.resolvePatterns(*params)
	if err != nil {
		return err
	}
	*params = resolvedParams
	return r.walkInto(body)
}
