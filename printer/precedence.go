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

import "github.com/astforge/astforge/ast"

// Precedence levels follow the standard ECMAScript operator-precedence
// table, encoded as small integers so the recursive emitter can pass a
// parent's minimum required precedence down the call stack and decide
// parenthesization structurally rather than by inspecting source text.
const (
	precSequence = iota
	precAssignment
	precConditional
	precNullish
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
	precUnary
	precPostfix
	precCallNew
	precMember
	precPrimary
)

var binaryOperatorPrecedence = map[string]int{
	"|":          precBitwiseOr,
	"^":          precBitwiseXor,
	"&":          precBitwiseAnd,
	"==":         precEquality,
	"!=":         precEquality,
	"===":        precEquality,
	"!==":        precEquality,
	"<":          precRelational,
	">":          precRelational,
	"<=":         precRelational,
	">=":         precRelational,
	"in":         precRelational,
	"instanceof": precRelational,
	"<<":         precShift,
	">>":         precShift,
	">>>":        precShift,
	"+":          precAdditive,
	"-":          precAdditive,
	"*":          precMultiplicative,
	"/":          precMultiplicative,
	"%":          precMultiplicative,
	"**":         precExponent,
}

var logicalOperatorPrecedence = map[string]int{
	"??": precNullish,
	"||": precLogicalOr,
	"&&": precLogicalAnd,
}

// exprPrecedence reports the precedence level of e's outermost operator,
// i.e. the level a parent must require for e to print without
// parentheses.
func exprPrecedence(e ast.Expression) int {
	switch n := e.(type) {
	case *ast.SequenceExpression:
		return precSequence
	case *ast.AssignmentExpression:
		return precAssignment
	case *ast.ArrowFunctionExpression:
		return precAssignment
	case *ast.ConditionalExpression:
		return precConditional
	case *ast.LogicalExpression:
		return logicalOperatorPrecedence[n.Operator]
	case *ast.BinaryExpression:
		return binaryOperatorPrecedence[n.Operator]
	case *ast.UnaryExpression:
		return precUnary
	case *ast.UpdateExpression:
		if n.Prefix {
			return precUnary
		}
		return precPostfix
	case *ast.NewExpression:
		if len(n.Arguments) == 0 {
			// `new Foo` without a call suffix binds like a member
			// access, so `new Foo.bar()` must parenthesize `new Foo`.
			return precMember
		}
		return precCallNew
	case *ast.CallExpression:
		return precCallNew
	case *ast.MemberExpression:
		return precMember
	default:
		return precPrimary
	}
}

// isRightAssociative reports whether op (a BinaryExpression/
// LogicalExpression operator) associates right-to-left, the one
// exception being exponentiation.
func isRightAssociative(op string) bool {
	return op == "**"
}
