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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func sampleBinary() *BinaryExpression {
	return &BinaryExpression{
		Operator: "+",
		Left:     &Identifier{Name: "a"},
		Right:    &Identifier{Name: "b"},
	}
}

func TestWalkVisitsEveryNode(t *testing.T) {
	tree := &ExpressionStatement{Expression: sampleBinary()}

	var visited []string
	v := &recordingVisitor{visit: &visited}
	require.NoError(t, Walk(v, tree))

	require.Equal(t, []string{
		"*ast.ExpressionStatement",
		"*ast.BinaryExpression",
		"*ast.Identifier",
		"*ast.Identifier",
	}, visited)
}

type recordingVisitor struct {
	visit *[]string
}

func (r *recordingVisitor) Pre(n Node) error {
	*r.visit = append(*r.visit, typeName(n))
	return nil
}

func (r *recordingVisitor) Post(Node) error { return nil }

func typeName(n Node) string {
	switch n.(type) {
	case *ExpressionStatement:
		return "*ast.ExpressionStatement"
	case *BinaryExpression:
		return "*ast.BinaryExpression"
	case *Identifier:
		return "*ast.Identifier"
	default:
		return "?"
	}
}

func TestCloneProducesStructurallyEqualButDistinctTree(t *testing.T) {
	orig := sampleBinary()
	cloned := Clone(orig).(*BinaryExpression)

	require.True(t, cmp.Equal(orig, cloned, cmpopts.IgnoreUnexported(BinaryExpression{}, Identifier{})))

	cloned.Operator = "-"
	require.Equal(t, "+", orig.Operator, "mutating the clone must not affect the original")
}
