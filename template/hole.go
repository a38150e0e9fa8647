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
	"fmt"
	"reflect"

	"github.com/astforge/astforge/ast"
)

// isFalsy reports whether v is one of the three admissible "elide this
// element" hole values: false, nil, or an explicitly nil AST/pointer
// value standing in for JS's undefined.
func isFalsy(v any) bool {
	if v == nil {
		return true
	}
	if b, ok := v.(bool); ok && !b {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		return rv.IsNil()
	}
	return false
}

// asSlice reports whether v is a slice (of any element type, including
// []ast.Expression, []*ast.Property, []ast.Statement, []ast.Node, or
// []any) and returns its elements boxed as []any, flattening the single
// level of structure a hole may introduce.
func asSlice(v any) ([]any, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asNumber reports whether v is one of the admissible numeric hole kinds
// and returns its value (int and int64 unchanged, float32 widened to
// float64) plus its source text: integral values without a decimal
// point, other floats in %g form.
func asNumber(v any) (value any, raw string, ok bool) {
	switch n := v.(type) {
	case int:
		return n, fmt.Sprintf("%d", n), true
	case int64:
		return n, fmt.Sprintf("%d", n), true
	case float64:
		return n, formatFloat(n), true
	case float32:
		return float64(n), formatFloat(float64(n)), true
	}
	return nil, "", false
}

func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asNode(v any) (ast.Node, bool) {
	n, ok := v.(ast.Node)
	return n, ok
}
