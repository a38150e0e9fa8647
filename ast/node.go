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

// Package ast defines the ESTree-shaped node set that the template engine
// builds and the printer consumes. The variant set and field names follow
// the ESTree specification (identifiers, literals, expressions, statements,
// patterns, declarations; classes, modules and JSX are excluded).
package ast

// Position is a 1-based line / 0-based column pair, following the
// convention used by ESTree's loc.start/loc.end.
type Position struct {
	Line   int
	Column int
}

// Loc carries the original-location metadata a node may be decorated with.
// It is opaque to the template engine but consumed by the printer for
// source mapping.
type Loc struct {
	// Start and End are the source-location positions, or nil if the node
	// was constructed programmatically rather than parsed.
	Start *Position
	End   *Position
	// Range holds the start/end byte offsets, when known.
	Range [2]int
}

// Comment is a leading or trailing line/block comment attached to a node.
type Comment struct {
	Text  string
	Block bool
	Loc   *Loc
}

// Node is the interface that every AST node must implement.
type Node interface {
	// node ensures that only ast nodes can be assigned to Node.
	node()
	// Location returns the node's source-location metadata, or nil if
	// the node carries none.
	Location() *Loc
	// Comments returns the leading and trailing comments attached to
	// the node, in that order.
	Comments() (leading, trailing []*Comment)
}

// Statement is the interface implemented by statement-position nodes.
type Statement interface {
	Node
	stmt()
}

// Expression is the interface implemented by expression-position nodes.
type Expression interface {
	Node
	expr()
}

// Pattern is the interface implemented by binding-position nodes (function
// parameters, declarators, destructuring targets).
type Pattern interface {
	Node
	pattern()
}

// base is embedded in every node to provide the common location/comment
// bookkeeping without repeating it per variant.
type base struct {
	Loc              *Loc
	LeadingComments  []*Comment
	TrailingComments []*Comment
}

func (b *base) node() {}

func (b *base) Location() *Loc { return b.Loc }

func (b *base) Comments() (leading, trailing []*Comment) {
	return b.LeadingComments, b.TrailingComments
}

// SetLoc attaches source-location metadata to a node. Exposed so that
// out-of-package builders (the parser adapter, the template engine) can
// populate location data without needing access to the unexported base
// field itself.
func (b *base) SetLoc(loc *Loc) { b.Loc = loc }

// SetComments attaches leading/trailing comments to a node.
func (b *base) SetComments(leading, trailing []*Comment) {
	b.LeadingComments = leading
	b.TrailingComments = trailing
}
