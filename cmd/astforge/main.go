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

// Command astforge reads a template string and a JSON array of hole
// values, builds the corresponding AST fragment, prints it back to
// JavaScript source, and writes `{"code": ..., "map": ...}` to stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/astforge/astforge/ast"
	"github.com/astforge/astforge/printer"
	"github.com/astforge/astforge/template"
)

// Exit codes, mirroring the Approve/Reject/Failure convention of the
// library this command wraps: 0 for a fragment that built and printed
// cleanly, 1 for a template that failed to build or print, -1 for a usage
// or I/O failure or a hole document that cannot be read or parsed.
const (
	exitOK      = 0
	exitReject  = 1
	exitFailure = -1
)

type output struct {
	Code string            `json:"code"`
	Map  printer.SourceMap `json:"map"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("astforge", flag.ContinueOnError)
	mode := fs.String("mode", "statements", `fragment kind to build: "statements", "expression", or "property"`)
	templateFile := fs.String("template", "", "path to the template source file (required)")
	holesFile := fs.String("holes", "", "path to a JSON array of hole values, in order (optional)")
	source := fs.String("source", "", "sources[0] to record in the emitted source map (optional)")
	sourceContent := fs.String("source-content", "", "path to a file whose content is recorded as sourcesContent[0] (optional)")
	decoded := fs.Bool("decoded-mappings", false, "emit the structured decoded mappings array instead of a VLQ-encoded string")

	if err := fs.Parse(args); err != nil {
		return exitFailure
	}
	if *templateFile == "" {
		fmt.Fprintln(os.Stderr, "astforge: -template is required")
		return exitFailure
	}

	tmpl, err := os.ReadFile(*templateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "astforge: reading template: %v\n", err)
		return exitFailure
	}

	holes, err := readHoles(*holesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "astforge: reading holes: %v\n", err)
		return exitFailure
	}

	node, err := build(*mode, string(tmpl), holes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "astforge: %v\n", err)
		return exitReject
	}

	opts := printer.Options{
		SourceMapEncodeMappings: !*decoded,
	}
	if *source != "" {
		opts.SourceMapSource = *source
	}
	if *sourceContent != "" {
		content, err := os.ReadFile(*sourceContent)
		if err != nil {
			fmt.Fprintf(os.Stderr, "astforge: reading source content: %v\n", err)
			return exitFailure
		}
		opts.SourceMapContent = string(content)
	}

	code, sm, err := printer.Print(node, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "astforge: %v\n", err)
		return exitReject
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output{Code: code, Map: sm}); err != nil {
		fmt.Fprintf(os.Stderr, "astforge: encoding output: %v\n", err)
		return exitFailure
	}
	return exitOK
}

// readHoles loads a JSON array of hole values. JSON numbers arrive as
// float64 and JSON null as nil, both of which the template engine's
// coercion rules already admit; a missing path yields zero holes.
func readHoles(path string) ([]any, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var holes []any
	if err := json.Unmarshal(data, &holes); err != nil {
		return nil, fmt.Errorf("parsing holes document: %w", err)
	}
	return holes, nil
}

func build(mode, tmpl string, holes []any) (ast.Node, error) {
	switch mode {
	case "statements":
		stmts, err := template.B(tmpl, holes...)
		if err != nil {
			return nil, err
		}
		return &ast.Program{Body: stmts}, nil
	case "expression":
		return template.X(tmpl, holes...)
	case "property":
		return template.P(tmpl, holes...)
	default:
		return nil, fmt.Errorf("unknown -mode %q (want statements, expression, or property)", mode)
	}
}
