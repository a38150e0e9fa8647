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

import "strings"

// Sigil identifiers ("@name", "#name") are not valid ECMAScript and the
// underlying parser (goja) rejects them outright. Before handing source
// text to goja we tunnel each sigil character through a reserved prefix
// that IS a valid identifier start/continue character sequence under any
// ECMAScript tokenizer, then restore the original sigil character in every
// Identifier name produced by the conversion pass. The tunnel prefixes are
// chosen to be vanishingly unlikely to collide with a user-written
// identifier.
const (
	atTunnel   = "__AT_SIGIL__"
	hashTunnel = "__HASH_SIGIL__"
)

// tunnelSigils rewrites "@" and "#" occurring in identifier-start or
// identifier-continue position into their tunnel sequences. It is a
// textual, not lexical, rewrite: "@" and "#" never legally appear outside
// of identifiers or (for "#") private class member names in ECMAScript,
// so a blanket substring replacement is safe for the template fragments
// this adapter parses (it never sees string or regex literals containing
// the JS source text of another program).
func tunnelSigils(src string) string {
	if !strings.ContainsAny(src, "@#") {
		return src
	}
	src = strings.ReplaceAll(src, "@", atTunnel)
	src = strings.ReplaceAll(src, "#", hashTunnel)
	return src
}

// restoreSigil undoes tunnelSigils on a single identifier name, recovering
// the original sigil character.
func restoreSigil(name string) string {
	if strings.Contains(name, atTunnel) {
		return "@" + strings.Replace(name, atTunnel, "", 1)
	}
	if strings.Contains(name, hashTunnel) {
		return "#" + strings.Replace(name, hashTunnel, "", 1)
	}
	return name
}
