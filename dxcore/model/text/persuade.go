/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package text

import "strings"

// Persuade coerces v into a node. A *Node is returned as is; nil (including
// a nil *Node) yields nil; anything else becomes a plain node holding its
// string form.
func Persuade(v any) *Node {
	switch x := v.(type) {
	case nil:
		return nil
	case *Node:
		return x
	default:
		return NewPlain(stringOf(x))
	}
}

// PersuadeAll persuades every value and drops the nils.
func PersuadeAll(values ...any) []*Node {
	var out []*Node
	for _, v := range values {
		if n := Persuade(v); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// JoinContents persuades every non-nil value and joins the nodes' content
// strings with delimiter. Only each node's own content is used; children
// are ignored.
func JoinContents(delimiter string, values ...any) string {
	nodes := PersuadeAll(values...)
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.ContentString()
	}
	return strings.Join(parts, delimiter)
}
