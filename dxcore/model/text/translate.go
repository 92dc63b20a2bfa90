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

import (
	"strconv"
	"strings"
)

// Format renders a local preview of the translation by treating the key as
// a format string:
//
//	%s    the next argument
//	%N$s  argument N, counting from 1
//	%%    a literal percent sign
//
// Missing arguments render as the empty string and surplus arguments are
// ignored. Any other '%' sequence is copied through unchanged.
//
// The preview is not authoritative. The client resolves the key against its
// own language files, and the encoder never calls Format.
func (c TranslateContent) Format() string {
	return c.format(stringOf)
}

func (c TranslateContent) format(str func(any) string) string {
	arg := func(i int) string {
		if i < 0 || i >= len(c.With) {
			return ""
		}
		return str(c.With[i])
	}

	var sb strings.Builder
	key := c.Key
	next := 0
	for {
		i := strings.IndexByte(key, '%')
		if i < 0 || i == len(key)-1 {
			sb.WriteString(key)
			return sb.String()
		}
		sb.WriteString(key[:i])
		rest := key[i+1:]

		switch {
		case rest[0] == '%':
			sb.WriteByte('%')
			key = rest[1:]
		case rest[0] == 's':
			sb.WriteString(arg(next))
			next++
			key = rest[1:]
		default:
			j := 0
			for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
				j++
			}
			if j > 0 && strings.HasPrefix(rest[j:], "$s") {
				n, _ := strconv.Atoi(rest[:j])
				sb.WriteString(arg(n - 1))
				key = rest[j+2:]
				continue
			}
			sb.WriteByte('%')
			key = rest
		}
	}
}
