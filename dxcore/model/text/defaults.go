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

// Display defaults. These are the values the client assumes when an
// attribute is absent from a document. Display accessors (DisplayColor,
// IsBold, DisplayCount, ...) fall back to them; the encoder never reads them.
const (
	DefaultColor      = "white"
	DefaultFont       = "minecraft:default"
	DefaultInsertion  = ""
	DefaultItemID     = "minecraft:air"
	DefaultItemCount  = 1
	DefaultEntityType = "minecraft:pig"
)

func stringOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}

func boolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func ptr[T any](v T) *T {
	return &v
}
