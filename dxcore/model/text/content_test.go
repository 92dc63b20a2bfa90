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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentType(t *testing.T) {
	tests := []struct {
		input string
		want  ContentType
	}{
		{"text", Plain},
		{"plain", Plain},
		{"translate", Translate},
		{"keybind", Keybind},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseContentType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseContentType("score")
	assert.Error(t, err)

	b, err := Translate.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "translate", string(b))

	_, err = ContentType(9).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "unknown", ContentType(9).String())
}

func TestContent_String(t *testing.T) {
	assert.Equal(t, "42", PlainContent{Value: 42}.String())
	assert.Equal(t, "", PlainContent{}.String())
	assert.Equal(t, "z", PlainContent{Value: Char('z')}.String())
	assert.Equal(t, "inner", PlainContent{Value: NewPlain("inner")}.String())
	assert.Equal(t, "chat.type.text", TranslateContent{Key: "chat.type.text", With: []any{"a"}}.String())
	assert.Equal(t, "key.sneak", KeybindContent{Keybind: "key.sneak"}.String())
}

func TestPersuade(t *testing.T) {
	n := NewPlain("a")
	assert.Same(t, n, Persuade(n))
	assert.Nil(t, Persuade(nil))
	assert.Nil(t, Persuade((*Node)(nil)))

	p := Persuade(3.5)
	require.NotNil(t, p)
	assert.Equal(t, `{"text":"3.5"}`, p.String())

	assert.Len(t, PersuadeAll("a", nil, 1, (*Node)(nil)), 2)
	assert.Empty(t, PersuadeAll())
}

func TestJoinContents(t *testing.T) {
	tr := NewTranslated("chat.type.text", "ignored")
	parent := NewPlain("head")
	_ = parent.AddChildren(NewPlain("tail"))

	tests := []struct {
		name      string
		delimiter string
		values    []any
		want      string
	}{
		{"empty", ", ", nil, ""},
		{"no delimiter", "", []any{"a", "b", 1}, "ab1"},
		{"skips nils", "-", []any{nil, "a", nil, "b"}, "a-b"},
		{"node contents only", " ", []any{tr, parent}, "chat.type.text head"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinContents(tt.delimiter, tt.values...))
		})
	}
}

func TestTranslateContent_Format(t *testing.T) {
	tests := []struct {
		name string
		key  string
		with []any
		want string
	}{
		{"sequential", "%s joined the game", []any{"Whirvis"}, "Whirvis joined the game"},
		{"indexed", "%2$s, %1$s", []any{"a", "b"}, "b, a"},
		{"mixed", "%s %1$s %s", []any{"a", "b"}, "a a b"},
		{"missing arguments", "%s and %s", []any{"a"}, "a and "},
		{"excess arguments", "%s", []any{"a", "b", "c"}, "a"},
		{"literal percent", "100%% %s", []any{"done"}, "100% done"},
		{"unknown verb", "%d%", []any{1}, "%d%"},
		{"index zero", "%0$s!", []any{"a"}, "!"},
		{"nested node", "<%s>", []any{NewPlain("n")}, "<n>"},
		{"no placeholders", "menu.quit", []any{"x"}, "menu.quit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateContent{Key: tt.key, With: tt.with}.Format())
		})
	}
}
