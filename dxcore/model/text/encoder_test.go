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
	"bytes"
	stderrors "errors"
	"math"
	"testing"

	"dirpx.dev/dxtext/dxcore/errors"
	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_Documents(t *testing.T) {
	tests := []struct {
		name string
		node func() *Node
		want string
	}{
		{
			name: "plain text",
			node: func() *Node { return NewPlain("hello") },
			want: `{"text":"hello"}`,
		},
		{
			name: "translation with argument",
			node: func() *Node { return NewTranslated("%s joined the game", "Whirvis") },
			want: `{"translate":"%s joined the game","with":["Whirvis"]}`,
		},
		{
			name: "translation without arguments",
			node: func() *Node { return NewTranslated("multiplayer.disconnect.kicked") },
			want: `{"translate":"multiplayer.disconnect.kicked"}`,
		},
		{
			name: "hex colour",
			node: func() *Node { return NewPlain("x").SetColorRGB(0x00FF00) },
			want: `{"text":"x","color":"#00ff00"}`,
		},
		{
			name: "explicit false is kept",
			node: func() *Node { return NewPlain("x").SetBold(false) },
			want: `{"text":"x","bold":false}`,
		},
		{
			name: "style keys in declared order",
			node: func() *Node {
				return NewPlain("x").
					SetInsertion("ins").SetObfuscated(true).SetStrikethrough(true).SetUnderlined(true).
					SetItalic(true).SetBold(true).SetFont("minecraft:alt").SetColor("red")
			},
			want: `{"text":"x","color":"red","font":"minecraft:alt","bold":true,"italic":true,"underlined":true,"strikethrough":true,"obfuscated":true,"insertion":"ins"}`,
		},
		{
			name: "scalars",
			node: func() *Node {
				return NewTranslated("k", true, Char('é'), int8(-3), uint64(7), float32(1.5), 2.25, json.RawMessage(`{"score":{"name":"@p"}}`))
			},
			want: `{"translate":"k","with":[true,"é",-3,7,1.5,2.25,{"score":{"name":"@p"}}]}`,
		},
		{
			name: "nested node argument",
			node: func() *Node { return NewTranslated("%s", NewPlain("a").SetBold(true)) },
			want: `{"translate":"%s","with":[{"text":"a","bold":true}]}`,
		},
		{
			name: "nil plain value",
			node: func() *Node { return NewPlain(nil) },
			want: `{"text":""}`,
		},
		{
			name: "children carry their own style only",
			node: func() *Node {
				n := NewPlain("a").SetColor("gold").SetBold(true)
				_ = n.AddChildren(NewPlain("b"), NewPlain("c").SetBold(false))
				return n
			},
			want: `{"text":"a","extra":[{"text":"b"},{"text":"c","bold":false}],"color":"gold","bold":true}`,
		},
		{
			name: "events after style",
			node: func() *Node {
				n := NewPlain("a").SetUnderlined(true)
				_ = n.SetEvent(ShowText("b"))
				_ = n.SetEvent(RunCommand("/c"))
				return n
			},
			want: `{"text":"a","underlined":true,"clickEvent":{"action":"run_command","value":"/c"},"hoverEvent":{"action":"show_text","contents":{"text":"b"}}}`,
		},
		{
			name: "html characters stay literal",
			node: func() *Node { return NewPlain("<3 & >_<") },
			want: `{"text":"<3 & >_<"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalString(tt.node())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type (
	stackSize  int
	playerName string
	ratio      float32
	toggled    bool
	itemSlot   uint8
)

func TestEncoder_NamedScalars(t *testing.T) {
	n := NewTranslated("k", stackSize(3), playerName("Steve"), ratio(0.5), toggled(true), itemSlot(9))
	got, err := MarshalString(n)
	require.NoError(t, err)
	assert.Equal(t, `{"translate":"k","with":[3,"Steve",0.5,true,9]}`, got)

	got, err = MarshalString(NewPlain(playerName("<Steve>")))
	require.NoError(t, err)
	assert.Equal(t, `{"text":"<Steve>"}`, got)

	_, err = Marshal(NewPlain(ratio(float32(math.NaN()))))
	var uct *errors.UnsupportedContentTypeError
	assert.True(t, stderrors.As(err, &uct))
}

func TestEncoder_RawMessageValues(t *testing.T) {
	n := NewPlain("hi")
	require.NoError(t, n.AddChildren(
		NewPlain(json.RawMessage(`{"a": 1}`)),
		NewTranslated("k", json.RawMessage(`"x"`)),
	))

	got, err := Marshal(n)
	require.NoError(t, err)
	assert.True(t, json.Valid(got), string(got))
	assert.Equal(t, `{"text":"hi","extra":[{"text":{"a":1}},{"translate":"k","with":["x"]}]}`, string(got))

	assert.Equal(t, `{"text":"x"}`, NewPlain(json.RawMessage(`"x"`)).String())
	assert.True(t, n.Equal(n.Clone()))
}

func TestEncoder_HTMLCharacters(t *testing.T) {
	n := NewTranslated("%s", "<b>&</b>")
	_ = n.SetEvent(CopyToClipboard("a&b"))

	got, err := MarshalString(n)
	require.NoError(t, err)
	assert.Equal(t, `{"translate":"%s","with":["<b>&</b>"],"clickEvent":{"action":"copy_to_clipboard","value":"a&b"}}`, got)

	got, err = NewEncoder(WithEscapeHTML(true)).MarshalString(n)
	require.NoError(t, err)
	assert.Equal(t, `{"translate":"%s","with":["\u003cb\u003e\u0026\u003c/b\u003e"],"clickEvent":{"action":"copy_to_clipboard","value":"a\u0026b"}}`, got)
}

func TestEncoder_UnsetStyleIsOmitted(t *testing.T) {
	data, err := Marshal(NewPlain("x"))
	require.NoError(t, err)

	for _, f := range StyleFields {
		_, _, _, err := jsonparser.Get(data, f.String())
		assert.ErrorIs(t, err, jsonparser.KeyPathNotFoundError, f.String())
	}
	_, _, _, err = jsonparser.Get(data, "extra")
	assert.ErrorIs(t, err, jsonparser.KeyPathNotFoundError)
}

func TestEncoder_PayloadPolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy PayloadPolicy
		event  Event
		want   string
	}{
		{"omit click", OmitPayload, clickWithAction(t, ActionOpenURL), `{"action":"open_url"}`},
		{"null click", NullPayload, clickWithAction(t, ActionOpenURL), `{"action":"open_url","value":null}`},
		{"omit hover", OmitPayload, ShowText(), `{"action":"show_text"}`},
		{"null hover", NullPayload, NewHoverEvent().ShowItem(nil), `{"action":"show_item","contents":null}`},
		{"omit unset action", OmitPayload, NewClickEvent(), `{}`},
		{"null unset action", NullPayload, NewClickEvent(), `{"action":null,"value":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := NewEncoder(WithPayloadPolicy(tt.policy))
			assert.Equal(t, tt.policy, enc.Policy())

			n := NewPlain("x")
			require.NoError(t, n.SetEvent(tt.event))
			data, err := enc.Marshal(n)
			require.NoError(t, err)

			got, _, _, err := jsonparser.Get(data, tt.event.Kind().Key())
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func clickWithAction(t *testing.T, a Action) *ClickEvent {
	t.Helper()
	e := NewClickEvent()
	require.NoError(t, e.SetAction(a))
	return e
}

func TestEncoder_Options(t *testing.T) {
	n := NewPlain("a")
	_ = n.AddChildren(NewPlain("c"))

	t.Run("indent", func(t *testing.T) {
		got, err := NewEncoder(WithIndent("", "  ")).MarshalString(n)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"text\": \"a\",\n  \"extra\": [\n    {\n      \"text\": \"c\"\n    }\n  ]\n}", got)
	})

	t.Run("escape html", func(t *testing.T) {
		got, err := NewEncoder(WithEscapeHTML(true)).MarshalString(NewPlain("<b>"))
		require.NoError(t, err)
		assert.Equal(t, `{"text":"\u003cb\u003e"}`, got)
	})

	t.Run("encode ignores formatting options", func(t *testing.T) {
		obj, err := NewEncoder(WithIndent(">", "\t")).Encode(n)
		require.NoError(t, err)
		assert.Equal(t, []string{"text", "extra"}, obj.Keys())
	})
}

func TestEncoder_Logging(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	n := NewPlain("a")
	_ = n.AddChildren(NewPlain("b"), NewPlain("c"))
	_, err := enc.Encode(n)
	require.NoError(t, err)

	line := buf.Bytes()
	msg, err := jsonparser.GetString(line, "message")
	require.NoError(t, err)
	assert.Equal(t, "encoded text node", msg)
	count, err := jsonparser.GetInt(line, "nodes")
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	buf.Reset()
	_, err = enc.Encode(NewPlain(make(chan int)))
	require.Error(t, err)
	msg, _ = jsonparser.GetString(buf.Bytes(), "message")
	assert.Equal(t, "text node encoding failed", msg)
	assert.NotContains(t, buf.String(), `"a"`, "payloads are never logged")
}

func TestEncoder_Errors(t *testing.T) {
	t.Run("unsupported plain value", func(t *testing.T) {
		_, err := Marshal(NewPlain([]string{"a"}))
		var uct *errors.UnsupportedContentTypeError
		require.True(t, stderrors.As(err, &uct))
		assert.Equal(t, "PlainContent", uct.Type)
		assert.Equal(t, "[]string", uct.GoType)
	})

	t.Run("unsupported argument", func(t *testing.T) {
		_, err := Marshal(NewTranslated("k", "ok", struct{ X int }{1}))
		var uct *errors.UnsupportedContentTypeError
		require.True(t, stderrors.As(err, &uct))
		assert.Equal(t, "TranslateContent", uct.Type)
	})

	t.Run("non-finite float", func(t *testing.T) {
		_, err := Marshal(NewPlain(math.Inf(1)))
		var uct *errors.UnsupportedContentTypeError
		assert.True(t, stderrors.As(err, &uct))
	})

	t.Run("error in child", func(t *testing.T) {
		n := NewPlain("a")
		_ = n.AddChildren(NewPlain(func() {}))
		_, err := Marshal(n)
		var uct *errors.UnsupportedContentTypeError
		assert.True(t, stderrors.As(err, &uct))
	})

	t.Run("nil node", func(t *testing.T) {
		_, err := Encode(nil)
		var iae *errors.InvalidArgumentError
		assert.True(t, stderrors.As(err, &iae))
	})

	t.Run("cycle introduced through a binding", func(t *testing.T) {
		n := NewPlain("a")
		h := ShowText("tip")
		require.NoError(t, n.SetEvent(h))
		h.Show(n)

		_, err := Marshal(n)
		var cyc *errors.CyclicStructureError
		require.True(t, stderrors.As(err, &cyc))
	})
}

func TestEncodeAll(t *testing.T) {
	arr, err := EncodeAll("a", nil, NewPlain("b").SetBold(true), 3)
	require.NoError(t, err)
	require.Len(t, arr, 3)

	data, err := MarshalAll("a", nil, NewPlain("b").SetBold(true), 3)
	require.NoError(t, err)
	assert.Equal(t, `[{"text":"a"},{"text":"b","bold":true},{"text":"3"}]`, string(data))

	arr, err = EncodeAll(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, arr)

	data, err = MarshalAll()
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestObject(t *testing.T) {
	obj := NewObject().Set("b", 1).Set("a", Char('x')).Set("b", 2)
	assert.Equal(t, []string{"b", "a"}, obj.Keys())
	assert.Equal(t, 2, obj.Len())
	assert.Equal(t, `{"b":2,"a":"x"}`, obj.String())

	v, ok := obj.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	obj.Set("list", Array{nil, "s", NewObject()})
	assert.Equal(t, `{"b":2,"a":"x","list":[null,"s",{}]}`, obj.String())

	// Encoding a plain value that is itself a built object embeds it.
	n := NewPlain(NewObject().Set("k", "v"))
	assert.Equal(t, `{"text":{"k":"v"}}`, n.String())
}
