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
	stderrors "errors"
	"testing"

	"dirpx.dev/dxtext/dxcore/errors"
	"dirpx.dev/dxtext/dxcore/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeybind(t *testing.T) {
	n, err := NewKeybind("key.jump")
	require.NoError(t, err)
	assert.Equal(t, Keybind, n.Type())
	assert.Equal(t, `{"keybind":"key.jump"}`, n.String())

	_, err = NewKeybind("")
	var iae *errors.InvalidArgumentError
	require.True(t, stderrors.As(err, &iae))
	assert.Equal(t, "KeybindContent", iae.Type)
}

func TestNode_SetContent(t *testing.T) {
	t.Run("same discriminant", func(t *testing.T) {
		n := NewPlain("a")
		require.NoError(t, n.SetContent(PlainContent{Value: 7}))
		assert.Equal(t, `{"text":7}`, n.String())
	})

	t.Run("different discriminant", func(t *testing.T) {
		n := NewPlain("a")
		err := n.SetContent(TranslateContent{Key: "chat.type.text"})
		var iae *errors.InvalidArgumentError
		require.True(t, stderrors.As(err, &iae))
		assert.Equal(t, Plain, n.Type())
		assert.Equal(t, "a", n.ContentString())
	})

	t.Run("pointer variant", func(t *testing.T) {
		n := NewPlain("a")
		assert.Error(t, n.SetContent(&PlainContent{Value: "b"}))
	})

	t.Run("nil", func(t *testing.T) {
		assert.Error(t, NewPlain("a").SetContent(nil))
	})

	t.Run("translation helpers", func(t *testing.T) {
		n := NewTranslated("a", "x")
		require.NoError(t, n.SetTranslation("b"))
		require.NoError(t, n.SetWith("y", 2))
		assert.Equal(t, `{"translate":"b","with":["y",2]}`, n.String())

		assert.Error(t, NewPlain("a").SetTranslation("b"))
		assert.Error(t, NewPlain("a").SetWith("b"))
	})

	t.Run("content copy is detached", func(t *testing.T) {
		n := NewTranslated("k", "x")
		c := n.Content().(TranslateContent)
		c.With[0] = "changed"
		assert.Equal(t, `{"translate":"k","with":["x"]}`, n.String())
	})
}

func TestNode_AddChildren(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		root := NewPlain("")
		require.NoError(t, root.AddChildren(NewPlain("a"), NewPlain("b")))
		require.NoError(t, root.AddChildren(NewPlain("c")))
		assert.Equal(t, `{"text":"","extra":[{"text":"a"},{"text":"b"},{"text":"c"}]}`, root.String())
	})

	t.Run("self", func(t *testing.T) {
		n := NewPlain("a")
		err := n.AddChildren(n)
		var cyc *errors.CyclicStructureError
		require.True(t, stderrors.As(err, &cyc))
		assert.Empty(t, n.Children())
	})

	t.Run("through intermediate chain", func(t *testing.T) {
		a, b, c := NewPlain("a"), NewPlain("b"), NewPlain("c")
		require.NoError(t, a.AddChildren(b))
		require.NoError(t, b.AddChildren(c))

		var cyc *errors.CyclicStructureError
		assert.True(t, stderrors.As(c.AddChildren(a), &cyc))
		assert.True(t, stderrors.As(c.AddChildren(b), &cyc))
	})

	t.Run("through translation argument", func(t *testing.T) {
		a := NewPlain("a")
		b := NewTranslated("%s", a)
		var cyc *errors.CyclicStructureError
		assert.True(t, stderrors.As(a.AddChildren(b), &cyc))
	})

	t.Run("through hover text", func(t *testing.T) {
		a, b := NewPlain("a"), NewPlain("b")
		require.NoError(t, b.SetEvent(ShowText(a)))
		var cyc *errors.CyclicStructureError
		assert.True(t, stderrors.As(a.AddChildren(b), &cyc))
	})

	t.Run("all or nothing", func(t *testing.T) {
		n := NewPlain("a")
		err := n.AddChildren(NewPlain("b"), nil)
		var iae *errors.InvalidArgumentError
		require.True(t, stderrors.As(err, &iae))
		assert.Empty(t, n.Children())

		assert.Error(t, n.AddChildren(NewPlain("b"), n))
		assert.Empty(t, n.Children())
	})

	t.Run("unrelated nodes", func(t *testing.T) {
		shared := NewPlain("s")
		a, b := NewPlain("a"), NewPlain("b")
		require.NoError(t, a.AddChildren(shared))
		require.NoError(t, b.AddChildren(shared, a))
	})
}

func TestNode_RemoveChildren(t *testing.T) {
	a, b, c := NewPlain("x"), NewPlain("x"), NewPlain("y")
	root := NewPlain("")
	require.NoError(t, root.AddChildren(a, b, c))

	root.RemoveChildren(b, NewPlain("x"))
	children := root.Children()
	require.Len(t, children, 2)
	assert.Same(t, a, children[0], "removal matches identity, not equality")
	assert.Same(t, c, children[1])

	root.RemoveChildren(nil)
	assert.Len(t, root.Children(), 2)

	root.ClearChildren()
	assert.Empty(t, root.Children())
}

func TestNode_SetEvent(t *testing.T) {
	n := NewPlain("a")
	require.NoError(t, n.SetEvent(RunCommand("/a")))
	require.NoError(t, n.SetEvent(SuggestCommand("/b")))

	assert.Len(t, n.Events(), 1, "one binding per kind")
	got, _ := n.ClickEvent().Text()
	assert.Equal(t, "/b", got)
	assert.Nil(t, n.HoverEvent())

	require.NoError(t, n.SetEvent(ShowText("tip")))
	assert.True(t, n.HasEvent(Hover))
	events := n.Events()
	require.Len(t, events, 2)
	assert.Equal(t, Click, events[0].Kind())
	assert.Equal(t, Hover, events[1].Kind())

	n.RemoveEvent(Click)
	assert.False(t, n.HasEvent(Click))
	_, ok := n.Event(Click)
	assert.False(t, ok)

	var iae *errors.InvalidArgumentError
	assert.True(t, stderrors.As(n.SetEvent(nil), &iae))
	assert.True(t, stderrors.As(n.SetEvent((*HoverEvent)(nil)), &iae))

	var cyc *errors.CyclicStructureError
	assert.True(t, stderrors.As(n.SetEvent(ShowText(n)), &cyc))
}

func TestNode_SetValueCycle(t *testing.T) {
	parent, child := NewPlain("p"), NewPlain("c")
	require.NoError(t, parent.AddChildren(child))

	var cyc *errors.CyclicStructureError
	assert.True(t, stderrors.As(child.SetValue(parent), &cyc))
	assert.Equal(t, "c", child.ContentString())

	tr := NewTranslated("%s")
	require.NoError(t, parent.AddChildren(tr))
	assert.True(t, stderrors.As(tr.SetWith(parent), &cyc))
}

func TestNode_EqualAndHash(t *testing.T) {
	build := func() *Node {
		n := NewTranslated("%s joined the game", "Whirvis").SetColor("yellow").SetItalic(false)
		_ = n.AddChildren(NewPlain("!").SetBold(true))
		_ = n.SetEvent(ShowText("player"))
		return n
	}

	a, b := build(), build()
	assert.NotSame(t, a, b)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.True(t, model.Equal(a, b))

	b.SetItalic(true)
	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Hash(), b.Hash())

	bad := NewPlain(struct{}{})
	assert.False(t, bad.Equal(bad), "nodes that fail to encode are never equal")
	assert.Zero(t, bad.Hash())
}

func TestNode_Clone(t *testing.T) {
	arg := NewPlain("arg")
	n := NewTranslated("k", arg).SetBold(true)
	_ = n.AddChildren(NewPlain("child"))
	_ = n.SetEvent(RunCommand("/x"))

	c := n.Clone()
	assert.True(t, n.Equal(c))

	arg.SetColor("red")
	c.Children()[0].SetItalic(true)
	require.NoError(t, c.ClickEvent().SetText("/y"))
	c.SetBold(false)

	assert.Equal(t, `{"translate":"k","with":[{"text":"arg","color":"red"}],"extra":[{"text":"child"}],"bold":true,"clickEvent":{"action":"run_command","value":"/x"}}`, n.String())
	assert.Equal(t, `{"translate":"k","with":[{"text":"arg"}],"extra":[{"text":"child","italic":true}],"bold":false,"clickEvent":{"action":"run_command","value":"/y"}}`, c.String())
}

func TestNode_Model(t *testing.T) {
	var zero Node
	assert.True(t, zero.IsZero())
	assert.Equal(t, Plain, zero.Type())
	assert.Equal(t, `{"text":""}`, zero.String())
	assert.Equal(t, "TextNode", zero.TypeName())

	n := NewPlain("secret token").SetColor("red")
	_ = n.SetEvent(RunCommand("/login hunter2"))
	_ = n.AddChildren(NewPlain("x"))
	assert.False(t, n.IsZero())

	redacted := n.Redacted()
	assert.NotContains(t, redacted, "secret")
	assert.NotContains(t, redacted, "hunter2")
	assert.Contains(t, redacted, "style=[color]")
	assert.Contains(t, redacted, "extra=1")
	assert.Equal(t, redacted, model.SafeString(n, false))
	assert.Equal(t, n.String(), model.SafeString(n, true))

	assert.NoError(t, n.Validate())
	err := NewPlain(map[string]int{}).Validate()
	var uct *errors.UnsupportedContentTypeError
	require.True(t, stderrors.As(err, &uct))
	assert.Equal(t, "map[string]int", uct.GoType)
}

func TestNode_YAML(t *testing.T) {
	n := NewPlain("hi").SetBold(true)
	_ = n.AddChildren(NewPlain("there"))

	out, err := model.ToYAML(n)
	require.NoError(t, err)
	assert.Equal(t, "text: hi\nextra:\n    - text: there\nbold: true\n", string(out))
}

func TestNode_PlainText(t *testing.T) {
	n := NewTranslated("%s joined the game", NewPlain("Whirvis").SetColor("gold"))
	_ = n.AddChildren(NewPlain(" (again)"))
	assert.Equal(t, "Whirvis joined the game (again)", n.PlainText())

	k, err := NewKeybind("key.jump")
	require.NoError(t, err)
	assert.Equal(t, "key.jump", k.PlainText())
}
