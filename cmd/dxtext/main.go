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

// Command dxtext builds a single text component from flags and prints its
// JSON (or YAML) document.
//
//	dxtext -translate "%s joined the game" -with Whirvis -color yellow
//	dxtext -text "[rules]" -bold true -click run_command=/rules -hover "Read the rules" -tellraw @a
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"dirpx.dev/dxtext/dxcore/config"
	"dirpx.dev/dxtext/dxcore/model"
	"dirpx.dev/dxtext/dxcore/model/text"
	"dirpx.dev/dxtext/dxcore/preview"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// stringList collects a repeatable flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type options struct {
	text      string
	translate string
	with      stringList
	keybind   string

	color         string
	font          string
	bold          string
	italic        string
	underlined    string
	strikethrough string
	obfuscated    string
	insertion     string

	click string
	hover stringList

	config  string
	pretty  bool
	yaml    bool
	preview bool
	tellraw string

	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{set: make(map[string]bool)}
	fs := flag.NewFlagSet("dxtext", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.text, "text", "", "Plain text content")
	fs.StringVar(&o.translate, "translate", "", "Translation key content")
	fs.Var(&o.with, "with", "Translation argument (repeatable)")
	fs.StringVar(&o.keybind, "keybind", "", "Keybind content, e.g. key.jump")

	fs.StringVar(&o.color, "color", "", "Named colour, legacy code or #rrggbb")
	fs.StringVar(&o.font, "font", "", "Font identifier")
	fs.StringVar(&o.bold, "bold", "", "Bold flag (true or false)")
	fs.StringVar(&o.italic, "italic", "", "Italic flag (true or false)")
	fs.StringVar(&o.underlined, "underlined", "", "Underlined flag (true or false)")
	fs.StringVar(&o.strikethrough, "strikethrough", "", "Strikethrough flag (true or false)")
	fs.StringVar(&o.obfuscated, "obfuscated", "", "Obfuscated flag (true or false)")
	fs.StringVar(&o.insertion, "insertion", "", "Shift-click insertion text")

	fs.StringVar(&o.click, "click", "", "Click binding as action=value, e.g. run_command=/spawn")
	fs.Var(&o.hover, "hover", "Hover text line (repeatable)")

	fs.StringVar(&o.config, "config", "", "Config file (default ./dxtext.yaml if present)")
	fs.BoolVar(&o.pretty, "pretty", false, "Indent the JSON output")
	fs.BoolVar(&o.yaml, "yaml", false, "Print the document as YAML instead of JSON")
	fs.BoolVar(&o.preview, "preview", false, "Also print a terminal preview")
	fs.StringVar(&o.tellraw, "tellraw", "", "Prefix the output with /tellraw <selector>")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	if err := o.Validate(); err != nil {
		fs.Usage()
		return nil, err
	}
	return o, nil
}

// Validate checks that exactly one content flag is given.
func (o *options) Validate() error {
	n := 0
	for _, name := range []string{"text", "translate", "keybind"} {
		if o.set[name] {
			n++
		}
	}
	switch {
	case n == 0:
		return stderrors.New("one of -text, -translate or -keybind is required")
	case n > 1:
		return stderrors.New("-text, -translate and -keybind are mutually exclusive")
	case len(o.with) > 0 && !o.set["translate"]:
		return stderrors.New("-with requires -translate")
	case o.yaml && o.tellraw != "":
		return stderrors.New("-yaml and -tellraw are mutually exclusive")
	}
	return nil
}

func (o *options) build() (*text.Node, error) {
	var node *text.Node
	switch {
	case o.set["translate"]:
		with := make([]any, len(o.with))
		for i, w := range o.with {
			with[i] = w
		}
		node = text.NewTranslated(o.translate, with...)
	case o.set["keybind"]:
		n, err := text.NewKeybind(o.keybind)
		if err != nil {
			return nil, err
		}
		node = n
	default:
		node = text.NewPlain(o.text)
	}

	if err := o.applyStyle(node); err != nil {
		return nil, err
	}

	if o.click != "" {
		click, err := parseClick(o.click)
		if err != nil {
			return nil, err
		}
		if err := node.SetEvent(click); err != nil {
			return nil, err
		}
	}
	if len(o.hover) > 0 {
		values := make([]any, len(o.hover))
		for i, h := range o.hover {
			values[i] = h
		}
		// Empty lines carry nothing to show.
		lines := model.FilterZero(text.PersuadeAll(values...))
		if len(lines) > 0 {
			texts := make([]any, len(lines))
			for i, l := range lines {
				texts[i] = l
			}
			if err := node.SetEvent(text.ShowText(texts...)); err != nil {
				return nil, err
			}
		}
	}
	if err := model.ValidateAll(node.Events()); err != nil {
		return nil, err
	}
	return node, nil
}

func (o *options) applyStyle(node *text.Node) error {
	if o.set["color"] {
		if err := applyColor(node, o.color); err != nil {
			return err
		}
	}
	if o.set["font"] {
		node.SetFont(o.font)
	}
	if o.set["insertion"] {
		node.SetInsertion(o.insertion)
	}

	flags := []struct {
		name  string
		value string
		set   func(bool) *text.Node
	}{
		{"bold", o.bold, node.SetBold},
		{"italic", o.italic, node.SetItalic},
		{"underlined", o.underlined, node.SetUnderlined},
		{"strikethrough", o.strikethrough, node.SetStrikethrough},
		{"obfuscated", o.obfuscated, node.SetObfuscated},
	}
	for _, f := range flags {
		if !o.set[f.name] {
			continue
		}
		v, err := strconv.ParseBool(f.value)
		if err != nil {
			return fmt.Errorf("-%s: %q is not a boolean", f.name, f.value)
		}
		f.set(v)
	}
	return nil
}

func applyColor(node *text.Node, value string) error {
	if strings.HasPrefix(value, "#") {
		rgb, ok := text.ParseHexColor(value)
		if !ok {
			return fmt.Errorf("-color: %q is not a #rrggbb colour", value)
		}
		node.SetColorRGB(rgb)
		return nil
	}
	f, err := text.ParseFormat(value)
	if err != nil {
		return err
	}
	return node.SetColorFormat(f)
}

// parseClick parses "action=value". The value is optional.
func parseClick(arg string) (*text.ClickEvent, error) {
	name, value, hasValue := strings.Cut(arg, "=")
	action, err := text.ParseAction(name)
	if err != nil {
		return nil, err
	}
	e := text.NewClickEvent()
	if err := e.SetAction(action); err != nil {
		return nil, err
	}
	if !hasValue {
		return e, nil
	}
	switch action {
	case text.ActionOpenURL:
		err = e.SetURL(value)
	case text.ActionChangePage:
		page, convErr := strconv.Atoi(value)
		if convErr != nil {
			return nil, fmt.Errorf("-click: page %q is not a number", value)
		}
		err = e.SetPage(page)
	default:
		err = e.SetText(value)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	if opts.pretty && cfg.Encoder.Indent == "" {
		cfg.Encoder.Indent = "  "
	}

	log, err := cfg.Logger().FromWriter(stderr).Make()
	if err != nil {
		return err
	}
	defer log.Close()

	encOpts, err := cfg.EncoderOptions(log.Logger)
	if err != nil {
		return err
	}
	enc := text.NewEncoder(encOpts...)

	node, err := opts.build()
	if err != nil {
		return err
	}
	log.Logger.Debug().Str("node", model.SafeString(node, false)).Msg("built text node")

	if opts.yaml {
		out, err := model.ToYAML(node)
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, string(out))
	} else {
		out, err := enc.MarshalString(node)
		if err != nil {
			return err
		}
		if opts.tellraw != "" {
			out = "/tellraw " + opts.tellraw + " " + out
		}
		fmt.Fprintln(stdout, out)
	}

	if opts.preview {
		mode, err := preview.ParseMode(cfg.Preview.Color)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, preview.Render(node, preview.WithMode(mode)))
	}
	return nil
}
