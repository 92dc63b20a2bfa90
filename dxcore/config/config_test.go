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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"dirpx.dev/dxtext/dxcore/model/text"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dxtext.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
encoder:
  empty_payload: "null"
  indent: "  "
log:
  level: debug
  format: json
preview:
  color: never
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "null", cfg.Encoder.EmptyPayload)
	assert.Equal(t, "  ", cfg.Encoder.Indent)
	assert.False(t, cfg.Encoder.EscapeHTML)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ColorNever, cfg.Preview.Color)
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DXTEXT_ENCODER_EMPTY_PAYLOAD", "null")
	t.Setenv("DXTEXT_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "null", cfg.Encoder.EmptyPayload)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, Default().Log.Format, cfg.Log.Format)
	assert.Equal(t, ColorAuto, cfg.Preview.Color)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeConfig(t, "encoder:\n  empty_payload: drop\n")
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoder.empty_payload")
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, Default().Validate())

	cfg := Config{
		Encoder: EncoderConfig{EmptyPayload: "sometimes", Indent: "--"},
		Log:     LogConfig{Level: "loud", Format: "xml"},
		Preview: PreviewConfig{Color: "rainbow"},
	}
	err := cfg.Validate()
	require.Error(t, err)
	for _, field := range []string{"encoder.empty_payload", "encoder.indent", "log.level", "log.format", "preview.color"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestConfig_EncoderOptions(t *testing.T) {
	cfg := Default()
	cfg.Encoder.EmptyPayload = "null"
	cfg.Encoder.Indent = "\t"

	opts, err := cfg.EncoderOptions(zerolog.Nop())
	require.NoError(t, err)

	enc := text.NewEncoder(opts...)
	assert.Equal(t, text.NullPayload, enc.Policy())

	n := text.NewPlain("a")
	ev := text.NewClickEvent()
	require.NoError(t, ev.SetAction(text.ActionOpenURL))
	require.NoError(t, n.SetEvent(ev))

	got, err := enc.MarshalString(n)
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"text\": \"a\",\n\t\"clickEvent\": {\n\t\t\"action\": \"open_url\",\n\t\t\"value\": null\n\t}\n}", got)

	cfg.Encoder.EmptyPayload = "bogus"
	_, err = cfg.EncoderOptions(zerolog.Nop())
	assert.Error(t, err)
}

func TestConfig_Logger(t *testing.T) {
	cfg := Default()
	cfg.Log.Format = "json"
	log, err := cfg.Logger().FromWriter(os.Stderr).Make()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, log.Logger.GetLevel())
}
