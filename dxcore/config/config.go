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

// Package config loads the settings of the dxtext tools from a YAML file and
// DXTEXT_* environment variables.
//
// Example file:
//
//	encoder:
//	  empty_payload: omit   # or "null"
//	  indent: ""            # e.g. "  " for pretty output
//	  escape_html: false
//	log:
//	  level: info
//	  format: console
//	preview:
//	  color: auto           # auto, always or never
//
// Every key can be overridden from the environment by upper-casing it and
// replacing dots with underscores: DXTEXT_ENCODER_EMPTY_PAYLOAD=null.
package config

import (
	stderrors "errors"
	"fmt"
	"strings"

	"dirpx.dev/dxtext/dxcore/errors"
	"dirpx.dev/dxtext/dxcore/logger"
	"dirpx.dev/dxtext/dxcore/model/text"
	"dirpx.dev/rxmerr"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "DXTEXT"

// Preview colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the complete tool configuration.
type Config struct {
	Encoder EncoderConfig `mapstructure:"encoder"`
	Log     LogConfig     `mapstructure:"log"`
	Preview PreviewConfig `mapstructure:"preview"`
}

// EncoderConfig configures the text encoder.
type EncoderConfig struct {
	EmptyPayload string `mapstructure:"empty_payload"`
	Indent       string `mapstructure:"indent"`
	EscapeHTML   bool   `mapstructure:"escape_html"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PreviewConfig configures the terminal preview.
type PreviewConfig struct {
	Color string `mapstructure:"color"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Encoder: EncoderConfig{EmptyPayload: text.OmitPayloadStr},
		Log:     LogConfig{Level: "info", Format: logger.FormatConsole},
		Preview: PreviewConfig{Color: ColorAuto},
	}
}

// Load reads the configuration. When path is empty, a "dxtext.yaml" in the
// working directory is used if present; a missing default file is not an
// error. Environment overrides are applied in both cases. The result is
// validated before it is returned.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("dxtext: read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("dxtext")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !stderrors.As(err, &notFound) {
				return Config{}, fmt.Errorf("dxtext: read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("dxtext: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("encoder.empty_payload", d.Encoder.EmptyPayload)
	v.SetDefault("encoder.indent", d.Encoder.Indent)
	v.SetDefault("encoder.escape_html", d.Encoder.EscapeHTML)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("preview.color", d.Preview.Color)
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	col := rxmerr.NewCollector()

	if _, err := text.ParsePayloadPolicy(c.Encoder.EmptyPayload); err != nil {
		col.Append(&errors.ValidationError{Type: "Config", Field: "encoder.empty_payload", Reason: "must be omit or null", Value: c.Encoder.EmptyPayload})
	}
	if strings.Trim(c.Encoder.Indent, " \t") != "" {
		col.Append(&errors.ValidationError{Type: "Config", Field: "encoder.indent", Reason: "must contain only spaces and tabs", Value: c.Encoder.Indent})
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil || c.Log.Level == "" {
		col.Append(&errors.ValidationError{Type: "Config", Field: "log.level", Reason: "unknown level", Value: c.Log.Level})
	}
	switch strings.ToLower(c.Log.Format) {
	case logger.FormatJSON, logger.FormatConsole:
	default:
		col.Append(&errors.ValidationError{Type: "Config", Field: "log.format", Reason: "must be json or console", Value: c.Log.Format})
	}
	switch c.Preview.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		col.Append(&errors.ValidationError{Type: "Config", Field: "preview.color", Reason: "must be auto, always or never", Value: c.Preview.Color})
	}

	return col.Err()
}

// EncoderOptions translates the encoder settings into text.Options. The
// logger is passed through to the encoder.
func (c Config) EncoderOptions(log zerolog.Logger) ([]text.Option, error) {
	policy, err := text.ParsePayloadPolicy(c.Encoder.EmptyPayload)
	if err != nil {
		return nil, err
	}
	opts := []text.Option{
		text.WithPayloadPolicy(policy),
		text.WithEscapeHTML(c.Encoder.EscapeHTML),
		text.WithLogger(log),
	}
	if c.Encoder.Indent != "" {
		opts = append(opts, text.WithIndent("", c.Encoder.Indent))
	}
	return opts, nil
}

// Logger builds the logger described by the log settings.
func (c Config) Logger() *logger.Build {
	return logger.New().WithLevel(c.Log.Level).WithFormat(c.Log.Format)
}
