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

// Package logger builds the zerolog loggers used by the dxtext tools.
package logger

import (
	"io"
	"os"
	"strings"

	"dirpx.dev/dxtext/dxcore/errors"
	"github.com/rs/zerolog"
)

const permission = 0o664

// Output formats accepted by Build.WithFormat.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Build collects the settings of a logger. The zero value logs JSON at info
// level to standard error.
type Build struct {
	writer io.Writer
	path   string
	level  string
	format string
}

// Log is a built logger together with the file it writes to, if any.
type Log struct {
	Logger zerolog.Logger
	File   *os.File
}

// New returns an empty Build.
func New() *Build {
	return &Build{}
}

// FromWriter sends output to w.
func (b *Build) FromWriter(w io.Writer) *Build {
	b.writer = w
	return b
}

// FromPath appends output to the file at path, creating it if needed. It
// takes precedence over FromWriter.
func (b *Build) FromPath(path string) *Build {
	b.path = path
	return b
}

// WithLevel sets the minimum level by name ("debug", "info", "warn", ...).
func (b *Build) WithLevel(level string) *Build {
	b.level = level
	return b
}

// WithFormat selects FormatJSON or FormatConsole.
func (b *Build) WithFormat(format string) *Build {
	b.format = format
	return b
}

// Make opens the destination and returns the logger.
func (b *Build) Make() (*Log, error) {
	level := zerolog.InfoLevel
	if b.level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(b.level))
		if err != nil {
			return nil, &errors.ParseError{Type: "LogLevel", Value: b.level}
		}
		level = parsed
	}

	format := strings.ToLower(b.format)
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatConsole {
		return nil, &errors.ParseError{Type: "LogFormat", Value: b.format}
	}

	out := &Log{}
	var w io.Writer = os.Stderr
	if b.writer != nil {
		w = b.writer
	}
	if b.path != "" {
		f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		out.File = f
		w = zerolog.SyncWriter(f)
	}
	if format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, NoColor: out.File != nil}
	}

	out.Logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return out, nil
}

// Close closes the log file, if one was opened.
func (l *Log) Close() error {
	if l.File == nil {
		return nil
	}
	return l.File.Close()
}
