// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎯 RenameOperation is a completed rename, by base name
type RenameOperation struct {
	From string // Old file name
	To   string // New file name
}

// 🎯 Logger writes progress lines to the console and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	renamed int
}

// 🏭 New creates a new logger. Progress goes to console, structured events
// to diagnostics.
func New(console, diagnostics io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: diagnostics}).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 🪵 Zerolog returns the structured logger backing l
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zlog
}

// 📝 LogRename reports a single rename
func (l *Logger) LogRename(ctx context.Context, op RenameOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.renamed++

	fmt.Fprintf(l.console, "Renamed %s to %s\n",
		color.New(color.FgYellow).Sprint(op.From),
		color.New(color.FgGreen).Sprint(op.To))

	l.zlog.Debug().
		Str("from", op.From).
		Str("to", op.To).
		Msg("renamed file")
}

// 📝 LogNoneFound reports that the scan found nothing to rename
func (l *Logger) LogNoneFound(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, color.New(color.FgYellow).Sprint("No eligible files were found."))
	l.zlog.Info().Msg("no eligible files")
}

// 📝 LogComplete reports that every planned rename has been applied
func (l *Logger) LogComplete(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, color.New(color.Bold).Sprint("Process complete."))
	l.zlog.Info().Int("renamed", l.renamed).Msg("process complete")
}

// 📝 Error logs a fatal error to the diagnostics writer
func (l *Logger) Error(msg string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zlog.Error().Err(err).Msg(msg)
}
