// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package log provides the zero-value default for the log.Logger
// capability taken by the Service and the in-memory event bus, so unit
// tests and example wiring never need a real sink.
package log

import (
	"context"
	"log/slog"

	extlog "github.com/luxfi/log"
	"go.uber.org/zap"
)

// NoOp implements github.com/luxfi/log.Logger by discarding everything.
type NoOp struct{}

// New returns a logger usable as the zero value's drop-in replacement.
func New() extlog.Logger {
	return NoOp{}
}

func (NoOp) Debug(msg string, ctx ...interface{})                  {}
func (NoOp) Info(msg string, ctx ...interface{})                   {}
func (NoOp) Warn(msg string, ctx ...interface{})                   {}
func (NoOp) Error(msg string, ctx ...interface{})                  {}
func (NoOp) Trace(msg string, ctx ...interface{})                  {}
func (NoOp) Crit(msg string, ctx ...interface{})                   {}
func (NoOp) Log(level slog.Level, msg string, ctx ...interface{})  {}
func (NoOp) WriteLog(level slog.Level, msg string, attrs ...any)   {}

func (n NoOp) With(ctx ...interface{}) extlog.Logger    { return n }
func (n NoOp) New(ctx ...interface{}) extlog.Logger     { return n }
func (n NoOp) WithFields(fields ...zap.Field) extlog.Logger { return n }
func (n NoOp) WithOptions(opts ...zap.Option) extlog.Logger { return n }

func (NoOp) Enabled(ctx context.Context, level slog.Level) bool { return false }
func (NoOp) Handler() slog.Handler                              { return nil }

func (NoOp) Fatal(msg string, fields ...zap.Field) {}
func (NoOp) Verbo(msg string, fields ...zap.Field) {}

func (NoOp) SetLevel(level slog.Level)              {}
func (NoOp) GetLevel() slog.Level                   { return slog.Level(0) }
func (NoOp) EnabledLevel(lvl slog.Level) bool       { return false }

func (NoOp) StopOnPanic()                {}
func (NoOp) RecoverAndPanic(f func())    { f() }
func (NoOp) RecoverAndExit(f, exit func()) { f() }
func (NoOp) Stop()                       {}

func (NoOp) Write(p []byte) (n int, err error) { return len(p), nil }
