// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// zaplog.go — go.uber.org/zap adapter for the codecs.Logger interface.

// Package zaplog routes registry logs to a zap logger:
//
//	reg := codecs.NewRegistry(codecs.Config{Logger: zaplog.New(zl)})
package zaplog

import "go.uber.org/zap"

// Logger adapts a zap logger to the codecs.Logger interface.
type Logger struct {
	s *zap.SugaredLogger
}

// New wraps l. A nil l uses zap's global logger.
func New(l *zap.Logger) *Logger {
	if l == nil {
		l = zap.L()
	}
	return &Logger{s: l.Sugar()}
}

func (l *Logger) Info(msg string, keysAndValues ...any)  { l.s.Infow(msg, keysAndValues...) }
func (l *Logger) Warn(msg string, keysAndValues ...any)  { l.s.Warnw(msg, keysAndValues...) }
func (l *Logger) Error(msg string, keysAndValues ...any) { l.s.Errorw(msg, keysAndValues...) }
func (l *Logger) Debug(msg string, keysAndValues ...any) { l.s.Debugw(msg, keysAndValues...) }
