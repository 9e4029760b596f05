// Copyright 2026 The archstore Authors
// This file is part of archstore.
//
// archstore is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// archstore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with archstore. If not, see <http://www.gnu.org/licenses/>.

package archstore

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions configures the Store's logger. Zero value logs development-
// style output to stderr.
type LogOptions struct {
	// FilePath, when set, routes logs through a rotating file sink
	// instead of stderr.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	Level      zapcore.Level
	hasLevel   bool
}

// WithLevel sets the minimum level for the rotating file sink.
func (o LogOptions) WithLevel(l zapcore.Level) LogOptions {
	o.Level = l
	o.hasLevel = true
	return o
}

func newLogger(opts LogOptions) *zap.Logger {
	if opts.FilePath == "" {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return zap.NewNop()
		}
		return logger
	}

	maxSize := opts.MaxSizeMB
	if maxSize == 0 {
		maxSize = 64
	}
	maxBackups := opts.MaxBackups
	if maxBackups == 0 {
		maxBackups = 3
	}

	sink := &lumberjack.Logger{
		Filename:   opts.FilePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		Compress:   true,
	}

	level := zapcore.InfoLevel
	if opts.hasLevel {
		level = opts.Level
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(sink), level)
	return zap.New(core)
}
