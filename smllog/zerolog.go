// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package smllog adapts a github.com/rs/zerolog logger to sml.Logger, so
// callers who already use zerolog elsewhere can wire the decoder's
// non-fatal diagnostics into their existing log stream without the core
// sml package importing a logging library itself.
package smllog

import (
	"github.com/rs/zerolog"

	"code.hybscloud.com/sml"
)

// Logger adapts a zerolog.Logger to sml.Logger.
type Logger struct {
	log zerolog.Logger
}

// New wraps log for use as an sml.Logger.
func New(log zerolog.Logger) *Logger { return &Logger{log: log} }

func (l *Logger) Debug(msg string, kv ...any) {
	ev := l.log.Debug()
	appendFields(ev, kv)
	ev.Msg(msg)
}

func (l *Logger) Warn(msg string, kv ...any) {
	ev := l.log.Warn()
	appendFields(ev, kv)
	ev.Msg(msg)
}

func appendFields(ev *zerolog.Event, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		ev.Interface(key, kv[i+1])
	}
}

var _ sml.Logger = (*Logger)(nil)
