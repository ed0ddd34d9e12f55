// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build cmdq_debug

package cmdq

import (
	"log/slog"
	"os"
)

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

// SetLogger sets the package logger used by queues built without
// Builder.Logger.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

func (q *CommandQueue) debug(msg string, args ...any) {
	l := q.logger
	if l == nil {
		l = defaultLogger
	}
	l.Debug(msg, args...)
}
