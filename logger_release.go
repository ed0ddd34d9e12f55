// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !cmdq_debug

package cmdq

import "log/slog"

// SetLogger sets the package logger.
// In release builds this does nothing; the signature matches the
// cmdq_debug build so callers compile either way.
func SetLogger(l *slog.Logger) {}

// debug is a no-op in release builds.
func (q *CommandQueue) debug(msg string, args ...any) {}
