// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sml

// Logger receives non-fatal diagnostics the Reader facade surfaces while
// decoding (discarded resync bytes, tolerated padding, parse errors on
// one message that don't corrupt framing). A Reader never runs without a
// Logger; WithLogger installs one, and the default is a no-op so the
// core package stays free of any logging dependency (see the smllog
// subpackage for a github.com/rs/zerolog adapter).
type Logger interface {
	Debug(msg string, kv ...any)
	Warn(msg string, kv ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}
