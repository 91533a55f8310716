// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package highlight is the per-line engine: it splits a line into fields by
// the configured delimiter (inclusively, so delimiters are never recolored),
// resolves the first matching selector per field, and wraps the selected
// span. Run drives the engine over an input stream, one line at a time.
package highlight
