// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package selector parses --field expressions of the form
// FIELD[:RANGE][:COLOR] into the structures the highlighter applies per
// line. Field indices are 0-based; negative indices count from the end of
// the line.
package selector
