// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package style models how a selected span is decorated: a literal marker
// pair, an ANSI foreground color (named, 256-color palette, or truecolor),
// or the byte-size threshold color that picks green/yellow/red per span.
package style
