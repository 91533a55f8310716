// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for hl. It wires flags,
// validators, the root filter action, the styles listing, and shell
// completion.
package command
