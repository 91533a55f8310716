// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for hl's user
// configuration. The configuration is expected to be a YAML document located
// in the user's configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/hl.yaml or $HOME/.config/hl.yaml
//   - Windows: %APPDATA%/hl/hl.yaml
//
// Actual resolution relies on os.UserConfigDir which follows platform
// conventions. Recognized keys are delimiter, marker, yellow-size, red-size
// and the aliases map of user color names to color specs.
package config
