// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hlctl/hl/internal/command"
	"github.com/hlctl/hl/internal/log"
	"github.com/hlctl/hl/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// shortFlagNames maps the attachable short flags to their long names.
var shortFlagNames = map[byte]string{
	'f': "field",
	'd': "delimiter",
	's': "skip",
	'm': "marker",
	'c': "color",
}

// splitShortFlagArgs rewrites attached short-flag values into the detached
// two-argument form, so that -f1:size parses as --field 1:size and
// -s': ' keeps working the way the tool has always been driven. The value
// stays its own argument because the CLI parser trims whitespace from
// --name=value forms, which would corrupt skip and delimiter strings like
// ': '. Long flags and detached short flags pass through untouched.
func splitShortFlagArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if len(a) > 2 && a[0] == '-' && !strings.HasPrefix(a, "--") {
			if name, ok := shortFlagNames[a[1]]; ok {
				out = append(out, "--"+name, a[2:])
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	// A reader going away mid-stream (hl ... | head) must end the run
	// cleanly, not kill the process. With SIGPIPE ignored the write returns
	// EPIPE and the run loop stops.
	signal.Ignore(syscall.SIGPIPE)

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = splitShortFlagArgs(args)

	return initAndRunApp(args)
}
