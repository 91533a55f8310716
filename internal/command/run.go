// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/hlctl/hl/internal/config"
	"github.com/hlctl/hl/internal/highlight"
	"github.com/hlctl/hl/internal/log"
	"github.com/hlctl/hl/internal/selector"
	"github.com/hlctl/hl/internal/style"
)

// runCommandAction is the root action: it resolves the selector context from
// flags and config, then pumps stdin through the highlighter to stdout.
func runCommandAction(ctx context.Context, cmd *cli.Command) error {
	opts, err := selectorOptions(cmd)
	if err != nil {
		return err
	}

	selectors, err := selector.ParseAll(cmd.StringSlice("field"), opts)
	if err != nil {
		return fmt.Errorf("%w (see 'hl --help')", err)
	}

	h, err := highlight.New(selectors, cmd.String("delimiter"), cmd.String("skip"))
	if err != nil {
		return fmt.Errorf("%w (see 'hl --help')", err)
	}

	log.Debugf("running filter: delimiter=%q skip=%q selectors=%d",
		cmd.String("delimiter"), cmd.String("skip"), len(selectors))

	return h.Run(ctx, cmd.Reader, cmd.Writer)
}

// selectorOptions assembles the context selectors resolve against. Flag
// values have already passed their validators, so the re-parses here cannot
// fail.
func selectorOptions(cmd *cli.Command) (selector.Options, error) {
	marker, err := style.Marker(cmd.String("marker"))
	if err != nil {
		return selector.Options{}, fmt.Errorf("marker: %w (see 'hl --help')", err)
	}

	aliases, err := config.GetStringMap("aliases")
	if err != nil {
		return selector.Options{}, fmt.Errorf("config aliases: %w", err)
	}

	yellowAt, _ := humanize.ParseBytes(cmd.String("yellow-size"))
	redAt, _ := humanize.ParseBytes(cmd.String("red-size"))

	return selector.Options{
		Marker:   marker,
		Colors:   colorsEnabled(cmd.String("color")),
		Aliases:  aliases,
		YellowAt: yellowAt,
		RedAt:    redAt,
	}, nil
}

// colorsEnabled maps the --color mode to a decision. "auto" emits ANSI only
// when stdout is a terminal and NO_COLOR is unset.
func colorsEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return style.TerminalColors(os.Stdout)
	}
}
