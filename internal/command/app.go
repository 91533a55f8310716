// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/hlctl/hl/internal/config"
	"github.com/hlctl/hl/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// allow short if-style local cfg; no actual outer cfg
	cfg, _ := config.Load() //nolint
	meta := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
	}

	app := &cli.Command{
		Name:      "hl",
		Usage:     "highlight fields in line-oriented input",
		UsageText: "... | hl [options]",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "hl version info",
				HideDefault: true,
			},
		}, NewRootFlags(meta.Config.Source)...),
		Action: runCommandAction,
	}

	app.Commands = append(app.Commands,
		stylesCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}
