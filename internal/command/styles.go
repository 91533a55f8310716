// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/hlctl/hl/internal/config"
	"github.com/hlctl/hl/internal/log"
	"github.com/hlctl/hl/internal/meta"
	"github.com/hlctl/hl/internal/style"
)

// stylesCommandAction lists the built-in color names, the size style, and
// any configured aliases, each with a rendered sample.
func stylesCommandAction(ctx context.Context, cmd *cli.Command) error {
	colors := colorsEnabled(cmd.String("color"))

	marker, err := style.Marker(cmd.String("marker"))
	if err != nil {
		return fmt.Errorf("marker: %w (see 'hl --help')", err)
	}

	sample := func(spec string) string {
		if !colors {
			return marker.Wrap("sample")
		}
		st, err := style.Parse(spec, nil)
		if err != nil {
			// Alias targets are user input; show them unstyled rather than fail
			// the whole listing.
			log.Debugf("unrenderable spec %q: %v", spec, err)
			return "sample"
		}
		return st.Wrap("sample")
	}

	var rows [][]string
	for _, name := range style.Names() {
		rows = append(rows, []string{name, sample(name), ""})
	}

	yellowAt, _ := humanize.ParseBytes(cmd.String("yellow-size"))
	redAt, _ := humanize.ParseBytes(cmd.String("red-size"))
	sizeStyle := style.Size(yellowAt, redAt, marker)
	sizeSample := "52K 95M 221M"
	if colors {
		sizeSample = sizeStyle.Wrap("52K") + " " + sizeStyle.Wrap("95M") + " " + sizeStyle.Wrap("221M")
	}
	rows = append(rows, []string{
		"size",
		sizeSample,
		fmt.Sprintf("yellow above %s, red above %s", humanize.Bytes(yellowAt), humanize.Bytes(redAt)),
	})

	aliases, err := config.GetStringMap("aliases")
	if err != nil {
		return fmt.Errorf("config aliases: %w", err)
	}
	aliasNames := make([]string, 0, len(aliases))
	for name := range aliases {
		aliasNames = append(aliasNames, name)
	}
	sort.Strings(aliasNames)
	for _, name := range aliasNames {
		rows = append(rows, []string{name, sample(aliases[name]), "alias for " + aliases[name]})
	}

	headerStyle := lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			st := cellStyle
			if row == table.HeaderRow {
				st = headerStyle
			}
			if col > 0 {
				st = st.PaddingLeft(2)
			}
			return st
		}).
		Headers("NAME", "SAMPLE", "NOTES").
		BorderHeader(false).
		Rows(rows...)

	fmt.Fprintln(os.Stdout, t)

	return nil
}

// stylesCommandBuilder constructs the cli.Command for "styles", wiring
// metadata and the action handler.
func stylesCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "styles",
		Usage:     "list available colors and aliases",
		UsageText: "hl styles",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: stylesCommandAction,
	}
}
