// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewRootFlags constructs the filter flags. cfgSource is the path of the
// loaded YAML config file, empty when no config file was found; when present
// the string flags pick up defaults from it, below env vars in precedence.
func NewRootFlags(cfgSource string) []cli.Flag {
	delimiterFlag := &cli.StringFlag{
		Name:    "delimiter",
		Aliases: []string{"d"},
		Usage:   "field delimiter string",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("HL_DELIMITER"),
		),
		Value: " ",
	}

	markerFlag := &cli.StringFlag{
		Name:    "marker",
		Aliases: []string{"m"},
		Usage:   "two-character marker pair for color-less selectors",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("HL_MARKER"),
		),
		Value: "()",
		Validator: func(value string) error {
			return FlagValidators(value, MarkerValidator)
		},
	}

	yellowSizeFlag := &cli.StringFlag{
		Name:  "yellow-size",
		Usage: "size color turns yellow above this byte count",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("HL_YELLOW_SIZE"),
		),
		Value: "20MB",
		Validator: func(value string) error {
			return FlagValidators(value, SizeValidator)
		},
	}

	redSizeFlag := &cli.StringFlag{
		Name:  "red-size",
		Usage: "size color turns red above this byte count",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("HL_RED_SIZE"),
		),
		Value: "100MB",
		Validator: func(value string) error {
			return FlagValidators(value, SizeValidator)
		},
	}

	if cfgSource != "" {
		delimiterFlag = ValueChainFlagFromConfigFile(cfgSource, delimiterFlag)
		markerFlag = ValueChainFlagFromConfigFile(cfgSource, markerFlag)
		yellowSizeFlag = ValueChainFlagFromConfigFile(cfgSource, yellowSizeFlag)
		redSizeFlag = ValueChainFlagFromConfigFile(cfgSource, redSizeFlag)
	}

	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "field",
			Aliases: []string{"f"},
			Usage:   "selector FIELD[:RANGE][:COLOR], repeatable; first match per field wins",
		},
		delimiterFlag,
		&cli.StringFlag{
			Name:    "skip",
			Aliases: []string{"s"},
			Usage:   "skip to a substring and match fields after it",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("HL_SKIP"),
			),
		},
		markerFlag,
		&cli.StringFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "when to emit ANSI colors",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("HL_COLOR"),
			),
			Value: "auto",
			Validator: func(value string) error {
				return FlagValidators(value, ColorModeValidator)
			},
		},
		yellowSizeFlag,
		redSizeFlag,
	}
}

// ValueChainFlagFromConfigFile adds a config file source to the given flag's
// Sources chain, keyed by the flag name.
func ValueChainFlagFromConfigFile(path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
