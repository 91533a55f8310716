// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hlctl/hl/internal/meta"
)

const bashCompletionScript = `# bash completion for hl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_hl()
{
    local cur prev
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    local opts="--field -f --delimiter -d --skip -s --marker -m --color -c --yellow-size --red-size --help --version -v"

    if [[ ${COMP_CWORD} -eq 1 && "$cur" != -* ]]; then
        COMPREPLY=( $(compgen -W "styles completion $opts" -- "$cur") )
        return 0
    fi

    case "${COMP_WORDS[1]}" in
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
    esac

    if [[ "$prev" == "--color" || "$prev" == "-c" ]]; then
        COMPREPLY=( $(compgen -W "auto always never" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _hl hl
`

const zshCompletionScript = `#compdef hl

_hl() {
  local -a cmds
  cmds=(
    'styles:list available colors and aliases'
    'completion:generate shell completion script'
  )

  if (( CURRENT == 2 )) && [[ $words[2] != -* ]]; then
    _describe -t commands 'hl commands' cmds
  fi

  case $words[2] in
    completion)
      _arguments '1: :((bash zsh))'
      return
      ;;
  esac

  _arguments -C \
    '*'{-f,--field}'[selector FIELD:RANGE:COLOR]:selector' \
    '(-d --delimiter)'{-d,--delimiter}'[field delimiter string]:delimiter' \
    '(-s --skip)'{-s,--skip}'[skip to a substring]:substring' \
    '(-m --marker)'{-m,--marker}'[marker pair]:marker' \
    '(-c --color)'{-c,--color}'[when to emit ANSI colors]:mode:(auto always never)' \
    '--yellow-size[size color yellow threshold]:size' \
    '--red-size[size color red threshold]:size' \
    '(-v --version)'{-v,--version}'[version info]'
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _hl hl
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: hl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "hl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
