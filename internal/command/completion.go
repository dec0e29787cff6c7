// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/eduka3d/infra/internal/meta"
)

const bashCompletionScript = `# bash completion for infra
_infra()
{
    local cur prev
    COMPREPLY=()
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "synth preflight outline completion --help --version" -- "$cur") )
        return 0
    fi

    case "${COMP_WORDS[1]}" in
    synth)
        local opts="--env -e"
        ;;
    preflight)
        local opts="--env -e --profile -p --region -r"
        ;;
    outline)
        local opts=""
        ;;
    completion)
        COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
        return 0
        ;;
    esac

    if [[ "$prev" == "--env" || "$prev" == "-e" ]]; then
        COMPREPLY=( $(compgen -W "dev staging prod" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}
complete -F _infra infra
`

const zshCompletionScript = `#compdef infra
# zsh completion for infra

_infra() {
    local -a commands
    commands=(
        'synth:synthesize the CDK stacks'
        'preflight:verify required parameters exist before deploying'
        'outline:summarize synthesized stack templates'
        'completion:generate shell completion'
    )

    if (( CURRENT == 2 )); then
        _describe 'command' commands
        return
    fi

    case "$words[2]" in
    synth)
        _arguments '--env[target environment tag]:env:(dev staging prod)'
        ;;
    preflight)
        _arguments \
            '--env[target environment tag]:env:(dev staging prod)' \
            '--profile[AWS shared config profile]:profile:' \
            '--region[AWS region override]:region:'
        ;;
    completion)
        _values 'shell' bash zsh
        ;;
    esac
}

_infra "$@"
`

// completionCommandAction emits the completion script for the requested
// shell.
func completionCommandAction(_ context.Context, cmd *cli.Command) error {
	shell := strings.ToLower(cmd.Args().First())
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		return fmt.Errorf("unsupported shell %q (want bash or zsh)", shell)
	}
	return nil
}

// completionCommandBuilder constructs the cli.Command for "completion".
func completionCommandBuilder(_ meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion",
		UsageText: "infra completion bash|zsh",
		Action:    completionCommandAction,
	}
}
