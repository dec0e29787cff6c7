// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/eduka3d/infra/internal/config"
	"github.com/eduka3d/infra/internal/log"
	"github.com/eduka3d/infra/internal/meta"
)

// InitApp builds the CLI application. The environment tag is resolved before
// command dispatch so configuration getters can prefer the environment's
// namespaced keys.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	env := resolveEnv(args)
	log.Debugf("environment resolved: env=%s", env)

	// Config is optional; stacks and commands fall back to defaults when the
	// file is absent.
	cfg, err := config.Load(env)
	if err != nil {
		log.Debugf("config load skipped: err=%v", err)
	}

	m := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		Env:     env,
	}

	app := &cli.Command{
		Name:  "infra",
		Usage: "Eduka3D infrastructure definition",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "infra version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		synthCommandBuilder(m),
		preflightCommandBuilder(m),
		outlineCommandBuilder(m),
		completionCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// resolveEnv determines the target environment tag: an explicit --env flag
// wins, then the CDK context (CDK_CONTEXT_JSON carries -c env=... when the
// CDK toolkit invokes the app), then the config file's default_env, then
// "dev".
func resolveEnv(args []string) string {
	for i, a := range args {
		if a == "--env" || a == "-e" {
			if i+1 < len(args) {
				return args[i+1]
			}
		}
		if strings.HasPrefix(a, "--env=") {
			return strings.TrimPrefix(a, "--env=")
		}
	}

	if ctxJSON := os.Getenv("CDK_CONTEXT_JSON"); ctxJSON != "" {
		if v := gjson.Get(ctxJSON, "env"); v.Exists() && v.String() != "" {
			return v.String()
		}
	}

	if _, err := config.Load(); err == nil {
		if v, err := config.GetString("default_env"); err == nil && v != "" {
			return v
		}
	}

	return "dev"
}

// newEnvFlag returns the shared --env flag. The value defaults to the tag
// resolved at app init.
func newEnvFlag(m meta.Meta) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "env",
		Aliases: []string{"e"},
		Usage:   "target environment tag",
		Value:   m.Env,
	}
}
