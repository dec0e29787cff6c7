// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/urfave/cli/v3"

	"github.com/eduka3d/infra/internal/config"
	"github.com/eduka3d/infra/internal/log"
	"github.com/eduka3d/infra/internal/meta"
	"github.com/eduka3d/infra/internal/stacks"
)

// synthCommandAction constructs and synthesizes the stacks for one
// environment. This is what `cdk synth` and `cdk deploy` run via cdk.json.
func synthCommandAction(_ context.Context, cmd *cli.Command) error {
	env := cmd.String("env")

	app := awscdk.NewApp(nil)

	// An env set through CDK context (-c env=prod) wins over the flag
	// default, matching how the CDK toolkit passes selection through.
	if v, ok := app.Node().TryGetContext(jsii.String("env")).(string); ok && v != "" {
		env = v
	}

	if _, err := config.Load(env); err != nil {
		log.Debugf("synthesizing without config file: err=%v", err)
	}

	if err := stacks.Build(app, stacks.Props{Env: env}); err != nil {
		return err
	}

	app.Synth(nil)
	log.Infof("synthesis complete: env=%s", env)
	return nil
}

// synthCommandBuilder constructs the cli.Command for "synth".
func synthCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "synth",
		Usage:     "synthesize the CDK stacks",
		UsageText: "infra synth [options]",
		Flags: []cli.Flag{
			newEnvFlag(m),
		},
		Action: synthCommandAction,
	}
}
