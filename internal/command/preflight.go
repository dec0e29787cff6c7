// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ssmv2 "github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/eduka3d/infra/internal/aws"
	"github.com/eduka3d/infra/internal/config"
	"github.com/eduka3d/infra/internal/meta"
	"github.com/eduka3d/infra/internal/secrets"
)

// parameterGetter is the slice of the SSM API preflight needs.
type parameterGetter interface {
	GetParameter(ctx context.Context, params *ssmv2.GetParameterInput, optFns ...func(*ssmv2.Options)) (*ssmv2.GetParameterOutput, error)
}

// liveSource adapts the SSM API to the assembly Source contract. The
// reference it yields is the parameter's metadata; values stay encrypted in
// transit and are never printed.
func liveSource(ctx context.Context, client parameterGetter) secrets.Source[ssmtypes.Parameter] {
	return secrets.SourceFunc[ssmtypes.Parameter](func(_ secrets.Spec, path string) (ssmtypes.Parameter, error) {
		out, err := client.GetParameter(ctx, &ssmv2.GetParameterInput{
			Name:           awsv2.String(path),
			WithDecryption: awsv2.Bool(false),
		})
		if err != nil {
			var nf *ssmtypes.ParameterNotFound
			if errors.As(err, &nf) {
				return ssmtypes.Parameter{}, fmt.Errorf("%s: %w", path, secrets.ErrParameterNotFound)
			}
			return ssmtypes.Parameter{}, err
		}
		return *out.Parameter, nil
	})
}

// writePreflightReport prints one line per table entry in order and returns
// the number of required parameters that are missing.
func writePreflightReport(
	w io.Writer,
	table []secrets.Spec,
	asm *secrets.Assembler[ssmtypes.Parameter],
	result secrets.Result[ssmtypes.Parameter],
) int {
	skipped := make(map[secrets.Spec]error, len(result.Skipped))
	for _, s := range result.Skipped {
		skipped[s.Spec] = s.Err
	}

	missingRequired := 0
	for _, spec := range table {
		path := asm.ResolvePath(spec)

		if _, miss := skipped[spec]; miss {
			note := "optional"
			if spec.Required {
				note = "required"
				missingRequired++
			}
			fmt.Fprintf(w, "%-8s %-18s %-42s %s\n", "missing", spec.EnvVar, path, note)
			continue
		}

		note := ""
		if ref, ok := result.References[spec.EnvVar]; ok && ref.LastModifiedDate != nil {
			note = "modified " + humanize.Time(*ref.LastModifiedDate)
		}
		fmt.Fprintf(w, "%-8s %-18s %-42s %s\n", "ok", spec.EnvVar, path, note)
	}

	return missingRequired
}

// preflightCommandAction checks every parameter table entry against the live
// Parameter Store and fails when a required one is absent. This is the
// strict counterpart to synthesis, which deliberately degrades instead of
// failing.
func preflightCommandAction(ctx context.Context, cmd *cli.Command) error {
	env := cmd.String("env")
	namespace, _ := config.GetString("namespace", "eduka3d")

	var opts []aws.Option
	if p := cmd.String("profile"); p != "" {
		opts = append(opts, aws.WithProfile(p))
	}
	if r := cmd.String("region"); r != "" {
		opts = append(opts, aws.WithRegion(r))
	}

	awsCfg, err := aws.LoadAWSConfig(ctx, opts...)
	if err != nil {
		return fmt.Errorf("load AWS config: %w", err)
	}
	client := aws.NewSSM(awsCfg)

	asm := &secrets.Assembler[ssmtypes.Parameter]{
		Namespace:   namespace,
		Environment: env,
		Source:      liveSource(ctx, client),
	}

	table := secrets.DefaultTable()
	result, err := asm.Assemble(table)
	if err != nil {
		return fmt.Errorf("parameter check: %w", err)
	}

	if missing := writePreflightReport(os.Stdout, table, asm, result); missing > 0 {
		return fmt.Errorf("preflight failed: %d required parameter(s) missing in %s", missing, env)
	}
	return nil
}

// preflightCommandBuilder constructs the cli.Command for "preflight".
func preflightCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "preflight",
		Usage:     "verify required parameters exist before deploying",
		UsageText: "infra preflight [options]",
		Flags: []cli.Flag{
			newEnvFlag(m),
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "AWS shared config profile",
			},
			&cli.StringFlag{
				Name:    "region",
				Aliases: []string{"r"},
				Usage:   "AWS region override",
			},
		},
		Action: preflightCommandAction,
	}
}
