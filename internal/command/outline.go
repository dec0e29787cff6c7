// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/eduka3d/infra/internal/log"
	"github.com/eduka3d/infra/internal/meta"
	"github.com/eduka3d/infra/internal/util"
)

// templateCounts tallies resources by CloudFormation type in one synthesized
// template.
func templateCounts(data []byte) map[string]int {
	counts := map[string]int{}
	gjson.GetBytes(data, "Resources").ForEach(func(_, v gjson.Result) bool {
		counts[v.Get("Type").String()]++
		return true
	})
	return counts
}

// writeOutline prints a per-stack resource summary for every template in the
// cloud assembly directory.
func writeOutline(w io.Writer, dir string) error {
	templates, err := filepath.Glob(filepath.Join(dir, "*.template.json"))
	if err != nil {
		return err
	}
	if len(templates) == 0 {
		return fmt.Errorf("no templates found in %s (run synth first)", dir)
	}
	sort.Strings(templates)

	for _, path := range templates {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		stack := strings.TrimSuffix(filepath.Base(path), ".template.json")
		counts := templateCounts(data)

		types := make([]string, 0, len(counts))
		total := 0
		for t, n := range counts {
			types = append(types, t)
			total += n
		}
		sort.Strings(types)

		fmt.Fprintf(w, "%s (%d resources)\n", stack, total)
		for _, t := range types {
			fmt.Fprintf(w, "  %-55s %d\n", t, counts[t])
		}
	}

	return nil
}

// outlineCommandAction summarizes the synthesized cloud assembly.
func outlineCommandAction(_ context.Context, cmd *cli.Command) error {
	dir := cmd.Args().First()
	if dir == "" {
		dir = "cdk.out"
	}

	abs, err := util.EnsureDir(dir)
	if err != nil {
		return fmt.Errorf("cloud assembly dir %s: %w", dir, err)
	}
	log.Debugf("outlining assembly: dir=%s", abs)

	return writeOutline(os.Stdout, abs)
}

// outlineCommandBuilder constructs the cli.Command for "outline".
func outlineCommandBuilder(_ meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "outline",
		Usage:     "summarize synthesized stack templates",
		UsageText: "infra outline [cloud assembly dir]",
		Action:    outlineCommandAction,
	}
}
