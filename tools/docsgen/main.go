// Copyright (c) 2026 Eduka3D <dev@eduka3d.io>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// docsgen renders one markdown page per CLI command into docs/. Run from the
// repository root: go run ./tools/docsgen
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/eduka3d/infra/internal/command"
)

const pageTemplate = `# infra {{.Name}}

{{.Usage}}

## Usage

` + "```" + `
{{.UsageText}}
` + "```" + `
{{if .Flags}}
## Options

{{range .Flags}}- ` + "`--{{index .Names 0}}`" + ` — {{.Usage}}
{{end}}{{end}}
---
Generated {{.Date}}.
`

type page struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []flagDoc
	Date      string
}

type flagDoc struct {
	Names []string
	Usage string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	app, err := command.InitApp(context.Background(), []string{"infra"})
	if err != nil {
		return err
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return err
	}

	if err := os.MkdirAll("docs", 0o755); err != nil {
		return err
	}

	date := time.Now().Format("2006-01-02")
	for _, cmd := range app.Commands {
		p := page{
			Name:      cmd.Name,
			Usage:     cmd.Usage,
			UsageText: cmd.UsageText,
			Date:      date,
		}
		if p.UsageText == "" {
			p.UsageText = "infra " + cmd.Name
		}
		for _, f := range cmd.Flags {
			if sf, ok := f.(*cli.StringFlag); ok {
				p.Flags = append(p.Flags, flagDoc{Names: sf.Names(), Usage: sf.Usage})
			}
		}

		out, err := os.Create(filepath.Join("docs", cmd.Name+".md"))
		if err != nil {
			return err
		}
		if err := tmpl.Execute(out, p); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}
	}

	return nil
}
