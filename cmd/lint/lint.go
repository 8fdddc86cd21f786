/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lint provides the lint command for tokensmith.
package lint

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokensmith/cmd/project"
	"bennypowers.dev/tokensmith/fs"
	"bennypowers.dev/tokensmith/lint"
)

// Cmd is the lint cobra command.
var Cmd = &cobra.Command{
	Use:   "lint [files...]",
	Short: "Report token names that look misspelled",
	Long: `Report path segments that are one edit away from a more common
segment in the same brand, such as "tertiarty" next to "tertiary".
Names are reported, never changed.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Exit non-zero when anomalies are found")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")

	p, err := project.Open(fs.NewOSFileSystem())
	if err != nil {
		return err
	}
	n, err := Report(cmd.Context(), cmd.OutOrStdout(), p, args)
	if err != nil {
		return err
	}
	if strict && n > 0 {
		return fmt.Errorf("%d anomalies found", n)
	}
	return nil
}

// Report writes the anomalies of every brand and returns how many were
// found. Modes share their sources, so each brand is checked once.
func Report(ctx context.Context, w io.Writer, p *project.Project, files []string) (int, error) {
	runs, err := p.Runs(files)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool)
	total := 0
	for _, run := range runs {
		if seen[run.Brand] {
			continue
		}
		seen[run.Brand] = true

		res, err := p.Load(ctx, run)
		if err != nil {
			return total, err
		}
		for _, a := range lint.Check(res.Store) {
			total++
			if run.Brand != "" {
				fmt.Fprintf(w, "%s: ", run.Brand)
			}
			fmt.Fprintln(w, a)
			for _, path := range a.Paths[1:] {
				fmt.Fprintf(w, "  also %s\n", path)
			}
		}
	}
	return total, nil
}
