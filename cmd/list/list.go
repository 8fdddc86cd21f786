/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokensmith.
package list

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokensmith/cmd/project"
	"bennypowers.dev/tokensmith/cmd/render"
	"bennypowers.dev/tokensmith/fs"
	"bennypowers.dev/tokensmith/normalize"
	"bennypowers.dev/tokensmith/resolver"
	"bennypowers.dev/tokensmith/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List resolved tokens",
	Long: `List every token of one brand and mode with its resolved value and
category, in source order. Without files, the configured sources are used.

Examples:
  # All color tokens of the dark mode
  tokensmith list --mode dark --category color

  # Fuzzy search by path
  tokensmith list --search btnpri`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("category", "", "Filter by category")
	Cmd.Flags().String("type", "", "Filter by declared $type")
	Cmd.Flags().String("group", "", "Filter by dotted group path")
	Cmd.Flags().String("search", "", "Fuzzy-match token paths")
	Cmd.Flags().String("dependents", "", "Only tokens that alias this dotted path, directly or through other aliases")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, names, markdown")
	Cmd.Flags().Bool("no-color", false, "Disable color swatches in table output")
}

// Options selects and formats listed tokens.
type Options struct {
	Filter   render.Filter
	Format   string
	Swatches bool

	// Dependents restricts the listing to tokens whose alias chain
	// passes through this dotted path.
	Dependents string
}

func run(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	typ, _ := cmd.Flags().GetString("type")
	group, _ := cmd.Flags().GetString("group")
	search, _ := cmd.Flags().GetString("search")
	format, _ := cmd.Flags().GetString("format")
	noColor, _ := cmd.Flags().GetBool("no-color")
	dependents, _ := cmd.Flags().GetString("dependents")

	opts := Options{
		Filter:     render.Filter{Type: typ, Group: group, Query: search},
		Format:     format,
		Swatches:   !noColor && os.Getenv("NO_COLOR") == "",
		Dependents: dependents,
	}
	if category != "" {
		c, err := normalize.ParseCategory(category)
		if err != nil {
			return err
		}
		opts.Filter.Category = c
	}

	p, err := project.Open(fs.NewOSFileSystem())
	if err != nil {
		return err
	}
	return List(cmd.Context(), cmd.OutOrStdout(), p, args, opts)
}

// List renders the tokens of the first selected run. Narrow the run with
// the brand and mode flags.
func List(ctx context.Context, w io.Writer, p *project.Project, files []string, opts Options) error {
	runs, err := p.Runs(files)
	if err != nil {
		return err
	}
	run := runs[0]

	res, err := p.Load(ctx, run)
	if err != nil {
		return err
	}
	resolved, err := resolver.Resolve(res.Store, resolver.Options{Mode: run.Mode})
	if err != nil {
		return err
	}
	norm, err := p.Config.NormalizeOptions()
	if err != nil {
		return err
	}
	set, err := normalize.Normalize(resolved, norm)
	if err != nil {
		return err
	}

	rows := opts.Filter.Apply(render.ComputeRows(set))
	if opts.Dependents != "" {
		graph := resolver.BuildDependencyGraph(res.Store, resolver.Options{Mode: run.Mode})
		keep := transitiveDependents(graph, token.ParsePath(opts.Dependents))
		rows = slices.DeleteFunc(rows, func(r render.Row) bool { return !keep[r.Path] })
	}
	switch opts.Format {
	case "json":
		return render.JSON(w, rows)
	case "names":
		return render.Names(w, rows)
	case "markdown", "md":
		return render.Markdown(w, rows)
	case "table", "":
		return render.Table(w, rows, opts.Swatches)
	default:
		return fmt.Errorf("unknown format %q (valid: table, json, names, markdown)", opts.Format)
	}
}

// transitiveDependents collects every path that reaches root through references.
func transitiveDependents(g *resolver.DependencyGraph, root token.Path) map[string]bool {
	seen := make(map[string]bool)
	queue := []token.Path{root}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		for _, d := range g.Dependents(next) {
			if seen[d.String()] {
				continue
			}
			seen[d.String()] = true
			queue = append(queue, d)
		}
	}
	return seen
}
