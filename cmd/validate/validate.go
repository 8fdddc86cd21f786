/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tokensmith.
package validate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"

	"bennypowers.dev/tokensmith/cmd/project"
	"bennypowers.dev/tokensmith/fs"
	"bennypowers.dev/tokensmith/normalize"
	"bennypowers.dev/tokensmith/parser"
	"bennypowers.dev/tokensmith/resolver"
	"bennypowers.dev/tokensmith/schema"
	"bennypowers.dev/tokensmith/specifier"
	"bennypowers.dev/tokensmith/token"
	"bennypowers.dev/tokensmith/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate design token files",
	Long: `Validate design token files for schema consistency, then resolve and
type every brand and mode the way generate would, without writing anything.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	p, err := project.Open(fs.NewOSFileSystem())
	if err != nil {
		return err
	}
	problems, err := Check(cmd.Context(), cmd.OutOrStdout(), p, args)
	if err != nil {
		return err
	}
	if problems > 0 {
		return fmt.Errorf("validation failed: %d problems", problems)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "All files valid.")
	return nil
}

// Check validates every local source file, then every run. Problems are
// written to w and counted; the error is reserved for failures to start.
func Check(ctx context.Context, w io.Writer, p *project.Project, files []string) (int, error) {
	local, err := localFiles(p, files)
	if err != nil {
		return 0, err
	}
	if len(local) == 0 && len(files) == 0 && len(p.Config.Sources) == 0 && len(p.Config.Brands) == 0 {
		return 0, fmt.Errorf("no files specified and no sources found in config")
	}

	problems := 0
	for _, file := range local {
		problems += checkFile(w, p, file)
	}

	norm, err := p.Config.NormalizeOptions()
	if err != nil {
		return problems, err
	}
	runs, err := p.Runs(files)
	if err != nil {
		return problems, err
	}
	for _, run := range runs {
		label := project.Label(run)
		res, err := p.Load(ctx, run)
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", label, err)
			problems++
			continue
		}
		graph := resolver.BuildDependencyGraph(res.Store, resolver.Options{Mode: run.Mode})
		if cycle := graph.FindCycle(); cycle != nil {
			fmt.Fprintf(w, "%s: circular reference: %s\n", label, joinPaths(cycle))
			problems++
			continue
		}
		resolved, err := resolver.Resolve(res.Store, resolver.Options{Mode: run.Mode})
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", label, err)
			problems++
			continue
		}
		set, err := normalize.Normalize(resolved, norm)
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", label, err)
			problems++
			continue
		}
		fmt.Fprintf(w, "%s: %d tokens\n", label, set.Len())
	}
	return problems, nil
}

func joinPaths(paths []token.Path) string {
	parts := make([]string, len(paths))
	for i, p := range paths {
		parts[i] = p.String()
	}
	return strings.Join(parts, " → ")
}

func checkFile(w io.Writer, p *project.Project, file string) int {
	data, err := p.FS.ReadFile(file)
	if err != nil {
		fmt.Fprintf(w, "%s: %v\n", file, err)
		return 1
	}

	version := p.Schema
	if version == schema.Unknown {
		detect := data
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
			detect = jsonc.ToJSON(data)
		}
		if version, err = schema.DetectVersion(detect, nil); err != nil {
			fmt.Fprintf(w, "%s: %v\n", file, err)
			return 1
		}
	}

	errs := validator.ValidateConsistency(data, version, file)
	for _, e := range errs {
		fmt.Fprintln(w, e.Error())
	}
	if len(errs) > 0 {
		return len(errs)
	}

	if _, err := parser.Parse(data, parser.Options{
		SchemaVersion: version,
		GroupMarkers:  p.Config.GroupMarkers,
		FilePath:      file,
	}); err != nil {
		fmt.Fprintf(w, "%s: %v\n", file, err)
		return 1
	}
	return 0
}

// localFiles expands the local, glob and installed package sources among
// files, or among the configured sources when files is empty. Remote
// sources are left to the run checks.
func localFiles(p *project.Project, files []string) ([]string, error) {
	specs := files
	if len(specs) == 0 {
		for _, s := range p.Config.Sources {
			specs = append(specs, s.Path)
		}
		for _, brand := range p.Config.BrandNames() {
			for _, s := range p.Config.Brands[brand] {
				specs = append(specs, s.Path)
			}
		}
	}

	var out []string
	for _, raw := range specs {
		spec := specifier.Parse(raw)
		var matches []string
		switch spec.Kind {
		case specifier.KindGlob:
			m, err := specifier.Expand(p.FS, p.Root, spec)
			if err != nil {
				return nil, err
			}
			matches = m
		case specifier.KindLocal:
			path, err := specifier.Resolve(p.FS, p.Root, spec)
			if err != nil {
				return nil, err
			}
			matches = []string{path}
		case specifier.KindNPM, specifier.KindJSR:
			// Packages missing from node_modules may still load from a CDN.
			if path, err := specifier.Resolve(p.FS, p.Root, spec); err == nil {
				matches = []string{path}
			}
		default:
			continue
		}
		for _, m := range matches {
			if !slices.Contains(out, m) {
				out = append(out, m)
			}
		}
	}
	return out, nil
}
