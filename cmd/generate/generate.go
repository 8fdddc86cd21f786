/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for tokensmith.
package generate

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokensmith/cmd/project"
	"bennypowers.dev/tokensmith/config"
	"bennypowers.dev/tokensmith/emit"
	"bennypowers.dev/tokensmith/fs"
	"bennypowers.dev/tokensmith/internal/logger"
	"bennypowers.dev/tokensmith/lint"
	"bennypowers.dev/tokensmith/normalize"
	"bennypowers.dev/tokensmith/pipeline"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate platform artifacts from design tokens",
	Long: `Resolve the configured token sources for every brand and mode, and
write one artifact per configured output.

Output paths may contain {brand}, {mode} and {backend}. A path ending in a
slash receives the backend's default file name.

Examples:
  # Generate every configured output
  tokensmith generate

  # Only the dark mode of one brand
  tokensmith generate --brand acme --mode dark

  # Print a CSS rendition without touching the config
  tokensmith generate --backend css --stdout

  # Regenerate whenever a source changes
  tokensmith generate --watch`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringArrayP("backend", "B", nil, "Only generate these backends (repeatable); unconfigured ones use their default file name")
	Cmd.Flags().StringP("output", "o", "", "Directory output paths are relative to (default: project root)")
	Cmd.Flags().Bool("stdout", false, "Print artifacts instead of writing files")
	Cmd.Flags().BoolP("watch", "w", false, "Regenerate when sources or the config change")
	Cmd.Flags().Duration("debounce", DefaultDebounce, "Quiet period before regenerating in watch mode")
	Cmd.Flags().String("policy", "", "Override the type policy: fail-closed, warn-non-color")
	Cmd.Flags().Bool("list-backends", false, "Print the built-in and configured backend names and exit")
}

func run(cmd *cobra.Command, args []string) error {
	backends, _ := cmd.Flags().GetStringArray("backend")
	outDir, _ := cmd.Flags().GetString("output")
	toStdout, _ := cmd.Flags().GetBool("stdout")
	watch, _ := cmd.Flags().GetBool("watch")
	debounce, _ := cmd.Flags().GetDuration("debounce")
	policy, _ := cmd.Flags().GetString("policy")
	listBackends, _ := cmd.Flags().GetBool("list-backends")

	if watch && toStdout {
		return fmt.Errorf("--watch and --stdout are mutually exclusive")
	}

	p, err := project.Open(fs.NewOSFileSystem())
	if err != nil {
		return err
	}
	if listBackends {
		for _, name := range p.Config.BackendNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}
	g := &Generator{
		Project:  p,
		Backends: backends,
		OutDir:   outDir,
		Policy:   policy,
	}
	if toStdout {
		g.Stdout = cmd.OutOrStdout()
	}

	summary, err := g.Generate(cmd.Context())
	if !watch {
		return err
	}
	if err != nil {
		logger.Error("%v", err)
	}
	return g.Watch(cmd.Context(), summary.Files, debounce)
}

// Generator runs every configured output for every run of a project.
type Generator struct {
	Project *project.Project

	// Backends restricts generation to these backends.
	Backends []string

	// OutDir prefixes relative output paths. Defaults to the project root.
	OutDir string

	// Policy overrides the configured type policy.
	Policy string

	// Stdout receives artifacts instead of the filesystem when set.
	Stdout io.Writer
}

// Summary counts the outcome of one generation pass.
type Summary struct {
	Written, Unchanged, Failed int

	// Files lists the local sources that were read, for watching.
	Files []string
}

// Generate loads, resolves and emits every run. Failures are logged as
// they happen; the returned error reports how many artifacts failed.
func (g *Generator) Generate(ctx context.Context) (Summary, error) {
	var summary Summary
	cfg := g.Project.Config

	outputs, err := g.outputs()
	if err != nil {
		return summary, err
	}
	norm, err := cfg.NormalizeOptions()
	if err != nil {
		return summary, err
	}
	if g.Policy != "" {
		if norm.Policy, err = normalize.ParsePolicy(g.Policy); err != nil {
			return summary, err
		}
	}
	runs, err := g.Project.Runs(nil)
	if err != nil {
		return summary, err
	}

	start := time.Now()
	total := 0
	for _, run := range runs {
		label := project.Label(run)
		total += len(outputs)

		res, err := g.Project.Load(ctx, run)
		if err != nil {
			logger.Error("%s: %v", label, err)
			summary.Failed += len(outputs)
			continue
		}
		for _, f := range res.Files {
			if !slices.Contains(summary.Files, f) {
				summary.Files = append(summary.Files, f)
			}
		}
		for _, a := range lint.Check(res.Store) {
			logger.Warn("%s: %s", label, a)
		}

		targets := make([]pipeline.Target, len(outputs))
		for i, o := range outputs {
			b, err := cfg.Target(o)
			if err != nil {
				return summary, err
			}
			targets[i] = pipeline.Target{Backend: b, Meta: emit.Meta{Brand: run.Brand, Mode: run.Mode}}
		}

		artifacts, err := pipeline.Run(ctx, pipeline.Request{
			Store:     res.Store,
			Mode:      run.Mode,
			Normalize: norm,
			Targets:   targets,
		})
		if err != nil {
			logger.Error("%s: %v", label, err)
			summary.Failed += len(outputs)
			continue
		}

		for i, a := range artifacts {
			if a.Err != nil {
				logger.Error("%s: %s: %v", label, a.Backend, a.Err)
				summary.Failed++
				continue
			}
			written, err := g.write(outputs[i], run, a, len(runs) > 1)
			switch {
			case err != nil:
				logger.Error("%s: %s: %v", label, a.Backend, err)
				summary.Failed++
			case written:
				summary.Written++
			default:
				summary.Unchanged++
			}
		}
	}

	logger.Info("generated %d artifacts (%d unchanged, %d failed) in %s",
		summary.Written, summary.Unchanged, summary.Failed, time.Since(start).Round(time.Millisecond))
	if summary.Failed > 0 {
		return summary, fmt.Errorf("%d of %d artifacts failed", summary.Failed, total)
	}
	return summary, nil
}

// outputs returns the configured outputs, narrowed to Backends. A
// requested backend without a configured output gets a default one.
func (g *Generator) outputs() ([]config.Output, error) {
	configured := g.Project.Config.Outputs
	if len(g.Backends) == 0 {
		if len(configured) == 0 {
			return nil, fmt.Errorf("no outputs configured; pass --backend or add outputs to the config")
		}
		return configured, nil
	}

	var outputs []config.Output
	for _, name := range g.Backends {
		found := false
		for _, o := range configured {
			if strings.EqualFold(o.Backend, name) {
				outputs = append(outputs, o)
				found = true
			}
		}
		if !found {
			outputs = append(outputs, config.Output{Backend: name})
		}
	}
	for _, o := range outputs {
		if _, err := g.Project.Config.Target(o); err != nil {
			return nil, err
		}
	}
	return outputs, nil
}

// write persists one artifact. An output without a path is placed in
// brand and mode directories when there is more than one run.
func (g *Generator) write(o config.Output, run config.Run, a pipeline.Artifact, multi bool) (bool, error) {
	if g.Stdout != nil {
		_, err := g.Stdout.Write(a.Data)
		return err == nil, err
	}

	path := o.OutputPath(run.Brand, run.Mode, a.FileName)
	if o.Path == "" && multi {
		path = filepath.Join(run.Brand, run.Mode, path)
	}
	if !filepath.IsAbs(path) {
		base := g.OutDir
		if base == "" {
			base = g.Project.Root
		}
		path = filepath.Join(base, path)
	}

	written, err := fs.WriteIfChanged(g.Project.FS, path, a.Data, 0644)
	if err != nil {
		return false, err
	}
	if written {
		logger.Info("wrote %s", path)
	} else {
		logger.Debug("unchanged %s", path)
	}
	return written, nil
}
