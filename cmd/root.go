/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokensmith.
package cmd

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokensmith/cmd/generate"
	"bennypowers.dev/tokensmith/cmd/lint"
	"bennypowers.dev/tokensmith/cmd/list"
	"bennypowers.dev/tokensmith/cmd/project"
	"bennypowers.dev/tokensmith/cmd/validate"
	"bennypowers.dev/tokensmith/cmd/version"
	"bennypowers.dev/tokensmith/internal/logger"
)

// EnvPrefix namespaces environment overrides, e.g. TOKENSMITH_MODE.
const EnvPrefix = "TOKENSMITH"

var rootCmd = &cobra.Command{
	Use:   "tokensmith",
	Short: "Generate platform artifacts from design tokens",
	Long: `tokensmith resolves design token files into a single typed set and
generates source artifacts for every configured platform backend.`,
	SilenceUsage:      true,
	PersistentPreRunE: configureLogging,
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP(project.KeyConfig, "c", "", "Config file (default: .config/tokensmith.{yaml,yml,json,toml})")
	flags.String(project.KeyRoot, ".", "Project root that relative sources resolve against")
	flags.StringP(project.KeySchema, "s", "", "Force schema version (draft, v2025_10, sd)")
	flags.StringP(project.KeyBrand, "b", "", "Only process this brand")
	flags.StringP(project.KeyMode, "m", "", "Only process this mode")
	flags.Bool(project.KeyFetch, false, "Allow fetching URL and package sources over the network")
	flags.BoolP("verbose", "v", false, "Log debug messages")
	flags.BoolP("quiet", "q", false, "Only log warnings and errors")
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides --verbose and --quiet)")
	flags.String("log-format", "text", "Log format: text, json")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, key := range []string{
		project.KeyConfig, project.KeyRoot, project.KeySchema,
		project.KeyBrand, project.KeyMode, project.KeyFetch,
		"verbose", "quiet", "log-level", "log-format",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(lint.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func configureLogging(*cobra.Command, []string) error {
	switch {
	case viper.GetString("log-level") != "":
		logger.SetLevel(logger.ParseLevel(viper.GetString("log-level")))
	case viper.GetBool("verbose"):
		logger.SetLevel(slog.LevelDebug)
	case viper.GetBool("quiet"):
		logger.SetLevel(slog.LevelWarn)
	}
	if viper.GetString("log-format") == string(logger.FormatJSON) {
		logger.SetFormat(logger.FormatJSON)
	}
	return nil
}
