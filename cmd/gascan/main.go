// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gascan"
	"gascan/internal/analyzer"
	"gascan/internal/config"
	"gascan/internal/report"
	"gascan/internal/solversion"
)

var version = "0.1.0"

var (
	cfgFile      string
	jsonOutput   bool
	minSeverity  string
	disableRules []string
	noColor      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gascan <file.sol> [files...]",
		Short:         "Static gas analyzer for Solidity contracts",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.NoColor {
				color.NoColor = true
			}
			return runFiles(cmd, cfg, args)
		},
	}

	root.Flags().StringVar(&cfgFile, "config", "", "Path to a gascan YAML config file")
	root.Flags().BoolVar(&jsonOutput, "json", false, "Emit findings as JSON")
	root.Flags().StringVar(&minSeverity, "min-severity", "", "Lowest severity to report (high, medium, low, info)")
	root.Flags().StringSliceVar(&disableRules, "disable", nil, "Rule names to suppress (repeatable)")
	root.Flags().BoolVar(&noColor, "no-color", false, "Disable colorized output")

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gascan version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gascan %s\n", version)
		},
	}
}

// resolveConfig loads the optional config file and lets explicitly set flags
// override it.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("json") && jsonOutput {
		cfg.Format = "json"
	}
	if cmd.Flags().Changed("min-severity") {
		cfg.MinSeverity = minSeverity
	}
	if cmd.Flags().Changed("disable") {
		cfg.DisabledRules = append(cfg.DisabledRules, disableRules...)
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = noColor
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runFiles(cmd *cobra.Command, cfg *config.Config, paths []string) error {
	out := cmd.OutOrStdout()
	failed := false

	for _, path := range paths {
		startTime := time.Now()

		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
			failed = true
			continue
		}

		result, err := gascan.Run(string(source), path)
		if err != nil {
			color.Red("%v", err)
			failed = true
			continue
		}

		warnPragma(result)
		findings := report.Filter(result.Findings, cfg.DisabledRules, analyzer.Severity(cfg.MinSeverity))

		if cfg.Format == "json" {
			body, err := report.RenderJSON(path, findings)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(body))
		} else {
			reporter := report.NewReporter(path, string(source))
			fmt.Fprint(out, reporter.Render(findings))
		}

		if cfg.Format != "json" {
			color.Green("Analyzed %s in %s", path, formatDuration(time.Since(startTime)))
		}
	}

	if failed {
		return fmt.Errorf("analysis failed")
	}
	return nil
}

// warnPragma flags files targeting a pre-0.8 compiler, where the unchecked
// arithmetic and custom error suggestions do not apply.
func warnPragma(result *gascan.Result) {
	expr := gascan.PragmaVersion(result.Unit)
	if expr == "" {
		return
	}
	constraint, err := solversion.Parse(expr)
	if err != nil {
		return
	}
	if !constraint.AtLeast(0, 8) {
		color.Yellow("warning: pragma %q allows pre-0.8 compilers; unchecked and custom error suggestions assume 0.8+", expr)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
