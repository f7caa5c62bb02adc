// Package main provides the CLI entry point for confcheck.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck"
	"github.com/Qaminono/Conference-Validator/pkg/confcheck/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	outputPath string
	pretty     bool
	format     string
	mode       string
	sheetName  string
	configPath string
	encoding   string
	verbose    bool

	logger *zap.Logger
)

// errFindings signals a report with errors; the message is already printed.
var errFindings = errors.New("validation errors found")

func main() {
	rootCmd := &cobra.Command{
		Use:   "confcheck",
		Short: "Validate conference submission sheets",
		Long: `confcheck checks conference submission sheets (author names, roles,
emails, sessions, titles and URLs) and applies one-click cleanups.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Rule config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "Sheet name (default: every sheet for validate, first sheet for clean)")
	rootCmd.PersistentFlags().StringVar(&encoding, "encoding", "utf-8", "Encoding of csv input: utf-8, latin1, windows-1252")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	validateCmd := &cobra.Command{
		Use:   "validate [input.xlsx|input.csv]",
		Short: "Validate a submission sheet and print the report",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
	validateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	validateCmd.Flags().StringVar(&format, "format", "text", "Report format: text, json")
	validateCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	validateCmd.Flags().StringVar(&mode, "mode", string(confcheck.ModeStrict), "Reporting mode: strict, errors")

	cleanCmd := &cobra.Command{
		Use:   "clean [input.xlsx|input.csv] [cleanup]",
		Short: "Apply a cleanup and save the result",
		Long: `Apply one cleanup to a sheet. Cleanups:
  reset-headers                write the expected header row
  clear-range                  empty every cell right of column J
  remove-full-duplicates       drop rows repeated on all ten fields
  remove-presented-duplicates  drop rows repeated on name, affiliation, role, session and title
  strip-markup                 replace embedded HTML with plain text`,
		Args: cobra.ExactArgs(2),
		RunE: runClean,
	}
	cleanCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: overwrite input)")
	cleanCmd.Flags().StringVar(&format, "format", "text", "Summary format: text, json")
	cleanCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	watchCmd := &cobra.Command{
		Use:   "watch [input.xlsx|input.csv]",
		Short: "Re-validate the file every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	watchCmd.Flags().StringVar(&mode, "mode", string(confcheck.ModeStrict), "Reporting mode: strict, errors")

	configCmd := &cobra.Command{
		Use:   "init-config [rules.yaml]",
		Short: "Write the built-in rule data as an editable YAML file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInitConfig,
	}

	rootCmd.AddCommand(validateCmd, cleanCmd, watchCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func buildOptions() (confcheck.Options, error) {
	opts := confcheck.DefaultOptions()
	opts.Logger = logger
	opts.Sheet = sheetName
	opts.Encoding = encoding

	m, err := confcheck.ParseMode(mode)
	if err != nil {
		return opts, err
	}
	opts.Mode = m

	if configPath != "" {
		cfg, err := confcheck.LoadConfig(configPath)
		if err != nil {
			return opts, err
		}
		opts.Config = cfg
	}
	return opts, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions()
	if err != nil {
		return err
	}

	wb, err := confcheck.ValidateFile(args[0], opts)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "json":
		data, err := output.WorkbookToJSON(wb, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if _, err := fmt.Fprintln(out, string(data)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	case "text":
		if err := output.RenderWorkbook(out, wb); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	default:
		return fmt.Errorf("invalid format: %s (must be text or json)", format)
	}

	if wb.HasErrors() {
		return errFindings
	}
	return nil
}

func runClean(cmd *cobra.Command, args []string) error {
	input := args[0]
	op, err := confcheck.ParseCleanup(args[1])
	if err != nil {
		return err
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (must be text or json)", format)
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}
	v, err := confcheck.NewValidator(opts)
	if err != nil {
		return err
	}

	out := outputPath
	if out == "" {
		out = input
	}
	res, err := v.CleanFile(input, out, sheetName, op)
	if err != nil {
		return fmt.Errorf("cleanup failed: %w", err)
	}

	w := cmd.OutOrStdout()
	if format == "json" {
		data, err := output.ResultToJSON(res, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}
	fmt.Fprintf(w, "%s: %d row(s) removed, %d cell(s) changed", res.Cleanup, res.RowsRemoved, res.CellsChanged)
	if res.Cleared != nil {
		fmt.Fprintf(w, ", cleared %s", res.Cleared)
	}
	fmt.Fprintf(w, " -> %s\n", out)
	return nil
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	cfg, err := confcheck.LoadConfig(configPath)
	if err != nil {
		return err
	}
	return confcheck.WriteConfig(args[0], *cfg)
}
