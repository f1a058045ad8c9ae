package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user/fieldeditor/internal/errors"
	"github.com/user/fieldeditor/internal/handlers"
	"github.com/user/fieldeditor/internal/logging"
	"github.com/user/fieldeditor/internal/tui"
)

type checkOptions struct {
	outputFormat string
	maxWorkers   int
	details      bool
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check that schema files can be imported",
		Long: `Import every given schema file the way the editor would and report
which ones are accepted.

A file is rejected when it is not valid JSON or when its top level is not
an array of field objects. Keys outside the property catalogue are ignored
on import; use --details to list them.

Exit codes:
  0: every file was accepted
  3: at least one file was rejected
  4: a file could not be read`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputFormat, "output", "o", handlers.FormatText, "Output format (text, json)")
	cmd.Flags().IntVar(&opts.maxWorkers, "max-workers", 0, "Maximum concurrent workers (0=auto)")
	cmd.Flags().BoolVarP(&opts.details, "details", "d", false, "Show ignored keys and error causes")

	return cmd
}

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func runCheck(cmd *cobra.Command, files []string, opts *checkOptions) error {
	if opts.outputFormat != handlers.FormatText && opts.outputFormat != handlers.FormatJSON {
		return errors.NewInvalidConfigValueError("output", opts.outputFormat, "Must be one of: text, json")
	}

	cliOverrides := map[string]interface{}{}
	if cmd.Flags().Changed("max-workers") {
		cliOverrides["check.max_workers"] = opts.maxWorkers
	}

	cfg, err := loadConfig(".", cliOverrides)
	if err != nil {
		return err
	}

	logger, err := InitLogger(".", cfg.Logging, debugFlag, verboseFlag)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	handler := handlers.NewCheckHandler(cfg.Check, files, opts.details, logger)

	showProgress := opts.outputFormat == handlers.FormatText && !verboseFlag
	var progress *tui.Progress
	if showProgress {
		progress = tui.NewProgress("Schema Check")
		progress.SetWriter(cmd.OutOrStdout())
		progress.Start()
		handler.SetProgress(progress)
	}

	report, err := handler.Handle(cmd.Context())
	if err != nil {
		return HandleCommandError(err, logger)
	}

	switch opts.outputFormat {
	case handlers.FormatJSON:
		output, err := handler.FormatJSONReport(report)
		if err != nil {
			return HandleCommandError(err, logger)
		}
		fmt.Fprintln(cmd.OutOrStdout(), output)
	default:
		if showProgress {
			progress.PrintSummary()
		}
		if !showProgress || opts.details {
			fmt.Fprint(cmd.OutOrStdout(), handler.FormatTextReport(report))
		}
	}

	if report.HasErrors() {
		err := errors.NewError(fmt.Sprintf("%d of %d schema file(s) rejected", report.Invalid, len(report.Files)), errors.ExitValidationError)
		logger.Warn("Check failed", logging.Int("invalid", report.Invalid))
		return err
	}
	return nil
}
