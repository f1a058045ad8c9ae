package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user/fieldeditor/internal/handlers"
)

type fmtOptions struct {
	write  bool
	indent int
}

func newFmtCmd() *cobra.Command {
	opts := &fmtOptions{}

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Re-export a schema file in canonical form",
		Long: `Import a schema file and export it again, exactly as the editor's
"Copy JSON" and export actions would: catalogue key order, absent
properties omitted, unknown keys dropped.

Without --write the canonical text is printed to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Rewrite the file in place")
	cmd.Flags().IntVar(&opts.indent, "indent", 0, "Spaces per level (default from editor.indent)")

	return cmd
}

func init() {
	rootCmd.AddCommand(newFmtCmd())
}

func runFmt(cmd *cobra.Command, path string, opts *fmtOptions) error {
	cliOverrides := map[string]interface{}{}
	if cmd.Flags().Changed("indent") {
		cliOverrides["editor.indent"] = opts.indent
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

	result, err := handlers.NewFormatHandler(path, cfg.Editor.Indent, opts.write, logger).Handle(cmd.Context())
	if err != nil {
		return HandleCommandError(err, logger)
	}

	switch {
	case !opts.write:
		fmt.Fprint(cmd.OutOrStdout(), result.Formatted)
	case result.Written:
		fmt.Fprintf(cmd.OutOrStdout(), "Formatted %s\n", result.Path)
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "%s is already formatted\n", result.Path)
	}
	return nil
}
