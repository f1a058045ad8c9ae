package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/user/fieldeditor/internal/editor"
	"github.com/user/fieldeditor/internal/errors"
	"github.com/user/fieldeditor/internal/export"
	"github.com/user/fieldeditor/internal/handlers"
	"github.com/user/fieldeditor/internal/logging"
)

type renderOptions struct {
	show         string
	outputFormat string
	outFile      string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Print the widgets the editor would show for a schema file",
		Long: `Import a schema file and print, for every field, the widget chosen for
each visible property together with its current value.

The visible properties come from editor.visible_properties unless --show
is given, e.g. --show id,label,options.

With -o markdown or -o html the same content is written as a document
that can be shared; --out writes it to a file instead of stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.show, "show", "", "Comma-separated properties to show")
	cmd.Flags().StringVarP(&opts.outputFormat, "output", "o", handlers.FormatText, "Output format (text, json, markdown, html)")
	cmd.Flags().StringVar(&opts.outFile, "out", "", "Write the output to a file")

	return cmd
}

func init() {
	rootCmd.AddCommand(newRenderCmd())
}

func runRender(cmd *cobra.Command, path string, opts *renderOptions) error {
	switch opts.outputFormat {
	case handlers.FormatText, handlers.FormatJSON, handlers.FormatMarkdown, handlers.FormatHTML:
	default:
		return errors.NewInvalidConfigValueError("output", opts.outputFormat, "Must be one of: text, json, markdown, html")
	}

	cliOverrides := map[string]interface{}{}
	if cmd.Flags().Changed("show") {
		cliOverrides["editor.visible_properties"] = opts.show
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

	visible, err := cfg.Editor.Visibility()
	if err != nil {
		return HandleCommandError(err, logger)
	}

	view, err := handlers.NewRenderHandler(path, visible, logger).Handle(cmd.Context())
	if err != nil {
		return HandleCommandError(err, logger)
	}

	var output string
	switch opts.outputFormat {
	case handlers.FormatJSON:
		output, err = handlers.FormatJSONView(view)
		output += "\n"
	case handlers.FormatMarkdown:
		output = export.Markdown(pageTitle(path), view)
	case handlers.FormatHTML:
		output, err = renderHTML(view)
	default:
		output = handlers.FormatTextView(view)
	}
	if err != nil {
		return HandleCommandError(err, logger)
	}

	if opts.outFile == "" {
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	}
	if err := os.WriteFile(opts.outFile, []byte(output), 0644); err != nil {
		return HandleCommandError(errors.NewFileWriteError(opts.outFile, err), logger)
	}
	logger.Info("Render written", logging.String("path", opts.outFile), logging.String("format", opts.outputFormat))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.outFile)
	return nil
}

func renderHTML(view editor.View) (string, error) {
	exporter, err := export.NewHTMLExporter()
	if err != nil {
		return "", err
	}
	page, err := exporter.Render(view)
	if err != nil {
		return "", err
	}
	return string(page), nil
}

func pageTitle(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
