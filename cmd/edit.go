package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/user/fieldeditor/internal/logging"
	"github.com/user/fieldeditor/internal/tui/dashboard"
)

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Open the interactive field editor",
	Long: `Launch the terminal editor.

When a file is given it is imported at start-up; a file that does not
exist yet becomes the export target. Without an argument the editor opens
editor.schema_file from the configuration, or an empty schema.

Keys:
  ↑/↓ select a field, ←/→ select a property, enter edits it
  n adds a field, J/K moves the selected field
  tab toggles the visibility checklist
  c copies the JSON, ctrl+o imports, ctrl+e exports
  ? shows all keys, q quits`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(".", nil)
	if err != nil {
		return err
	}

	// the TUI owns the terminal, so the console core stays off
	logger, err := InitLogger(".", cfg.Logging, debugFlag, false)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	schemaFile := cfg.Editor.SchemaFile
	if len(args) == 1 {
		schemaFile = args[0]
	}

	logger.Info("Starting editor", logging.String("schema_file", schemaFile))

	model, err := dashboard.NewDashboard(cfg.Editor, logger, dashboard.WithSchemaFile(schemaFile))
	if err != nil {
		return HandleCommandError(err, logger)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return HandleCommandError(fmt.Errorf("error running editor: %w", err), logger)
	}

	if m, ok := finalModel.(dashboard.DashboardModel); ok {
		state := m.State()
		logger.Info("Editor closed",
			logging.Int("fields", state.Fields.Len()),
			logging.String("source", state.Source))
	}
	return nil
}
