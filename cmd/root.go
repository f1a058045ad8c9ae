package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/fieldeditor/internal/errors"
)

var (
	debugFlag   bool
	verboseFlag bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fieldeditor",
	Short: "Terminal editor for form-field schemas",
	Long: `Edit ordered lists of form-field definitions stored as JSON.

The interactive editor shows every field with one widget per visible
property, lets you add and reorder fields, and exports or copies the
resulting JSON. The check, render and fmt commands work on schema files
without starting the editor.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with the code of the error kind
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(errors.ExitCodeOf(err).Int())
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug mode")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show detailed log output on the console")
}
