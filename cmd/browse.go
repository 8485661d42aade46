package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"folio/app/catalog"
	"folio/app/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse projects in the terminal",
	Long: `Opens an interactive project browser. Typing narrows the list once input
has been idle for search.delay; tab and shift+tab cycle the tag filter.

Controls:
  tab, shift+tab - Next / previous tag
  esc, ctrl+c    - Quit`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	session := app.Projects.NewSearchSession()
	defer session.Close()

	model := tui.New(session, app.Projects.Tags(), app.Projects.List(catalog.ProjectQuery{}))
	p := tea.NewProgram(model,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}
