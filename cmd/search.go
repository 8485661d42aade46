package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"folio/app/catalog"
	"folio/app/models"
)

var (
	searchTag  string
	searchJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search projects",
	Long: `Filters the project catalog once. Text matches titles and descriptions
ignoring case; --tag keeps projects carrying the tag, also ignoring case.
Both filters must match.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchTag, "tag", "t", "", "only projects with this tag")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	q := catalog.ProjectQuery{Tag: searchTag}
	if len(args) == 1 {
		q.Text = args[0]
	}
	projects := app.Projects.List(q)

	if searchJSON {
		return outputSearchJSON(cmd, projects)
	}
	outputSearchTable(cmd, q, projects)
	return nil
}

func outputSearchJSON(cmd *cobra.Command, projects []models.Project) error {
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, q catalog.ProjectQuery, projects []models.Project) {
	if len(projects) == 0 {
		if q.IsZero() {
			fmt.Fprintln(cmd.OutOrStdout(), "No projects yet.")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
		}
		return
	}

	noun := "projects"
	if len(projects) == 1 {
		noun = "project"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Showing %d %s\n\n", len(projects), noun)
	for i, p := range projects {
		fmt.Fprintf(cmd.OutOrStdout(), "  [%d] %s (%s)\n", i+1, p.Title, p.ID)
		fmt.Fprintf(cmd.OutOrStdout(), "      %s\n", p.Description)
		if len(p.Tags) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "      Tags: %s\n", strings.Join(p.Tags, ", "))
		}
	}
}
