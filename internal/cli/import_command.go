// filepath: internal/cli/import_command.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelhub/internal/dataimport"
	"reelhub/internal/models"
	"reelhub/internal/registry"
)

var (
	importCelebritiesFile string
	importContentFile     string
)

// importCmd runs the sample-data importer against the given files and
// reports the line counts. The catalog lives in memory, so outside a
// running server this is a validation pass over the files.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Validate sample data files",
	Long:  `Parses celebrity and content sample files and reports imported and skipped line counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if importCelebritiesFile == "" && importContentFile == "" {
			return fmt.Errorf("at least one of --celebrities or --content is required")
		}

		imp := dataimport.NewImporter(
			registry.New[*models.ContentItem]("content"),
			registry.New[*models.Person]("celebrities"),
		)

		reports := make([]*models.ImportReport, 0, 2)
		if importCelebritiesFile != "" {
			report, err := imp.ImportCelebrities(importCelebritiesFile)
			if err != nil {
				return err
			}
			reports = append(reports, report)
		}
		if importContentFile != "" {
			report, err := imp.ImportContent(importContentFile)
			if err != nil {
				return err
			}
			reports = append(reports, report)
		}

		for _, report := range reports {
			fmt.Printf("%s: %d imported, %d skipped\n", report.File, report.Imported, report.Skipped)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importCelebritiesFile, "celebrities", "", "Path to a celebrities sample file")
	importCmd.Flags().StringVar(&importContentFile, "content", "", "Path to a content sample file")
	RootCmd.AddCommand(importCmd)
}
