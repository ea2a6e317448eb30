package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/licensit/licensit/internal/author"
)

var (
	showUser     string
	showYear     int
	showTemplate bool
)

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&showUser, "user", "u", "", "copyright holder (default: $"+author.EnvVar+", git user.name, OS user)")
	showCmd.Flags().IntVarP(&showYear, "year", "y", currentYear(), "copyright year")
	showCmd.Flags().BoolVarP(&showTemplate, "template", "t", false, "print the raw template without filling in placeholders")
	showCmd.MarkFlagsMutuallyExclusive("template", "user")
	showCmd.MarkFlagsMutuallyExclusive("template", "year")
}

var showCmd = &cobra.Command{
	Use:   "show <license>",
	Short: "Print the content of the selected open source license",
	Long: `Print a license with the author and year filled in.

With --template the license is printed exactly as bundled, placeholders included.`,
	Example: `  licensit show mit --user "Jane Doe" --year 2023
  licensit show gpl-3.0 --template`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeLicenseIDs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateYear(showYear); err != nil {
			return err
		}

		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		license, err := catalog.Find(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		payload := renderedLicense{ID: license.ID, Name: license.Name}

		if showTemplate {
			text, err := catalog.RenderRaw(license)
			if err != nil {
				return failure(err)
			}
			payload.Template = true
			payload.Text = text
		} else {
			res := resolveAuthor(showUser)
			text, err := catalog.Render(license, res.Name, showYear)
			if err != nil {
				return failure(err)
			}
			payload.Text = text
			if license.HasPlaceholders() {
				payload.Author = res.Name
				payload.Year = &showYear
			}
		}

		if IsJSONOutput() {
			return failure(WriteOutput(out, payload))
		}
		_, err = fmt.Fprintln(out, payload.Text)
		return failure(err)
	},
}
