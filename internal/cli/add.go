package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/licensit/licensit/internal/author"
	"github.com/licensit/licensit/internal/logging"
)

// licenseFileName is written in the current directory by add.
const licenseFileName = "LICENSE"

var (
	addUser string
	addYear int
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addUser, "user", "u", "", "copyright holder (default: $"+author.EnvVar+", git user.name, OS user)")
	addCmd.Flags().IntVarP(&addYear, "year", "y", currentYear(), "copyright year")
}

var addCmd = &cobra.Command{
	Use:   "add <license>",
	Short: "Write the selected open source license to ./LICENSE",
	Long: `Render a license and write it to a file named LICENSE in the current directory.

An existing LICENSE file is overwritten. The text is written exactly as rendered.`,
	Example: `  licensit add mit --user "Jane Doe"
  LICENSE_AUTHOR="Jane Doe" licensit add apache-2.0 --year 2021`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeLicenseIDs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateYear(addYear); err != nil {
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

		res := resolveAuthor(addUser)
		text, err := catalog.Render(license, res.Name, addYear)
		if err != nil {
			return failure(err)
		}

		if err := os.WriteFile(licenseFileName, []byte(text), 0o644); err != nil {
			return failure(fmt.Errorf("write %s: %w", licenseFileName, err))
		}

		path, err := filepath.Abs(licenseFileName)
		if err != nil {
			path = licenseFileName
		}
		logger := logging.Component("cli")
		logger.Debug().Str("license", license.ID).Str("path", path).Int("bytes", len(text)).Msg("license written")

		if IsJSONOutput() {
			payload := renderedLicense{
				ID:    license.ID,
				Name:  license.Name,
				Path:  path,
				Bytes: len(text),
			}
			if license.HasPlaceholders() {
				payload.Author = res.Name
				payload.Year = &addYear
			}
			return failure(WriteOutput(cmd.OutOrStdout(), payload))
		}

		stderr := cmd.ErrOrStderr()
		st := newStyles(stderr)
		fmt.Fprintf(stderr, "%s %s %s\n", st.Success.Render("Created"), licenseFileName, st.Muted.Render("("+describe(license, addYear, res)+")"))
		return nil
	},
}
