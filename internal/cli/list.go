package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print a list of available open source licenses",
	Long:    "Print the id and full name of every bundled license, in catalog order.",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return failure(WriteOutput(out, catalog.Licenses()))
		}

		_, err = fmt.Fprintln(out, catalog.FormatListing())
		return failure(err)
	},
}
