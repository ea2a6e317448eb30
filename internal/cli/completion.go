package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// completeLicenseIDs completes the <license> argument of show and add.
func completeLicenseIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	catalog, err := loadCatalog()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	completions := make([]string, 0, catalog.Len())
	for _, license := range catalog.Licenses() {
		if strings.HasPrefix(license.ID, toComplete) {
			completions = append(completions, license.ID+"\t"+license.Name)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
