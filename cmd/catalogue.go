package cmd

import (
	"fmt"
	"strings"

	"github.com/PaulaGudiela/Fishbiotools/internal/mitogenome"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// catalogueCmd lists the genes a complete mitogenome is expected to have.
var catalogueCmd = &cobra.Command{
	Use:                        "catalogue",
	Short:                      "List the genes expected in a complete mitogenome",
	RunE:                       runCatalogue,
	Aliases:                    []string{"genes"},
	SuggestionsMinimumDistance: 3,
	Example:                    "  fishbio catalogue --catalogue my_genes.yaml",
}

func runCatalogue(cmd *cobra.Command, args []string) error {
	// the "catalogue" key is bound to mitogenome's flag, this one wins when set
	path := viper.GetString("catalogue")
	if cmd.Flags().Changed("catalogue") {
		path, _ = cmd.Flags().GetString("catalogue")
	}

	catalogue, err := mitogenome.LoadCatalogue(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, cat := range mitogenome.Categories {
		genes := catalogue.Expected(cat)
		fmt.Fprintf(out, "%s (%d): %s\n", cat, len(genes), strings.Join(genes, ", "))
	}
	return nil
}

func init() {
	catalogueCmd.Flags().StringP("catalogue", "g", "", "YAML gene catalogue (default: built in fish catalogue)")

	RootCmd.AddCommand(catalogueCmd)
}
