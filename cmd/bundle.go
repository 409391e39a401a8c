package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/PaulaGudiela/Fishbiotools/internal/bundle"
	"github.com/spf13/cobra"
)

// bundleCmd tidies a directory of zipped annotation bundles.
var bundleCmd = &cobra.Command{
	Use:   "bundle [dir]",
	Short: "Rename zipped annotation bundles and sort their files into folders",
	Long: `Rename each zip archive in a directory after the first file it holds,
then extract every archive, copying its files into folders by file type:

  .NCBI.txt  NCBI_files
  .pdf       images_pdf
  _genes.fa  genes_fa
  .gbk       gbk_files
  .log       log_files
  .txt       summary_files
  .fa        seqs_fa

Files of other types are left in the archive.`,
	Args:                       cobra.ExactArgs(1),
	RunE:                       runBundle,
	Aliases:                    []string{"zip"},
	SuggestionsMinimumDistance: 3,
	Example:                    "  fishbio bundle ./mitoannotator_results --rename=false",
}

func runBundle(cmd *cobra.Command, args []string) error {
	rename, _ := cmd.Flags().GetBool("rename")
	extract, _ := cmd.Flags().GetBool("extract")
	if !rename && !extract {
		return fmt.Errorf("nothing to do, enable --rename or --extract")
	}

	dir := args[0]
	sorter := bundle.NewSorter(logger)
	out := cmd.OutOrStdout()

	if rename {
		renames, err := sorter.RenameArchives(dir)
		if err != nil {
			return err
		}
		for _, r := range renames {
			fmt.Fprintf(out, "renamed %s -> %s\n", filepath.Base(r.From), filepath.Base(r.To))
		}
		fmt.Fprintf(out, "%d archives renamed\n", len(renames))
	}

	if extract {
		extractions, err := sorter.ExtractAndCategorize(dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d files extracted\n", len(extractions))
	}

	return nil
}

func init() {
	bundleCmd.Flags().Bool("rename", true, "rename archives after their first file")
	bundleCmd.Flags().Bool("extract", true, "extract archives into folders by file type")

	RootCmd.AddCommand(bundleCmd)
}
