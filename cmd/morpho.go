package cmd

import (
	"fmt"
	"strconv"

	"github.com/PaulaGudiela/Fishbiotools/internal/morpho"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// morphoCmd is the parent of the spreadsheet transforms.
var morphoCmd = &cobra.Command{
	Use:   "morpho",
	Short: "Normalize spreadsheets (.xlsx) of morphometric measurements",
	Long: `Normalize spreadsheets (.xlsx) of morphometric measurements.

Each transform reads the first sheet of the --in workbook and writes the
result to a new workbook at --out. The first column holds the sample labels.`,
	Aliases:                    []string{"morph"},
	SuggestionsMinimumDistance: 3,
}

var morphoTransposeCmd = &cobra.Command{
	Use:     "transpose",
	Short:   "Swap rows and columns",
	Args:    cobra.NoArgs,
	Example: "  fishbio morpho transpose --in raw.xlsx --out samples.xlsx",
	RunE: func(cmd *cobra.Command, args []string) error {
		return transformTable(cmd, func(t *morpho.Table) (*morpho.Table, error) {
			return t.Transpose(), nil
		})
	},
}

var morphoRenameCmd = &cobra.Command{
	Use:     "rename [name]",
	Short:   "Rename the sample label column",
	Args:    cobra.ExactArgs(1),
	Example: "  fishbio morpho rename Specimen --in samples.xlsx --out named.xlsx",
	RunE: func(cmd *cobra.Command, args []string) error {
		return transformTable(cmd, func(t *morpho.Table) (*morpho.Table, error) {
			return t.RenameFirstColumn(args[0]), nil
		})
	},
}

var morphoCleanCmd = &cobra.Command{
	Use:     "clean",
	Short:   "Drop the samples with a non-numeric measurement",
	Args:    cobra.NoArgs,
	Example: "  fishbio morpho clean --in named.xlsx --out clean.xlsx",
	RunE: func(cmd *cobra.Command, args []string) error {
		return transformTable(cmd, func(t *morpho.Table) (*morpho.Table, error) {
			return t.DropNonNumeric(), nil
		})
	},
}

var morphoDivideCmd = &cobra.Command{
	Use:   "divide [column]",
	Short: "Divide each sample's measurements by one of its columns",
	Long: `Divide each sample's measurements by its value in a measurement column,
ex: by standard length. Columns are counted from 1, skipping the label column.`,
	Args:    cobra.ExactArgs(1),
	Example: "  fishbio morpho divide 1 --in clean.xlsx --out ratios.xlsx",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("failed to parse column number %q: %w", args[0], err)
		}
		return transformTable(cmd, func(t *morpho.Table) (*morpho.Table, error) {
			return t.DivideByColumn(n)
		})
	},
}

var morphoScaleCmd = &cobra.Command{
	Use:     "scale",
	Short:   "Multiply every measurement by a factor",
	Args:    cobra.NoArgs,
	Example: "  fishbio morpho scale --factor 100 --in ratios.xlsx --out percent.xlsx",
	RunE: func(cmd *cobra.Command, args []string) error {
		factor, _ := cmd.Flags().GetFloat64("factor")
		return transformTable(cmd, func(t *morpho.Table) (*morpho.Table, error) {
			return t.Scale(factor)
		})
	},
}

var morphoLogCmd = &cobra.Command{
	Use:     "log",
	Short:   "Take the natural log of the numeric measurement columns",
	Args:    cobra.NoArgs,
	Example: "  fishbio morpho log --in percent.xlsx --out log.xlsx",
	RunE: func(cmd *cobra.Command, args []string) error {
		return transformTable(cmd, func(t *morpho.Table) (*morpho.Table, error) {
			return t.Log(), nil
		})
	},
}

// transformTable loads --in, applies transform and saves the result to --out
func transformTable(cmd *cobra.Command, transform func(*morpho.Table) (*morpho.Table, error)) error {
	in, _ := cmd.Flags().GetString("in")
	out, _ := cmd.Flags().GetString("out")
	if in == out {
		return fmt.Errorf("--in and --out must differ")
	}

	t, err := morpho.Load(in)
	if err != nil {
		return err
	}
	logger.Debug("loaded table",
		zap.String("path", in),
		zap.Int("rows", len(t.Rows)),
		zap.Int("columns", t.Width()))

	result, err := transform(t)
	if err != nil {
		return err
	}
	if err := result.Save(out); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows written to %s\n", cmd.Name(), len(result.Rows), out)
	return nil
}

func init() {
	morphoCmd.PersistentFlags().StringP("in", "i", "", "input workbook (.xlsx)")
	morphoCmd.PersistentFlags().StringP("out", "o", "", "output workbook (.xlsx)")
	morphoCmd.MarkPersistentFlagRequired("in")
	morphoCmd.MarkPersistentFlagRequired("out")

	morphoScaleCmd.Flags().Float64P("factor", "x", 100, "multiplier")

	morphoCmd.AddCommand(
		morphoTransposeCmd,
		morphoRenameCmd,
		morphoCleanCmd,
		morphoDivideCmd,
		morphoScaleCmd,
		morphoLogCmd,
	)
	RootCmd.AddCommand(morphoCmd)
}
