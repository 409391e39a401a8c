package cmd

import (
	"fmt"
	"io"

	"github.com/PaulaGudiela/Fishbiotools/config"
	"github.com/PaulaGudiela/Fishbiotools/internal/mitogenome"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// mitogenomeCmd audits a directory of GenBank mitogenome records.
var mitogenomeCmd = &cobra.Command{
	Use:   "mitogenome [dir]",
	Short: "Audit the integrity of the mitogenome records (GenBank) in a directory",
	Long: `Audit the integrity of the mitochondrial genome records in a directory.

Each record's length, GC content and undetermined (N) bases are measured and
its rRNA, CDS, tRNA and D-loop annotations are checked against the gene
catalogue. Records with both rRNAs and all 13 protein coding genes are complete.

A record that can't be parsed is reported as incomplete and does not stop
the run.`,
	Args:                       cobra.ExactArgs(1),
	RunE:                       runMitogenome,
	Aliases:                    []string{"mito"},
	SuggestionsMinimumDistance: 3,
	Example:                    "  fishbio mitogenome ./records --report --chart --out fish_run",
}

// runMitogenome analyzes the records and writes the requested outputs
func runMitogenome(cmd *cobra.Command, args []string) error {
	conf, err := config.New()
	if err != nil {
		return err
	}

	catalogue, err := mitogenome.LoadCatalogue(conf.Catalogue)
	if err != nil {
		return err
	}

	analyzer := mitogenome.NewAnalyzer(catalogue, logger)
	results, err := analyzer.AnalyzeDir(args[0], conf.Extension)
	if err != nil {
		return err
	}

	summary := mitogenome.Summarize(results)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "analyzed %d records: %d complete, %d incomplete\n",
		len(results), summary.Complete, summary.Incomplete)

	base, _ := cmd.Flags().GetString("out")
	writeReport, _ := cmd.Flags().GetBool("report")
	writeChart, _ := cmd.Flags().GetBool("chart")
	writeJSON, _ := cmd.Flags().GetBool("json")

	return writeOutputs(out, conf, catalogue, results, base, writeReport, writeChart, writeJSON)
}

// writeOutputs writes the report, chart and JSON files that were asked for
func writeOutputs(
	out io.Writer,
	conf *config.Config,
	catalogue *mitogenome.Catalogue,
	results []mitogenome.Result,
	base string,
	report, chart, json bool,
) error {
	if report {
		path := conf.ReportFile(base)
		rp := mitogenome.Reporter{
			Catalogue:       catalogue,
			ShowMissingTRNA: conf.Report.ShowMissingTRNA,
		}
		if err := rp.WriteFile(path, results); err != nil {
			return err
		}
		logger.Debug("wrote report", zap.String("path", path))
		fmt.Fprintf(out, "text report written to %s\n", path)
	}

	if chart {
		path := conf.ChartFile(base)
		if err := mitogenome.WriteChart(path, mitogenome.Summarize(results)); err != nil {
			return err
		}
		fmt.Fprintf(out, "chart written to %s\n", path)
	}

	if json {
		path := conf.JSONFile(base)
		if _, err := mitogenome.WriteJSON(path, results); err != nil {
			return err
		}
		fmt.Fprintf(out, "results written to %s\n", path)
	}

	return nil
}

// set flags
func init() {
	mitogenomeCmd.Flags().BoolP("report", "r", false, "write a text report to <out>_report.txt")
	mitogenomeCmd.Flags().BoolP("chart", "c", false, "write a completeness chart to <out>_histogram.<format>")
	mitogenomeCmd.Flags().BoolP("json", "j", false, "write the results as JSON to <out>_results.json")
	mitogenomeCmd.Flags().StringP("out", "o", "mitogenome_report", "base name of the output files")
	mitogenomeCmd.Flags().StringP("catalogue", "g", "", "YAML gene catalogue (default: built in fish catalogue)")
	mitogenomeCmd.Flags().StringP("extension", "e", config.RecordExtension, "suffix of the record files")
	mitogenomeCmd.Flags().StringP("format", "f", config.ChartFormat, "chart format: pdf, png, svg, eps, jpg or tif")
	mitogenomeCmd.Flags().Bool("show-missing-trna", false, "also list the missing tRNA genes in the report")

	viper.BindPFlag("catalogue", mitogenomeCmd.Flags().Lookup("catalogue"))
	viper.BindPFlag("extension", mitogenomeCmd.Flags().Lookup("extension"))
	viper.BindPFlag("chart.format", mitogenomeCmd.Flags().Lookup("format"))
	viper.BindPFlag("report.show-missing-trna", mitogenomeCmd.Flags().Lookup("show-missing-trna"))

	RootCmd.AddCommand(mitogenomeCmd)
}
