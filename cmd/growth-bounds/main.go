package main

import (
	"bytes"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ensigniasec/growth-bounds/internal/growth"
	"github.com/ensigniasec/growth-bounds/internal/output"
	"github.com/ensigniasec/growth-bounds/internal/report"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	outputPath = output.DefaultPath
	verbose    bool
	noOpen     bool
	quiet      bool

	rootCmd = &cobra.Command{
		Use:   "growth-bounds",
		Short: "Tabulate the largest problem size solvable in a fixed time for common growth functions.",
		Long: `For each growth function f(n) (lg n, √n, n, n lg n, n^2, n^3, 2^n, n!) and each time budget
from 1 second to 1 century, compute the largest n that can be solved when the algorithm takes f(n)
microseconds. The result is written as an HTML table and opened in the default browser.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			if err := run(cmd); err != nil {
				logrus.Fatal(err)
			}
		},
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr so stdout only carries the table echo.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().
		StringVar(&outputPath, "output", output.DefaultPath, "Path of the HTML report; the parent directory must exist")
	rootCmd.PersistentFlags().BoolVar(&noOpen, "no-open", false, "Do not open the report in a browser")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Do not echo the table to stdout")

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

// run builds the whole table before touching the output file, so a solver
// failure never leaves a partial report behind.
func run(cmd *cobra.Command) error {
	log := logrus.WithField("run_id", uuid.NewString())

	catalog, err := growth.DefaultCatalog()
	if err != nil {
		return err
	}
	table, err := growth.BuildTable(catalog)
	if err != nil {
		return err
	}

	var doc bytes.Buffer
	if err := report.RenderHTML(&doc, table); err != nil {
		return err
	}

	w, err := output.NewWriter(outputPath)
	if err != nil {
		return err
	}
	if err := w.Write(doc.Bytes()); err != nil {
		return err
	}
	log.WithField("path", w.Path).Info("Report written")

	if !noOpen {
		output.Open(output.SystemBrowser(), w.URL())
	}
	if !quiet {
		report.PrintConsole(cmd.OutOrStdout(), table)
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func main() {
	Execute()
}
