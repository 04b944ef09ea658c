// Command figstdout generates the diagnostic PDF report for one GKV run
// directory.
package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smaeyama/test-fig-stdout/entropy"
	"github.com/smaeyama/test-fig-stdout/figpdf"
	"github.com/smaeyama/test-fig-stdout/report"
)

// errMissingDir marks the usage failure that exits with status 2 instead
// of the generic 1.
var errMissingDir = errors.New("missing --dir")

var (
	runDir    string
	stylePath string
	uniformDt bool
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "figstdout",
	Short: "Generate a PDF report from GKV simulation output",
	Long: `figstdout reads a GKV standard-output directory, aggregates its history
files, and renders the diagnostic pages into a single paginated
fig_stdout.pdf under figpdf_<timestamp>/ in the current directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&runDir, "dir", "d", "", "path to the directory containing the GKV output files")
	rootCmd.Flags().StringVar(&stylePath, "style", "", "YAML file with page style overrides")
	rootCmd.Flags().BoolVar(&uniformDt, "uniform-dt", false, "use the uniform-step derivative estimator for the entropy balance")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func selectEstimator(uniform bool) entropy.Estimator {
	if uniform {
		return entropy.Uniform
	}
	return entropy.NonUniform
}

func run(cmd *cobra.Command, args []string) error {
	log.SetLevel(log.WarnLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	if runDir == "" {
		cmd.Help()
		fmt.Fprintln(os.Stderr, "Error: Please specify the log directory using the --dir option.")
		return errMissingDir
	}

	style := report.DefaultStyle()
	if stylePath != "" {
		var err error
		style, err = report.LoadStyle(stylePath)
		if err != nil {
			return err
		}
	}

	out, err := figpdf.Generate(figpdf.Options{
		RunDir:    runDir,
		Style:     style,
		Estimator: selectEstimator(uniformDt),
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s generated.\n", out)
	return nil
}

func exitCode(err error) int {
	if errors.Is(err, errMissingDir) {
		return 2
	}
	return 1
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errMissingDir) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}
