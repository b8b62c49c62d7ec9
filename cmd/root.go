// Package cmd provides the root command and CLI setup for amaze.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"amaze.dev/pkg/amaze/internal/adapter"
	"amaze.dev/pkg/amaze/internal/controller"
	"amaze.dev/pkg/amaze/internal/domain"
	m "amaze.dev/pkg/amaze/internal/model"
)

var mazeSource adapter.MazeSource
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// logFileFlag overrides the configured log file.
var logFileFlag string

// verboseFlag switches logging to debug level.
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	mazeSource = adapter.NewLocalMazeSource()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(mazeSource, reportStore, ui)
}

const mazeFormatHelp = `Maze files are .txt files. The first line holds the number of rows and
columns ("ROWS COLS"); every following line is one maze row where '#' is a
wall and any other character is open.`

const rootLongDescription = `amaze finds every exit of a text maze: each open cell on the outer edge
that can be reached from the entrance by moving up, down, left or right.

` + mazeFormatHelp

const solveLongDescription = `Count and locate the exits of the given maze files. When no file is
given you are prompted for one.

` + mazeFormatHelp

const listLongDescription = `List maze files with their dimensions and number of open cells.

` + mazeFormatHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amaze",
		Short: "Text maze exit finder",
		Long:  rootLongDescription,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	if cmd.PersistentFlags().Lookup(outputFlagName) != nil {
		return
	}

	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"directory for maze solution reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFlagName, "", "log file path (default from config)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
