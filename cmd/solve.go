package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"amaze.dev/pkg/amaze/internal/domain"
	m "amaze.dev/pkg/amaze/internal/model"
)

var solveEntranceFlag string
var solveOverlayFlag string
var solveStrategyFlag string
var solveParallelFlag int
var solveSaveFlag bool

// solveCmd represents the solve command.
var solveCmd = newSolveCmd()

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [files...]",
		Short: "Find the exits of maze files",
		Long:  solveLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			entrance, err := parseEntranceFlag(viper.GetString(entranceConfigKey))
			if err != nil {
				return err
			}

			overlay, err := parseOverlayMode(viper.GetString(overlayConfigKey))
			if err != nil {
				return err
			}

			strategy, err := parseStrategy(viper.GetString(strategyConfigKey))
			if err != nil {
				return err
			}

			return workflow.Solve(cmd.Context(), domain.SolveArgs{
				Paths:    parsePaths(args),
				Entrance: entrance,
				Options: domain.ScanOptions{
					Overlay:  overlay,
					Strategy: strategy,
				},
				Threads: viper.GetInt(parallelConfigKey),
				Save:    viper.GetBool(saveConfigKey),
				Reports: m.Path(viper.GetString(outputFlagName)),
			})
		},
	}

	configureSolveFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func configureSolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&solveEntranceFlag, entranceFlagName, "e", viper.GetString(entranceConfigKey), "entrance cell as ROW,COL (1-indexed)")
	bindFlagToConfig(cmd.Flags().Lookup(entranceFlagName), entranceConfigKey)

	cmd.Flags().StringVar(&solveOverlayFlag, overlayFlagName, viper.GetString(overlayConfigKey), "visited-cell tracking across searches: per-search or shared")
	bindFlagToConfig(cmd.Flags().Lookup(overlayFlagName), overlayConfigKey)

	cmd.Flags().StringVar(&solveStrategyFlag, strategyFlagName, viper.GetString(strategyConfigKey), "search implementation: iterative or recursive")
	bindFlagToConfig(cmd.Flags().Lookup(strategyFlagName), strategyConfigKey)

	cmd.Flags().IntVarP(&solveParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of mazes solved in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().BoolVar(&solveSaveFlag, saveFlagName, viper.GetBool(saveConfigKey), "save a YAML report per maze in the output directory")
	bindFlagToConfig(cmd.Flags().Lookup(saveFlagName), saveConfigKey)
}

// parseEntranceFlag converts a 1-indexed ROW,COL pair to a grid cell.
func parseEntranceFlag(value string) (m.Cell, error) {
	pos, err := m.ParseExitRecord(value)
	if err != nil {
		return m.Cell{}, fmt.Errorf("--%s: %w", entranceFlagName, err)
	}

	return pos.Cell(), nil
}

func parseOverlayMode(value string) (m.OverlayMode, error) {
	switch mode := m.OverlayMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case m.OverlayPerSearch, m.OverlayShared:
		return mode, nil
	case "":
		return m.OverlayPerSearch, nil
	default:
		return "", fmt.Errorf("--%s: unknown mode %q (want %s or %s)", overlayFlagName, value, m.OverlayPerSearch, m.OverlayShared)
	}
}

func parseStrategy(value string) (m.SearchStrategy, error) {
	switch strategy := m.SearchStrategy(strings.ToLower(strings.TrimSpace(value))); strategy {
	case m.StrategyIterative, m.StrategyRecursive:
		return strategy, nil
	case "":
		return m.StrategyIterative, nil
	default:
		return "", fmt.Errorf("--%s: unknown strategy %q (want %s or %s)", strategyFlagName, value, m.StrategyIterative, m.StrategyRecursive)
	}
}
