package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glintclean/weekplan/core/geo"
	"github.com/glintclean/weekplan/scenario"
)

var distancesCmd = &cobra.Command{
	Use:   "distances <staff-id>",
	Short: "Print the proximity ranking for one staff member",
	Args:  cobra.ExactArgs(1),
	RunE:  runDistances,
}

func init() {
	distancesCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "scenario file (yaml)")
	distancesCmd.Flags().BoolVar(&demoRun, "demo", false, "use the built-in demo scenario")
	rootCmd.AddCommand(distancesCmd)
}

func runDistances(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sc := scenario.Demo()
	if !demoRun && scenarioPath != "" {
		if sc, err = scenario.Load(scenarioPath); err != nil {
			return err
		}
	}
	staff, _, err := sc.Rosters()
	if err != nil {
		return err
	}

	for _, member := range staff {
		if !strings.EqualFold(member.ID, args[0]) {
			continue
		}
		ranked := geo.RankDistances(staff, member, cfg.Planner.DistanceDecimals)
		if ranked == "" {
			return fmt.Errorf("staff %s has no resolved location, or nobody else does", member.ID)
		}
		fmt.Println(ranked)
		return nil
	}
	return fmt.Errorf("staff %s not found in scenario", args[0])
}
