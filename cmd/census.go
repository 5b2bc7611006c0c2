package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/glintclean/weekplan/app"
	"github.com/glintclean/weekplan/infra/logger"
)

var (
	scenarioPath string
	demoRun      bool
)

var censusCmd = &cobra.Command{
	Use:   "census",
	Short: "Run the weekly feasibility census over a scenario",
	RunE:  runCensus,
}

func init() {
	censusCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "scenario file (yaml)")
	censusCmd.Flags().BoolVar(&demoRun, "demo", false, "use the built-in demo scenario")
	rootCmd.AddCommand(censusCmd)
}

func runCensus(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	return svc.Run(ctx, scenarioPath, demoRun)
}
