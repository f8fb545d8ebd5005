package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/optimeet/optimeet/app"
	"github.com/optimeet/optimeet/config"
	"github.com/optimeet/optimeet/infra/logger"
)

var (
	inputPath string
	algFlag   string
	outPath   string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Run one optimization over a problem file",
	RunE:  runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVarP(&inputPath, "input", "i", "problem.json", "problem file with requests and hosts")
	optimizeCmd.Flags().StringVarP(&algFlag, "algorithm", "a", "", "override the configured algorithm")
	optimizeCmd.Flags().StringVarP(&outPath, "output", "o", "", "write the result to a file instead of stdout")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if algFlag != "" {
		cfg.Optimizer.Algorithm = algFlag
		if err := cfg.Optimizer.Validate(); err != nil {
			return err
		}
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
	svc.Start(ctx)

	problem, err := app.LoadProblem(inputPath)
	if err != nil {
		return fmt.Errorf("load problem: %w", err)
	}
	res, err := svc.Optimize(ctx, problem.Requests, problem.Hosts)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	if outPath != "" {
		return os.WriteFile(outPath, data, 0o644)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
