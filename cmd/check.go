package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/optimeet/optimeet/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration file",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cons, err := cfg.Event.ToConstraints()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "config ok: algorithm=%s event=%s..%s\n",
		cfg.Optimizer.Algorithm,
		cons.EventStart.Format("2006-01-02"),
		cons.EventEnd.Format("2006-01-02"))
	return nil
}
