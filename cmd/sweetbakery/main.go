package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/str4t3gy/sweetbakery/internal/config"
	"github.com/str4t3gy/sweetbakery/internal/logger"
	"github.com/str4t3gy/sweetbakery/internal/models"
	"github.com/str4t3gy/sweetbakery/internal/report"
	"github.com/str4t3gy/sweetbakery/internal/services"
	"github.com/str4t3gy/sweetbakery/internal/tui"
	"github.com/str4t3gy/sweetbakery/internal/utils"
)

func printReports(cfg *config.Config, reports ...models.ScenarioReport) {
	var err error
	if cfg.JSON {
		err = report.WriteJSON(os.Stdout, reports...)
	} else {
		err = report.Render(os.Stdout, reports...)
	}
	if err != nil {
		logger.Fatal("Failed to print report: %v", err)
	}
}

func runScenario(cfg *config.Config, kind models.ScenarioKind) {
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration: %v", err)
	}

	r, err := services.NewPlanner(cfg).Run(kind)
	if err != nil {
		logger.Fatal("Failed to plan %s: %v", kind, err)
	}
	printReports(cfg, r)
}

func main() {
	logger.Init()
	utils.LoadEnvironment(os.Getenv("SWEETBAKERY_ENV_FILE"))

	cfg := config.NewConfig()
	cfg.LoadFromEnvironment()

	rootCmd := &cobra.Command{
		Use:   "sweetbakery",
		Short: "Find how often to manually compound a yield farming position",
		Long: `sweetbakery estimates the manual compounding interval that maximizes
the year-end value of a farming position once claim and deposit fees are paid.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetDebug(cfg.Debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			if err := cfg.Validate(); err != nil {
				logger.Fatal("Invalid configuration: %v", err)
			}
			printReports(cfg, services.NewPlanner(cfg).RunAll()...)
		},
	}

	singleCmd := &cobra.Command{
		Use:   "single",
		Short: "Plan a pool paying rewards in the staked asset",
		Run: func(cmd *cobra.Command, args []string) {
			runScenario(cfg, models.ScenarioSingle)
		},
	}
	singleCmd.Flags().Float64VarP(&cfg.Single.Amount, "amount", "a", cfg.Single.Amount, "USD value staked in the pool")
	singleCmd.Flags().Float64Var(&cfg.Single.APR, "apr", cfg.Single.APR, "Pool APR in percent (not APY)")
	singleCmd.Flags().Float64VarP(&cfg.Single.Fee, "fee", "f", cfg.Single.Fee, "USD fee of one claim and deposit")
	singleCmd.Flags().StringVar(&cfg.Single.RewardLabel, "label", cfg.Single.RewardLabel, "Reward token shown in the report")

	splitCmd := &cobra.Command{
		Use:   "split",
		Short: "Plan a pool splitting its rewards into a secondary token",
		Run: func(cmd *cobra.Command, args []string) {
			runScenario(cfg, models.ScenarioSplit)
		},
	}
	splitCmd.Flags().Float64VarP(&cfg.Split.Amount, "amount", "a", cfg.Split.Amount, "USD value staked in the pool")
	splitCmd.Flags().Float64Var(&cfg.Split.APRPrimary, "apr", cfg.Split.APRPrimary, "APR of the primary asset in percent")
	splitCmd.Flags().Float64Var(&cfg.Split.APRSecondary, "apr-secondary", cfg.Split.APRSecondary, "APR of the secondary token pool in percent")
	splitCmd.Flags().Float64Var(&cfg.Split.FeesPrimary, "fees", cfg.Split.FeesPrimary, "USD fees of claiming and depositing the primary asset")
	splitCmd.Flags().Float64Var(&cfg.Split.FeesSecondary, "fees-secondary", cfg.Split.FeesSecondary, "USD fees of depositing the secondary token")
	splitCmd.Flags().Float64Var(&cfg.Split.PriceRef, "price-ref", cfg.Split.PriceRef, "USD price of the reference currency")
	splitCmd.Flags().Float64Var(&cfg.Split.PriceSecondary, "price-secondary", cfg.Split.PriceSecondary, "USD price of the secondary token")
	splitCmd.Flags().StringVar(&cfg.Split.RewardLabel, "label", cfg.Split.RewardLabel, "Reward tokens shown in the report")

	pairCmd := &cobra.Command{
		Use:   "pair",
		Short: "Plan a liquidity pair whose rewards are staked in a secondary pool",
		Run: func(cmd *cobra.Command, args []string) {
			runScenario(cfg, models.ScenarioPair)
		},
	}
	pairCmd.Flags().Float64VarP(&cfg.Pair.Amount, "amount", "a", cfg.Pair.Amount, "USD value of the pair position")
	pairCmd.Flags().Float64Var(&cfg.Pair.APRPair, "apr", cfg.Pair.APRPair, "APR of the pair pool in percent")
	pairCmd.Flags().Float64Var(&cfg.Pair.APRSecondary, "apr-secondary", cfg.Pair.APRSecondary, "APR of the secondary pool in percent")
	pairCmd.Flags().Float64Var(&cfg.Pair.FeesPair, "fees", cfg.Pair.FeesPair, "USD fees of claiming the pair rewards")
	pairCmd.Flags().Float64Var(&cfg.Pair.FeesSecondaryPool, "fees-secondary", cfg.Pair.FeesSecondaryPool, "USD fees of compounding the secondary pool")
	pairCmd.Flags().StringVar(&cfg.Pair.RewardLabel, "label", cfg.Pair.RewardLabel, "Reward token shown in the report")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the plans of every pool interactively",
		Run: func(cmd *cobra.Command, args []string) {
			if err := cfg.Validate(); err != nil {
				logger.Fatal("Invalid configuration: %v", err)
			}
			if err := logger.InitFileOnly(); err != nil {
				logger.Fatal("Failed to initialize file logger: %v", err)
			}
			defer logger.Close()
			logger.SetDebug(cfg.Debug)

			if err := tui.NewPlannerView(services.NewPlanner(cfg)).Run(); err != nil {
				logger.Error("TUI error: %v", err)
			}
		},
	}

	// Add flags
	rootCmd.PersistentFlags().BoolVar(&cfg.JSON, "json", false, "Print the result as JSON")
	rootCmd.PersistentFlags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(singleCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(pairCmd)
	rootCmd.AddCommand(tuiCmd)

	// Execute the root command
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to execute command: %v", err)
	}
}
