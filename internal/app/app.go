package app

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stoik/topup/internal/loader"
	"github.com/stoik/topup/internal/report"
	"github.com/stoik/topup/internal/topup"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "topup",
	Short: "Token top-up batch processor",
	Long:  "Applies per-company token top-ups to active users and writes a text report of who would be emailed",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the top-up batch",
	Long:  "Loads the users and companies files, computes top-ups and writes the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		runID := uuid.NewString()

		usersPath := viper.GetString("users")
		companiesPath := viper.GetString("companies")
		outputPath := viper.GetString("output")

		logger.Info("Starting top-up run",
			zap.String("run_id", runID),
			zap.String("users", usersPath),
			zap.String("companies", companiesPath))

		users, err := loader.LoadUsers(usersPath)
		if err != nil {
			return fmt.Errorf("failed to load users: %w", err)
		}
		logger.Debug("Loaded users", zap.String("run_id", runID), zap.Int("count", len(users)))

		companies, err := loader.LoadCompanies(companiesPath)
		if err != nil {
			return fmt.Errorf("failed to load companies: %w", err)
		}
		logger.Debug("Loaded companies", zap.String("run_id", runID), zap.Int("count", len(companies)))

		results := topup.Process(users, companies)
		logger.Info("Computed top-ups",
			zap.String("run_id", runID),
			zap.Int("companies_with_results", len(results)))

		// The output file is only opened once compute has succeeded, so a
		// load failure never leaves a partial report behind.
		if err := report.Write(report.Format(results), outputPath); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("Report written", zap.String("run_id", runID), zap.String("path", outputPath))

		fmt.Printf("Report written to %s\n", outputPath)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	runCmd.Flags().String("users", "", "Path to the users JSON file")
	runCmd.Flags().String("companies", "", "Path to the companies JSON file")
	runCmd.Flags().String("output", "output.txt", "Path to write the report to")
	runCmd.MarkFlagRequired("users")
	runCmd.MarkFlagRequired("companies")

	viper.BindPFlag("users", runCmd.Flags().Lookup("users"))
	viper.BindPFlag("companies", runCmd.Flags().Lookup("companies"))
	viper.BindPFlag("output", runCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(runCmd)
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
