package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/flowstate-live/flowstate/internal/conf"
	"github.com/flowstate-live/flowstate/internal/logging"
)

var cfg *conf.Config

var rootCmd = &cobra.Command{
	Use:           "flowstate",
	Short:         "Classify YouTube live chat and fan it out to subscribers",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load .env file
		envErr := godotenv.Load()

		cfg = conf.LoadFromEnv()

		level := logging.ParseLevel(cfg.LogLevel)
		if cfg.Debug {
			level = slog.LevelDebug
		}
		logging.Setup(os.Stderr, level)

		if envErr != nil {
			slog.Debug("no .env file found, using environment variables")
		}
		return cfg.Validate()
	},
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "flowstate: %v\n", err)
		os.Exit(1)
	}
}
