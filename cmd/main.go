package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dosada05/zone-cup/config"
)

var rootCmd = &cobra.Command{
	Use:   "zonecup",
	Short: "Zone cup tournament service",
	Long: `zonecup runs a football cup: teams register into zones, play a round robin
inside their zone, the best of each zone are cross-seeded into a knockout bracket
and the Final decides the champion.`,
	SilenceUsage: true,
}

// @title Zone Cup API
// @version 1.0
// @description Групповой этап по зонам, кросс-посев и плей-офф до чемпиона.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration and installs the JSON logger as the default.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
