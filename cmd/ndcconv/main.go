package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/JonMunkholm/ndcconv/internal/cli"
	"github.com/JonMunkholm/ndcconv/internal/config"
	"github.com/JonMunkholm/ndcconv/internal/logging"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Debug("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Debug("configuration loaded",
		"sample_size", cfg.Convert.SampleSize,
		"output_suffix", cfg.Convert.OutputSuffix,
		"max_file_size", cfg.Convert.MaxFileSize,
	)

	if err := cli.Execute(cfg); err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}
