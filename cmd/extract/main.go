package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"setpiece-service/internal/config"
	"setpiece-service/internal/domain/takers"
	"setpiece-service/internal/extract"
	"setpiece-service/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "setpiece-extract",
	})

	roster := takers.Roster()
	if cfg.RosterFile != "" {
		loaded, err := config.LoadRoster(cfg.RosterFile)
		if err != nil {
			logger.Error("failed to load roster file", "path", cfg.RosterFile, "error", err)
			os.Exit(1)
		}
		roster = loaded
	}

	extractor := extract.New(roster, logger)
	doc, err := extractor.ExtractFile(cfg.ReportPath, cfg.OutputPath)
	if err != nil {
		logger.Error("extraction failed", "input", cfg.ReportPath, "error", err)
		os.Exit(1)
	}

	logger.Info("extraction complete",
		logging.FieldCount, doc.Len(),
		"input", cfg.ReportPath,
		"output", cfg.OutputPath,
	)
	fmt.Println("Structured set piece data extracted and saved to " + cfg.OutputPath)
}
