package seedcheck

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/apex/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if err := logger.Init("info"); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "seed_check_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the seed-check tool.
func ShowHelp() {
	os.Stdout.WriteString(`Apex Seed-Check Tool
====================

Seeds demo athletes and turn logs through the Apex HTTP API, then verifies
today's counts and window summaries against what was submitted.

Usage:
  go run cmd/seed-check/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -athletes int
        Number of demo athletes to create (default 4)
  -skills int
        Number of skills to log per athlete (default 6)
  -timeout duration
        HTTP request timeout (default 30s)
  -log string
        Log file for run output (default: seed_check_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Seed and check with default settings
  go run cmd/seed-check/main.go

  # Seed more athletes against a different host
  go run cmd/seed-check/main.go -athletes 10 -url http://localhost:8080
`)
}
