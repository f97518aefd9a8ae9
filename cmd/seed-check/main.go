package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/apex/internal/seedcheck"
)

// Default configuration constants.
const (
	defaultNumAthletes      = 4
	defaultSkillsPerAthlete = 6
	defaultTimeout          = 30 * time.Second
	defaultRunTimeout       = 5 * time.Minute
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numAthletes = flag.Int("athletes", defaultNumAthletes, "Number of demo athletes to create")
		numSkills   = flag.Int("skills", defaultSkillsPerAthlete, "Number of skills to log per athlete")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile     = flag.String("log", "", "Log file for run output (default: seed_check_TIMESTAMP.log)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seedcheck.ShowHelp()
		return
	}

	// Setup logging
	if err := seedcheck.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &seedcheck.Config{
		BaseURL:          *baseURL,
		NumAthletes:      *numAthletes,
		SkillsPerAthlete: *numSkills,
		Timeout:          *timeout,
		LogFile:          *logFile,
		Verbose:          *verbose,
	}

	if err := seedcheck.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Seed-check failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
