package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/leadbrief/cmd"
	"github.com/leadbrief/internal/logging"
)

const (
	version = "0.1.0"
)

func main() {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	app := &cli.App{
		Name:    "leadbrief",
		Usage:   "AI-generated lead summaries for sales reps, straight from the CRM",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load configuration from `FILE`",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level: debug, info, warn, error",
				EnvVars: []string{"LEADBRIEF_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "pretty-logs",
				Usage:   "Human-readable console logging",
				EnvVars: []string{"LEADBRIEF_PRETTY_LOGS"},
			},
		},
		Before: func(c *cli.Context) error {
			logging.Setup(c.String("log-level"), c.Bool("pretty-logs"))
			return nil
		},
		Commands: []*cli.Command{
			cmd.APICommand(),
			cmd.ConfigCommand(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
