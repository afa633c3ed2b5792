package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/leadbrief/internal/api"
	"github.com/leadbrief/internal/config"
	"github.com/leadbrief/internal/crm"
	"github.com/leadbrief/internal/llm"
	"github.com/leadbrief/internal/summary"
)

// APICommand returns the CLI command for starting the API server
func APICommand() *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Start the leadbrief API server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port for the API server (overrides config)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := config.Validate(cfg); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			port := cfg.Server.Port
			if c.IsSet("port") {
				port = c.Int("port")
			}

			orchestrator, err := buildOrchestrator(c.Context, cfg)
			if err != nil {
				return err
			}

			artifacts := []string{cfg.CRM.CredentialsFile, configArtifact(c.String("config"))}

			fmt.Printf("Starting leadbrief API server on port %d...\n", port)
			server := api.NewServer(port, orchestrator, artifacts)
			return server.Start()
		},
	}
}

// buildOrchestrator wires the CRM store and text-generation gateway
// from configuration.
func buildOrchestrator(ctx context.Context, cfg *config.Config) (*summary.Orchestrator, error) {
	creds, err := crm.LoadCredentials(cfg.CRM.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load CRM credentials: %w", err)
	}

	client := crm.NewRESTClient(cfg.CRM.InstanceURL, cfg.CRM.APIVersion, creds.SessionID)
	store := crm.NewCachedStore(crm.NewSOQLStore(client, cfg.Catalog.Dedupe), cfg.Catalog.TTL)

	completer, err := llm.NewLangchainCompleter(ctx, llm.Options{
		Provider: llm.Provider(cfg.AI.Provider),
		APIKey:   cfg.AI.APIKey,
		Model:    cfg.AI.Model,
		BaseURL:  cfg.AI.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create text-generation client: %w", err)
	}

	return summary.NewOrchestrator(store, llm.NewGateway(completer)), nil
}

// configArtifact resolves the settings file path the readiness check
// reports on.
func configArtifact(configPath string) string {
	if configPath != "" {
		return configPath
	}
	return "leadbrief.toml"
}
