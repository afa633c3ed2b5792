package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port int `koanf:"port"`
	} `koanf:"server"`

	CRM struct {
		InstanceURL     string `koanf:"instance_url"`
		APIVersion      string `koanf:"api_version"`
		CredentialsFile string `koanf:"credentials_file"`
	} `koanf:"crm"`

	AI struct {
		Provider string `koanf:"provider"`
		Model    string `koanf:"model"`
		APIKey   string `koanf:"api_key"`
		BaseURL  string `koanf:"base_url"`
	} `koanf:"ai"`

	Catalog struct {
		Dedupe bool          `koanf:"dedupe"`
		TTL    time.Duration `koanf:"ttl"`
	} `koanf:"catalog"`
}

// LoadConfig loads the configuration from a file
func LoadConfig(configPath string) (*Config, error) {
	var k = koanf.New(".")

	// Set up default configuration
	k.Load(confmap.Provider(map[string]interface{}{
		"server.port":     8888,
		"crm.api_version": "59.0",
		"ai.provider":     "openai",
		"ai.model":        "gpt-3.5-turbo",
		"catalog.dedupe":  true,
		"catalog.ttl":     10 * time.Minute,
	}, "."), nil)

	// Load from TOML file if it exists
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	} else {
		// Try to load from default locations
		defaultPaths := []string{"./leadbrief.toml", "$HOME/.leadbrief.toml"}
		for _, path := range defaultPaths {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	// Load from environment variables with prefix LEADBRIEF_
	k.Load(env.Provider("LEADBRIEF_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "LEADBRIEF_")), "_", ".", -1)
	}), nil)

	// Unmarshal into Config struct
	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &config, nil
}

// InitConfig initializes a new configuration file
func InitConfig(configPath string) error {
	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists at %s", configPath)
	}

	// Create sample configuration
	sampleConfig := `# leadbrief Configuration

[server]
port = 8888

[crm]
instance_url = "https://yourorg.my.salesforce.com"
api_version = "59.0"
credentials_file = "login.json"

[ai]
provider = "openai"
model = "gpt-3.5-turbo"
api_key = "your-api-key"

[catalog]
dedupe = true
ttl = "10m"
`

	return os.WriteFile(configPath, []byte(sampleConfig), 0644)
}

// Validate validates the configuration
func Validate(config *Config) error {
	if config.CRM.InstanceURL == "" {
		return fmt.Errorf("crm instance_url is required")
	}

	if config.CRM.CredentialsFile == "" {
		return fmt.Errorf("crm credentials_file is required")
	}

	switch config.AI.Provider {
	case "openai", "gemini":
		if config.AI.APIKey == "" {
			return fmt.Errorf("%s api_key is required", config.AI.Provider)
		}
	case "ollama":
		// Local provider needs no key.
	default:
		return fmt.Errorf("unsupported AI provider %s", config.AI.Provider)
	}

	if config.AI.Model == "" {
		return fmt.Errorf("ai model is required")
	}

	return nil
}
