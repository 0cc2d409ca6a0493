package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultSiteURL = "https://financehub.com"

	configPathEnv = "FINANCEHUB_CONFIG"
	portEnv       = "PORT"
	storeURLEnv   = "SUPABASE_URL"
	anonKeyEnv    = "SUPABASE_ANON_KEY"
	serviceKeyEnv = "SUPABASE_SERVICE_ROLE_KEY"
	cronTokenEnv  = "CRON_AUTH_TOKEN"
)

// Config holds high-level settings required across the application.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	Site       SiteConfig       `yaml:"site"`
	Automation AutomationConfig `yaml:"automation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Port string `yaml:"port"`
}

// StoreConfig carries the hosted store endpoint and its two API keys: the
// anonymous key serves presentation reads, the service-role key serves the
// agents' privileged writes.
type StoreConfig struct {
	URL            string `yaml:"url"`
	AnonKey        string `yaml:"anonKey"`
	ServiceRoleKey string `yaml:"serviceRoleKey"`
}

// SiteConfig holds the public site address used in generated links.
type SiteConfig struct {
	BaseURL string `yaml:"baseUrl"`
}

// AutomationConfig controls the cron token and the optional continuous mode.
type AutomationConfig struct {
	CronToken      string        `yaml:"cronToken"`
	Continuous     bool          `yaml:"continuous"`
	FullInterval   time.Duration `yaml:"fullInterval"`
	HourlyInterval time.Duration `yaml:"hourlyInterval"`
}

// LoggingConfig selects the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(portEnv); v != "" {
		c.Server.Port = v
	}

	if v := os.Getenv(storeURLEnv); v != "" {
		c.Store.URL = v
	}

	if v := os.Getenv(anonKeyEnv); v != "" {
		c.Store.AnonKey = v
	}

	if v := os.Getenv(serviceKeyEnv); v != "" {
		c.Store.ServiceRoleKey = v
	}

	if v := os.Getenv(cronTokenEnv); v != "" {
		c.Automation.CronToken = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Server.Port != "" {
		base.Server = override.Server
	}

	if override.Store.URL != "" {
		base.Store.URL = override.Store.URL
	}
	if override.Store.AnonKey != "" {
		base.Store.AnonKey = override.Store.AnonKey
	}
	if override.Store.ServiceRoleKey != "" {
		base.Store.ServiceRoleKey = override.Store.ServiceRoleKey
	}

	if override.Site.BaseURL != "" {
		base.Site = override.Site
	}

	if override.Automation.CronToken != "" {
		base.Automation.CronToken = override.Automation.CronToken
	}
	if override.Automation.Continuous {
		base.Automation.Continuous = true
	}
	if override.Automation.FullInterval > 0 {
		base.Automation.FullInterval = override.Automation.FullInterval
	}
	if override.Automation.HourlyInterval > 0 {
		base.Automation.HourlyInterval = override.Automation.HourlyInterval
	}

	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{Port: "8080"},
		Store:  StoreConfig{URL: "", AnonKey: "", ServiceRoleKey: ""},
		Site:   SiteConfig{BaseURL: defaultSiteURL},
		Automation: AutomationConfig{
			Continuous:     false,
			FullInterval:   6 * time.Hour,
			HourlyInterval: time.Hour,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}
