package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from config files,
// environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Output  string

	// Config file
	ConfigFile string

	// Data sources
	DataDir      string
	CatalogFile  string
	NamesFile    string
	CrossRefFile string

	// Server configuration
	Host string
	Port int

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.skytrackr.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix("skytrackr")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Search for config in standard locations
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".skytrackr")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}
	config.applyViper()

	return config, nil
}

// LoadFile reads the named config file and overlays its values. It exists
// for the --config flag, which cobra parses after LoadConfig has already
// run with the default search path.
func (c *Config) LoadFile(path string) error {
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return err
	}
	c.applyViper()
	return nil
}

// applyViper populates the viper-sourced fields from the current viper
// state.
func (c *Config) applyViper() {
	c.Verbose = viper.GetBool("verbose")
	c.Quiet = viper.GetBool("quiet")
	c.NoColor = viper.GetBool("no-color")
	c.Output = viper.GetString("output")

	c.ConfigFile = viper.ConfigFileUsed()

	c.DataDir = viper.GetString("data_dir")
	c.CatalogFile = viper.GetString("catalog_file")
	c.NamesFile = viper.GetString("names_file")
	c.CrossRefFile = viper.GetString("crossref_file")

	c.Host = viper.GetString("host")
	c.Port = viper.GetInt("port")

	if c.DataDir == "" {
		c.DataDir = "data"
	}
}

// UpdateFromFlags updates config values from parsed command flags. This
// runs after cobra parses flags so flag values take precedence over the
// config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, output string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if output != "" {
		c.Output = output
	}
}

// loadEnvFiles loads .env files from the working directory, most specific
// first so earlier files win (godotenv never overrides set variables).
func loadEnvFiles() {
	for _, file := range []string{".env.local", ".env"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
