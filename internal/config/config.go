package config

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Matcher  MatcherConfig  `toml:"matcher"`
}

// DatabaseConfig contains run-history database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// MatcherConfig contains scoring and ranking settings
type MatcherConfig struct {
	TopN        int    `toml:"top_n"`
	WeightsPath string `toml:"weights_path"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "~/.local/share/recipematch/recipematch.db",
		},
		Matcher: MatcherConfig{
			TopN: 3,
		},
	}
}
