package config

import "os"

// Config holds everything the server reads from the environment at startup.
type Config struct {
	MongoURI     string
	Database     string
	Collection   string
	AssetBaseURL string
	HTTPAddr     string
}

// Default returns the configuration used when no environment overrides are set.
func Default() *Config {
	return &Config{
		MongoURI:     "mongodb://localhost:27017/",
		Database:     "news_db",
		Collection:   "news",
		AssetBaseURL: "http://localhost:4444",
		HTTPAddr:     ":8000",
	}
}

// Load reads the configuration from the environment, falling back to defaults.
// It is called once at startup; nothing re-reads the environment afterwards.
func Load() *Config {
	cfg := Default()
	applyEnvOverrides(cfg)
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	envMap := map[string]*string{
		"MONGODB_URI":        &cfg.MongoURI,
		"MONGODB_DATABASE":   &cfg.Database,
		"MONGODB_COLLECTION": &cfg.Collection,
		"ASSET_BASE_URL":     &cfg.AssetBaseURL,
		"NEWSMCP_HTTP_ADDR":  &cfg.HTTPAddr,
	}

	for env, ptr := range envMap {
		if val := os.Getenv(env); val != "" {
			*ptr = val
		}
	}
}
