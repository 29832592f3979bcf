// Package config provides YAML-based application configuration loading.
package config

// AppConfig contains all configuration for the squarecontrol binary.
type AppConfig struct {
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
	SSH       SSHConfig       `yaml:"ssh"`
	HTTP      HTTPConfig      `yaml:"http"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Generator GeneratorConfig `yaml:"generator"`
}

// StorageConfig selects the progress backend.
type StorageConfig struct {
	Driver      string `yaml:"driver"`
	Path        string `yaml:"path"`
	RedisURL    string `yaml:"redis_url"`
	DatabaseURL string `yaml:"database_url"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Prefix string `yaml:"prefix"`
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// HTTPConfig configures the JSON API server.
type HTTPConfig struct {
	Address string `yaml:"address"`
}

// CatalogConfig lists extra level files or directories.
type CatalogConfig struct {
	Files []string `yaml:"files"`
}
