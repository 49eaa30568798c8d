package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
// The same shape serves both services; each binary loads it under its own
// environment prefix (ACCOUNTSVC_ or CLIENTSVC_).
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Peer     PeerConfig     `mapstructure:"peer" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// PeerConfig locates the peer service this binary calls through its gateway
// (the client service for accountsvc, the account service for clientsvc).
// TimeoutSeconds bounds each remote call; zero disables the client timeout,
// matching the legacy behavior of waiting on the call indefinitely.
type PeerConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
}
