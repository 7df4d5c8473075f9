package config

import "time"

// DefaultConfigFile is the conventional config file name.
const DefaultConfigFile = ".coursetrail.yml"

// DefaultConfig returns the built-in defaults. The request timeout is
// generous because outline and week generation block on local model
// inference.
func DefaultConfig() *Config {
	return &Config{
		BackendURL:            "http://localhost:8000",
		Model:                 "",
		Port:                  3000,
		AllowAllOrigins:       false,
		RequestTimeoutSeconds: 300,
		ToastSeconds:          4,
		OutputDir:             "export",
	}
}

// RequestTimeout returns the backend call timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// ToastTTL returns the notification auto-dismiss delay as a duration.
func (c *Config) ToastTTL() time.Duration {
	return time.Duration(c.ToastSeconds) * time.Second
}
