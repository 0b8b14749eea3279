// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the Deep Thoughts API server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - DatabaseDSN: MongoDB connection string.
//   - DatabaseName: MongoDB database name.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the test
//     default in prod; inject it via flag or JSON config.
//   - TokenValidityDuration: lifetime of issued tokens. Tokens stay valid
//     until natural expiry; there is no revocation list.
type Config struct {
	EndpointAddr          string
	DatabaseDSN           string
	DatabaseName          string
	SecretKey             string
	TokenValidityDuration time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3001"
	c.DatabaseDSN = "mongodb://localhost:27017"
	c.DatabaseName = "deep-thoughts"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 2 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
