package config

import "time"

// Config holds runtime settings for the asset dashboard CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend REST API.
//   - StateDSN: path of the local sqlite state database.
//   - NotificationPollInterval: how often the client polls the unread count.
//   - PageSize: rows per page in the list views.
type Config struct {
	ServerEndpointAddr       string
	StateDSN                 string
	NotificationPollInterval time.Duration
	PageSize                 int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8000"
	c.StateDSN = "dashboard.db"
	c.NotificationPollInterval = 30 * time.Second
	c.PageSize = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
