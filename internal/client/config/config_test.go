package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", c.ServerEndpointAddr)
	assert.Equal(t, "dashboard.db", c.StateDSN)
	assert.Equal(t, 30*time.Second, c.NotificationPollInterval)
	assert.Equal(t, 10, c.PageSize)
}

func TestParseJson_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "client.json")

	data := `{
		"server_endpoint_addr": "http://api.example.com",
		"state_dsn": "/tmp/state.db",
		"notification_poll_interval": "15s",
		"page_size": 25
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"client", "-c", path}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	require.Equal(t, "http://api.example.com", c.ServerEndpointAddr)
	require.Equal(t, "/tmp/state.db", c.StateDSN)
	require.Equal(t, 15*time.Second, c.NotificationPollInterval)
	require.Equal(t, 25, c.PageSize)
}

func TestParseFlags_Overrides(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"client", "-a", "http://other:9000", "-i", "5", "-p", "50"}

	c := &Config{}
	c.LoadDefaults()
	parseFlags(c)

	require.Equal(t, "http://other:9000", c.ServerEndpointAddr)
	require.Equal(t, 5*time.Second, c.NotificationPollInterval)
	require.Equal(t, 50, c.PageSize)
}
