package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseJson_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.json")

	data := `{
		"endpoint_addr_http": ":9090",
		"database_dsn": "postgres://u:p@db:5432/x",
		"secret_key": "json-secret",
		"access_token_validity_duration": "90s",
		"refresh_token_validity_duration": "48h",
		"reset_token_validity_duration": "30m",
		"s3_root_user": "root",
		"s3_root_password": "pw",
		"s3_bucket": "pics",
		"s3_region": "eu-west-1",
		"s3_base_endpoint": "http://minio:9000/",
		"admin_username": "ops",
		"admin_email": "ops@corp.test",
		"admin_password": "seed-pw"
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"server", "-c", path}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	require.Equal(t, ":9090", c.EndpointAddrHTTP)
	require.Equal(t, "postgres://u:p@db:5432/x", c.DatabaseDSN)
	require.Equal(t, "json-secret", c.SecretKey)
	require.Equal(t, 90*time.Second, c.AccessTokenValidityDuration)
	require.Equal(t, 48*time.Hour, c.RefreshTokenValidityDuration)
	require.Equal(t, 30*time.Minute, c.ResetTokenValidityDuration)
	require.Equal(t, "pics", c.S3Bucket)
	require.Equal(t, "ops", c.AdminUserName)
	require.Equal(t, "seed-pw", c.AdminPassword)
}

func TestParseJson_NoFileFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"server"}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	require.Equal(t, ":8000", c.EndpointAddrHTTP)
}
