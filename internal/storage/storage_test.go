package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMinIOConfig(t *testing.T) {
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_ACCESS_KEY", "minio")
	t.Setenv("MINIO_SECRET_KEY", "minio123")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := LoadMinIOConfig()
	require.True(t, cfg.Enabled())
	require.Equal(t, "localhost:9000", cfg.Endpoint)
	require.True(t, cfg.UseSSL)
	require.Equal(t, "products-showcase", cfg.Bucket)
}

func TestNewMinIOStorage(t *testing.T) {
	_, err := NewMinIOStorage(&MinIOConfig{})
	require.Error(t, err)

	s, err := NewMinIOStorage(&MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b", Bucket: "fixtures"})
	require.NoError(t, err)
	require.Equal(t, "fixtures", s.Bucket())
}
