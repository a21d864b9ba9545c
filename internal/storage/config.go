package storage

import (
	"github.com/spf13/viper"
)

// MinIOConfig holds MinIO connection configuration
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// LoadMinIOConfig loads MinIO config from environment
func LoadMinIOConfig() *MinIOConfig {
	viper.AutomaticEnv()
	viper.SetDefault("MINIO_BUCKET", "products-showcase")
	viper.SetDefault("MINIO_USE_SSL", false)
	return &MinIOConfig{
		Endpoint:  viper.GetString("MINIO_ENDPOINT"),
		AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		SecretKey: viper.GetString("MINIO_SECRET_KEY"),
		UseSSL:    viper.GetBool("MINIO_USE_SSL"),
		Bucket:    viper.GetString("MINIO_BUCKET"),
	}
}

// Enabled reports whether an endpoint is configured.
func (c *MinIOConfig) Enabled() bool {
	return c != nil && c.Endpoint != ""
}
