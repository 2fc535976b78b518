package helper

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	MODE_DEVELOPMENT = "development"
	MODE_PRODUCTION  = "production"

	STORAGE_MODE_LOCAL  = "local"
	STORAGE_MODE_S3     = "s3"
	STORAGE_MODE_MEMORY = "memory"

	ENV_PREFIX = "TABLE_VIEWER"
)

// Config holds everything the table viewer needs at startup.
type Config struct {
	Port        string
	Mode        string
	TablePath   string
	Table2Path  string
	TemplateDir string
	LogLevel    string
	SeqURL      string

	StorageMode       string
	StoragePath       string
	S3Endpoint        string
	S3Region          string
	S3BucketName      string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// NewViper returns a viper instance reading TABLE_VIEWER_* environment variables
// with all defaults set.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "3000")
	v.SetDefault("mode", MODE_PRODUCTION)
	v.SetDefault("table-path", "table.csv")
	v.SetDefault("table2-path", "table2.csv")
	v.SetDefault("template-dir", "")
	v.SetDefault("log-level", "info")
	v.SetDefault("seq-url", "")
	v.SetDefault("storage-mode", STORAGE_MODE_LOCAL)
	v.SetDefault("storage-path", "./templates")
	v.SetDefault("s3-endpoint", "")
	v.SetDefault("s3-region", "us-east-1")
	v.SetDefault("s3-bucket-name", "")
	v.SetDefault("s3-access-key-id", "")
	v.SetDefault("s3-secret-access-key", "")
}

// LoadConfig reads the configuration from viper and validates it.
func LoadConfig(v *viper.Viper) (*Config, error) {
	config := &Config{
		Port:              v.GetString("port"),
		Mode:              strings.ToLower(v.GetString("mode")),
		TablePath:         v.GetString("table-path"),
		Table2Path:        v.GetString("table2-path"),
		TemplateDir:       v.GetString("template-dir"),
		LogLevel:          v.GetString("log-level"),
		SeqURL:            v.GetString("seq-url"),
		StorageMode:       strings.ToLower(v.GetString("storage-mode")),
		StoragePath:       v.GetString("storage-path"),
		S3Endpoint:        v.GetString("s3-endpoint"),
		S3Region:          v.GetString("s3-region"),
		S3BucketName:      v.GetString("s3-bucket-name"),
		S3AccessKeyID:     v.GetString("s3-access-key-id"),
		S3SecretAccessKey: v.GetString("s3-secret-access-key"),
	}

	err := config.Validate()
	if err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if c.Mode != MODE_DEVELOPMENT && c.Mode != MODE_PRODUCTION {
		return fmt.Errorf("unsupported mode: %s (supported: development, production)", c.Mode)
	}
	if c.TablePath == "" || c.Table2Path == "" {
		return fmt.Errorf("both table paths are required")
	}

	switch c.StorageMode {
	case STORAGE_MODE_LOCAL, STORAGE_MODE_MEMORY:
	case STORAGE_MODE_S3:
		if c.S3BucketName == "" || c.S3AccessKeyID == "" || c.S3SecretAccessKey == "" {
			return fmt.Errorf("missing required S3 configuration: s3-bucket-name, s3-access-key-id, s3-secret-access-key")
		}
	default:
		return fmt.Errorf("unsupported storage mode: %s (supported: local, s3, memory)", c.StorageMode)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Mode == MODE_DEVELOPMENT
}
