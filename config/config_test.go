package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Storage:   StorageConfig{Driver: StorageDriverSQLite, SQLitePath: "data/test.db"},
		JWT:       JWTConfig{SecretKey: strings.Repeat("k", 32), Issuer: "mein-identity", TTL: 60},
		Encrypter: EncrypterConfig{Key: strings.Repeat("e", 32)},
		Cookie:    CookieConfig{Name: "mein_auth_token"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid sqlite", func(c *Config) {}, ""},
		{"short jwt secret", func(c *Config) { c.JWT.SecretKey = "short" }, "jwt.secret_key"},
		{"bad encrypter key", func(c *Config) { c.Encrypter.Key = "abc" }, "encrypter.key"},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "mysql" }, "storage.driver"},
		{"postgres without host", func(c *Config) { c.Storage.Driver = StorageDriverPostgres }, "postgres.host"},
		{"redis enabled without host", func(c *Config) { c.Redis.Enabled = true }, "redis.host"},
		{"kafka enabled without topics", func(c *Config) {
			c.Kafka = KafkaConfig{Enabled: true, Brokers: []string{"localhost:9092"}}
		}, "kafka.campaign_topic"},
		{"minio enabled without bucket", func(c *Config) {
			c.MinIO = MinIOConfig{Enabled: true, Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"}
		}, "minio.bucket"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := validate(cfg)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("validate: unexpected error %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("validate error mismatch: got %v, want containing %q", err, tc.wantErr)
			}
		})
	}
}
