package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storage": map[string]any{
			"publicBaseUrl": "",
			"s3": map[string]any{
				"accessKeyId":     "",
				"secretAccessKey": "",
			},
		},
		"combination": map[string]any{
			"concealForeign": false,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STORAGE_PUBLICBASEURL", want: "storage.publicBaseUrl"},
		{envKey: "STORAGE_S3_SECRETACCESSKEY", want: "storage.s3.secretAccessKey"},
		{envKey: "COMBINATION_CONCEALFOREIGN", want: "combination.concealForeign"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, StorageDriverS3, cfg.Storage.Driver)
	assert.Equal(t, int64(5<<20), cfg.Storage.MaxImageSize)
	assert.Equal(t, "My combination", cfg.Combination.DefaultName)
	assert.False(t, cfg.Combination.ConcealForeign)
	assert.NotNil(t, cfg.Janitor)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:        &AuthConfig{BcryptCost: 12, TokenTTL: time.Hour},
		Storage:     &StorageConfig{Driver: StorageDriverMem, MaxImageSize: 1024},
		Combination: &CombinationConfig{DefaultName: "Look", ConcealForeign: true},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, StorageDriverMem, cfg.Storage.Driver)
	assert.Equal(t, int64(1024), cfg.Storage.MaxImageSize)
	assert.Equal(t, "Look", cfg.Combination.DefaultName)
	assert.True(t, cfg.Combination.ConcealForeign)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_0_PASSWORD", "secret")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()

	if assert.Len(t, replicas, 1) {
		assert.Equal(t, "replica-0", replicas[0].Host)
		assert.Equal(t, "5433", replicas[0].Port)
		assert.Equal(t, "reader", replicas[0].UserName)
		assert.Equal(t, "secret", replicas[0].Password)
	}
}
