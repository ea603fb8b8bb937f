package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv(t *testing.T) {
	t.Run("set variables override fields", func(t *testing.T) {
		t.Setenv("ADDRESS", ":9999")
		t.Setenv("DATABASE_DSN", "postgres://env")
		t.Setenv("S3_BUCKET", "envbucket")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
		assert.Equal(t, "postgres://env", cfg.DatabaseDSN)
		assert.Equal(t, "envbucket", cfg.S3Bucket)
	})

	t.Run("unset variables leave defaults", func(t *testing.T) {
		t.Setenv("ADDRESS", "")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
		assert.Equal(t, "filebox", cfg.S3Bucket)
	})
}
