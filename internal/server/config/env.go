package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first when present; variables already set
// in the process environment win over the file.
//
// Recognized variables:
//
//	ADDRESS          HTTP bind address
//	DATABASE_DSN     PostgreSQL DSN
//	S3_ACCESS_KEY    S3 access key
//	S3_SECRET_KEY    S3 secret key
//	S3_BUCKET        S3 bucket name
//	S3_REGION        S3 region
//	S3_BASE_ENDPOINT S3 base endpoint
//
// Unset variables leave the corresponding field untouched.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	overlay := func(name string, target *string) {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*target = v
		}
	}

	overlay("ADDRESS", &config.EndpointAddrHTTP)
	overlay("DATABASE_DSN", &config.DatabaseDSN)
	overlay("S3_ACCESS_KEY", &config.S3AccessKey)
	overlay("S3_SECRET_KEY", &config.S3SecretKey)
	overlay("S3_BUCKET", &config.S3Bucket)
	overlay("S3_REGION", &config.S3Region)
	overlay("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
}
