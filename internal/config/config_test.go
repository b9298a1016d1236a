package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func writeEnvFile(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	viper.Reset()
}

const validEnv = `DB_HOST=localhost
DB_USER=files
DB_PASSWORD=secret
DB_NAME=files
DB_PORT=5432
SERVER_PORT=8080
AWS_ACCESS_KEY=key
AWS_SECRET_ACCESS_KEY=secret
AWS_REGION=eu-west-1
AWS_S3_BUCKET_NAME=docs
`

func TestLoadValidConfig(t *testing.T) {
	writeEnvFile(t, validEnv)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DBHost != "localhost" || cfg.DBPort != "5432" {
		t.Errorf("unexpected db config: %+v", cfg)
	}
	if cfg.S3BucketName != "docs" {
		t.Errorf("S3BucketName = %q", cfg.S3BucketName)
	}
	if cfg.S3Endpoint != "" {
		t.Errorf("S3Endpoint should default to empty, got %q", cfg.S3Endpoint)
	}
	if cfg.CORSAllowedOrigin != "*" {
		t.Errorf("CORSAllowedOrigin should default to *, got %q", cfg.CORSAllowedOrigin)
	}
}

func TestLoadMissingRequiredField(t *testing.T) {
	writeEnvFile(t, `DB_HOST=localhost
DB_PASSWORD=secret
DB_NAME=files
DB_PORT=5432
SERVER_PORT=8080
AWS_ACCESS_KEY=key
AWS_SECRET_ACCESS_KEY=secret
AWS_REGION=eu-west-1
AWS_S3_BUCKET_NAME=docs
`)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing DB_USER")
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db",
		DBUser:     "files",
		DBPassword: "secret",
		DBName:     "filesdb",
		DBPort:     "5432",
	}

	want := "host=db user=files password=secret dbname=filesdb port=5432 sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
