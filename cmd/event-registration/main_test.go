package main

import (
	"os"
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
)

func setRequiredEnv() {
	os.Setenv("EVENT_REG_DB_HOST", "localhost")
	os.Setenv("EVENT_REG_DB_PORT", "5432")
	os.Setenv("EVENT_REG_DB_USER", "testuser")
	os.Setenv("EVENT_REG_DB_PASSWORD", "testpass")
	os.Setenv("EVENT_REG_DB_NAME", "testdb")
	os.Setenv("EVENT_REG_SMTP_HOST", "smtp.example.com")
	os.Setenv("EVENT_REG_MAIL_FROM", "noreply@example.com")
}

func unsetEnv() {
	vars := []string{
		"EVENT_REG_LISTEN_ADDR",
		"EVENT_REG_DB_HOST",
		"EVENT_REG_DB_PORT",
		"EVENT_REG_DB_USER",
		"EVENT_REG_DB_PASSWORD",
		"EVENT_REG_DB_NAME",
		"EVENT_REG_MIGRATIONS_PATH",
		"EVENT_REG_SMTP_HOST",
		"EVENT_REG_SMTP_PORT",
		"EVENT_REG_SMTP_USER",
		"EVENT_REG_SMTP_PASSWORD",
		"EVENT_REG_MAIL_FROM",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}

func TestEnvCfg_EnvironmentVariables(t *testing.T) {
	setRequiredEnv()
	defer unsetEnv()

	var cfg EnvCfg
	err := envconfig.Process("EVENT_REG", &cfg)
	assert.NoError(t, err)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, "testuser", cfg.DBUser)
	assert.Equal(t, "testpass", cfg.DBPassword)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Equal(t, "noreply@example.com", cfg.MailFrom)
}

func TestEnvCfg_Defaults(t *testing.T) {
	setRequiredEnv()
	defer unsetEnv()

	var cfg EnvCfg
	err := envconfig.Process("EVENT_REG", &cfg)
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Equal(t, 587, cfg.SMTPPort)
}

func TestEnvCfg_MissingRequiredVariables(t *testing.T) {
	unsetEnv()

	var cfg EnvCfg
	err := envconfig.Process("EVENT_REG", &cfg)
	assert.Error(t, err, "Should fail when required environment variables are missing")
}

func TestEnvCfg_MissingSMTPVariables(t *testing.T) {
	setRequiredEnv()
	defer unsetEnv()
	os.Unsetenv("EVENT_REG_SMTP_HOST")

	var cfg EnvCfg
	err := envconfig.Process("EVENT_REG", &cfg)
	assert.Error(t, err)
}
