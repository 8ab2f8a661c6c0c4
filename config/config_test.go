package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "careerguard", cfg.DBName)
	assert.Equal(t, int64(10), cfg.MaxUploadMB)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.NotEmpty(t, cfg.AllowedOrigins)
}

func TestLoadAllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://dravedigitals.in, http://localhost:5173 ,")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://dravedigitals.in", "http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoadMaxUploadOverride(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "25")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(25), cfg.MaxUploadMB)
}

func TestLoadIgnoresBadMaxUpload(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "-3")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(10), cfg.MaxUploadMB)
}

func TestLoadSMTP(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Equal(t, 2525, cfg.SMTPPort)
}
