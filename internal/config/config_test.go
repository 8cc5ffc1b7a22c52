package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report/pkg/log"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestDecode_Defaults(t *testing.T) {
	cfg, err := decode(newViper())
	require.NoError(t, err)

	assert.Equal(t, "localhost:5000", cfg.Server.Addr())
	assert.Equal(t, "sales_data.csv", cfg.Sales.Source)
	assert.Equal(t, "plots", cfg.Sales.PlotsDir)
	assert.Equal(t, "static/images", cfg.Static.ImagesDir())
	assert.Equal(t, "static/uploads", cfg.Static.UploadsDir())
	assert.Equal(t, int64(10<<20), cfg.Static.MaxUploadBytes())
	assert.False(t, cfg.ReportSync.Enabled)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, log.Options{Level: "info", Format: "text", Development: true}, cfg.App.LogOptions())
	assert.Empty(t, cfg.Server.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.Sales.SourceTimeout)
}

func TestDecode_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SALES_SOURCE", "/data/vendas.csv")
	t.Setenv("PORT", "8080")
	t.Setenv("SALES_SOURCE_TIMEOUT", "5s")
	t.Setenv("REPORT_SYNC_ENABLED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_FORMAT", "json")

	v := newViper()
	v.AutomaticEnv()

	cfg, err := decode(v)
	require.NoError(t, err)

	assert.Equal(t, "/data/vendas.csv", cfg.Sales.Source)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Sales.SourceTimeout)
	assert.True(t, cfg.ReportSync.Enabled)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.App.LogOptions().Development)
	assert.Equal(t, "json", cfg.App.LogOptions().Format)
}

func TestDecode_Validation(t *testing.T) {
	v := newViper()
	v.Set("SALES_SOURCE", "")
	_, err := decode(v)
	assert.ErrorContains(t, err, "SALES_SOURCE")

	v = newViper()
	v.Set("MAX_UPLOAD_MB", 0)
	_, err = decode(v)
	assert.ErrorContains(t, err, "MAX_UPLOAD_MB")
}
