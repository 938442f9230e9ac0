package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Vatika", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 20, cfg.AI.RequestsPerMin)
	assert.True(t, cfg.Catalog.SeedOnEmpty)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("VATIKA_SERVER_PORT", "9090")
	t.Setenv("VATIKA_APP_ENVIRONMENT", "production")
	t.Setenv("VATIKA_DATABASE_DRIVER", "postgres")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.True(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			App:      AppConfig{Name: "Vatika"},
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Driver: "sqlite"},
		}
	}

	t.Run("ValidConfig", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("MissingAppName", func(t *testing.T) {
		cfg := base()
		cfg.App.Name = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("PortOutOfRange", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = 70000
		assert.Error(t, cfg.Validate())
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		cfg := base()
		cfg.Database.Driver = "oracle"
		assert.Error(t, cfg.Validate())
	})
}

func TestConnectionStrings(t *testing.T) {
	t.Run("SQLiteDSN", func(t *testing.T) {
		cfg := &Config{Database: DatabaseConfig{Driver: "sqlite", Database: "vatika"}}
		assert.Equal(t, "vatika.db", cfg.GetDSN())
	})

	t.Run("PostgresDSN", func(t *testing.T) {
		cfg := &Config{Database: DatabaseConfig{
			Driver:   "postgres",
			Host:     "db.internal",
			Port:     5432,
			Username: "vatika",
			Password: "secret",
			Database: "vatika",
			SSLMode:  "disable",
		}}
		assert.Equal(t,
			"host=db.internal port=5432 user=vatika password=secret dbname=vatika sslmode=disable",
			cfg.GetDSN())
	})

	t.Run("RedisAddr", func(t *testing.T) {
		cfg := &Config{Redis: RedisConfig{Host: "cache.internal", Port: 6379}}
		assert.Equal(t, "cache.internal:6379", cfg.RedisAddr())
	})
}
