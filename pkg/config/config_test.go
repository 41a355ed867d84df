package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.Equal(t, 7, cfg.Expiry.WarnDays)
	assert.False(t, cfg.Admin.Enabled(), "sin credencial configurada el admin queda deshabilitado")
	assert.Equal(t, "postgres://postgres:@localhost:5432/pharmacy?sslmode=disable", cfg.DB.ConnectionString())
}

func TestFromViper_Sobrescrituras(t *testing.T) {
	v := viper.New()
	v.Set("EXPIRY_WARN_DAYS", "30")
	v.Set("ADMIN_USERNAME", "admin")
	v.Set("ADMIN_PASSWORD", "s3cr3t")
	v.Set("DATABASE_URL", "postgres://u:p@db:5432/x")
	v.Set("HTTP_PORT", 9090)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Expiry.WarnDays)
	assert.True(t, cfg.Admin.Enabled())
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DB.ConnectionString())
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestFromViper_VentanaNegativa(t *testing.T) {
	v := viper.New()
	v.Set("EXPIRY_WARN_DAYS", -1)
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "h", Port: 5432, User: "u", Password: "p@ss/word", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%2Fword@h:5432/d?sslmode=disable", c.DSN())
}

func TestFromViper_StoreDriver(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)

	v := viper.New()
	v.Set("STORE_DRIVER", "Memory")
	cfg, err = fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)

	v.Set("STORE_DRIVER", "sqlite")
	_, err = fromViper(v)
	assert.Error(t, err)
}
