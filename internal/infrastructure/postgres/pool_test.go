package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/pkg/config"
)

func testDBConfig(port int) config.DBConfig {
	return config.DBConfig{
		Host:     "127.0.0.1",
		Port:     port,
		User:     "farmacia",
		Password: "p@ss:word",
		DBName:   "farmacia",
		SSLMode:  "disable",
	}
}

func TestNewPoolConfig_FechasISO(t *testing.T) {
	pc, err := newPoolConfig(testDBConfig(5432))
	require.NoError(t, err)

	assert.Equal(t, "ISO, YMD", pc.ConnConfig.RuntimeParams["DateStyle"])
	assert.Equal(t, int32(4), pc.MaxConns)
	assert.Equal(t, int32(0), pc.MinConns)
	assert.Equal(t, 5*time.Second, pc.ConnConfig.ConnectTimeout)
}

func TestNewPoolConfig_DSNInvalido(t *testing.T) {
	_, err := newPoolConfig(config.DBConfig{DatabaseURL: "postgres://%zz"})
	assert.Error(t, err)
}

func TestExpirySnapshotSQL_NoDependeDelDateStyle(t *testing.T) {
	assert.Contains(t, expirySnapshotSQL, "to_char(expiry_date, 'YYYY-MM-DD')")
	assert.NotContains(t, expirySnapshotSQL, "::text")
}

// Un servidor caído no impide crear el pool; cada acción responde ErrStoreUnavailable.
func TestNewPool_ServidorCaido(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := NewPool(ctx, testDBConfig(1))
	require.NoError(t, err)
	defer pool.Close()

	_, err = NewMedicineRepository(pool).ExpirySnapshot(ctx)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
