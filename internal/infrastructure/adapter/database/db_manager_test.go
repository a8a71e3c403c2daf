package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ConnectAndMigrate(t *testing.T) {
	tdb := NewTestDBManager(t)
	ctx := context.Background()

	require.NoError(t, tdb.Manager.Ping(ctx))

	for _, table := range []any{&model.Host{}, &model.Guest{}, &model.Transaction{}, &model.SettlementLock{}} {
		assert.True(t, tdb.DB().Migrator().HasTable(table))
	}
	assert.True(t, tdb.DB().Migrator().HasColumn(&model.Transaction{}, "LastErrorFinal"))

	version, err := migration.NewMigrationManager(tdb.DB(), tdb.Logger, tdb.TimeProvider).GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion, version)

	// A second run is a no-op
	require.NoError(t, tdb.Manager.Migrate(ctx))
	var count int64
	require.NoError(t, tdb.DB().Model(&model.MigrationVersion{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestManager_ConnectRejectsInvalidConfig(t *testing.T) {
	tdb := NewTestDBManager(t)
	m := NewManager(&Config{Driver: "mysql"}, tdb.Logger, tdb.TimeProvider, nil)

	_, err := m.Connect(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid database configuration")
}

type recordingPool struct {
	stats []sql.DBStats
}

func (r *recordingPool) RecordPoolStats(stats sql.DBStats) {
	r.stats = append(r.stats, stats)
}

func TestPoolMonitor_RecordsOnStart(t *testing.T) {
	tdb := NewTestDBManager(t)
	sqlDB, err := tdb.DB().DB()
	require.NoError(t, err)

	recorder := &recordingPool{}
	monitor := NewPoolMonitor(sqlDB, recorder, tdb.Logger)
	monitor.Start(time.Hour)
	monitor.Stop()

	require.Len(t, recorder.stats, 1)
	assert.Equal(t, 1, recorder.stats[0].MaxOpenConnections)
}
