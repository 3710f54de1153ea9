package repository

import (
	"context"
	"testing"
	"time"

	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	adapterlogger "github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/logger"
	coremocks "github.com/fuelgrid/cng-marketplace/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// sqlRecorder captures the statements gorm builds in dry-run mode
type sqlRecorder struct {
	statements []string
}

func (r *sqlRecorder) LogMode(gormlogger.LogLevel) gormlogger.Interface { return r }
func (r *sqlRecorder) Info(context.Context, string, ...any)             {}
func (r *sqlRecorder) Warn(context.Context, string, ...any)             {}
func (r *sqlRecorder) Error(context.Context, string, ...any)            {}

func (r *sqlRecorder) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func (r *sqlRecorder) last() string {
	if len(r.statements) == 0 {
		return ""
	}
	return r.statements[len(r.statements)-1]
}

// newDryRunDB opens a gorm handle that builds SQL without a live database,
// so the statements the repository emits can be asserted on directly
func newDryRunDB(t *testing.T, recorder *sqlRecorder) *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=dryrun dbname=dryrun",
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 recorder,
	})
	require.NoError(t, err)
	return db
}

func TestWalletRepositorySQL(t *testing.T) {
	ctx := context.Background()

	recorder := &sqlRecorder{}
	db := newDryRunDB(t, recorder)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	repo := NewWalletRepository(db, mockTime, adapterlogger.NewNoopLogger())

	t.Run("Locked read emits the FOR UPDATE clause", func(t *testing.T) {
		_, err := repo.GetByUserIDForUpdate(ctx, 1)
		require.NoError(t, err)

		sql := recorder.last()
		assert.Contains(t, sql, `"wallets"`)
		assert.Contains(t, sql, "FOR UPDATE")
	})

	t.Run("Plain read does not lock the row", func(t *testing.T) {
		_, err := repo.GetByUserID(ctx, 1)
		require.NoError(t, err)

		sql := recorder.last()
		assert.Contains(t, sql, `"wallets"`)
		assert.NotContains(t, sql, "FOR UPDATE")
	})

	t.Run("Balance update targets the wallet row by id", func(t *testing.T) {
		wallet, err := repo.GetByUserIDForUpdate(ctx, 1)
		require.NoError(t, err)
		wallet.ID = 5

		// Dry-run updates report zero rows affected
		err = repo.UpdateBalance(ctx, wallet)
		assert.ErrorIs(t, err, errs.ErrWalletNotFound)

		sql := recorder.last()
		assert.Contains(t, sql, `UPDATE "wallets"`)
		assert.Contains(t, sql, `"balance"`)
	})
}
