package repository

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestRepository_CreateAndGet(t *testing.T) {
	db, clock := setupTestDB(t)
	repo := NewGuestRepository(db.DB(), db.Logger)
	ctx := context.Background()

	guest, err := entity.NewGuest("jenny@example.com", "Jenny", "Rosen", clock)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, guest))
	assert.NotZero(t, guest.ID)

	byID, err := repo.GetByID(ctx, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jenny", byID.FirstName)
	assert.False(t, byID.HasProcessorCustomer())

	byEmail, err := repo.GetByEmail(ctx, "jenny@example.com")
	require.NoError(t, err)
	assert.Equal(t, guest.ID, byEmail.ID)

	duplicate, err := entity.NewGuest("jenny@example.com", "Other", "", clock)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, duplicate), errs.ErrDuplicateRecord)

	_, err = repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, errs.ErrGuestNotFound)
}

func TestGuestRepository_SetProcessorCustomer(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewGuestRepository(db.DB(), db.Logger)
	ctx := context.Background()

	guest := db.CreateTestGuest(t, "rider@example.com", "")

	require.NoError(t, repo.SetProcessorCustomer(ctx, guest.ID, "cus_first"))
	assert.ErrorIs(t, repo.SetProcessorCustomer(ctx, guest.ID, "cus_second"), errs.ErrStaleRecord)
	assert.ErrorIs(t, repo.SetProcessorCustomer(ctx, 404, "cus_third"), errs.ErrGuestNotFound)

	stored, err := repo.GetByID(ctx, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, "cus_first", stored.ProcessorCustomerID)
}

func TestGuestRepository_Latest(t *testing.T) {
	db, clock := setupTestDB(t)
	repo := NewGuestRepository(db.DB(), db.Logger)
	ctx := context.Background()

	_, err := repo.Latest(ctx)
	assert.ErrorIs(t, err, errs.ErrGuestNotFound)

	for _, email := range []string{"one@example.com", "two@example.com", "three@example.com"} {
		guest, newErr := entity.NewGuest(email, "Guest", "", clock)
		require.NoError(t, newErr)
		require.NoError(t, repo.Create(ctx, guest))
		clock.Advance(time.Second)
	}

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "three@example.com", latest.Email)
}
