package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"asaas-integration-service/internal/model"
	"asaas-integration-service/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.PixPayment{},
		&model.Order{},
		&model.EmailConfig{},
	))

	return db
}

func TestPaymentRepository_CreateAndFind(t *testing.T) {
	repo := repository.NewPaymentRepository(newTestDB(t))
	ctx := context.Background()

	payment := &model.PixPayment{
		ID:             "local-id-1",
		OrderID:        "order-42",
		PaymentID:      "pay_0001",
		Status:         "PENDING",
		Amount:         decimal.RequireFromString("100.50"),
		QrCode:         "00020126580014br.gov.bcb.pix",
		CopyPasteKey:   "00020126580014br.gov.bcb.pix",
		ExpirationDate: "2026-08-30T23:59:59Z",
	}
	require.NoError(t, repo.Create(ctx, payment))

	found, err := repo.FindByPaymentID(ctx, "pay_0001")
	require.NoError(t, err)
	assert.Equal(t, "order-42", found.OrderID)
	assert.Equal(t, "PENDING", found.Status)
	assert.True(t, found.Amount.Equal(decimal.RequireFromString("100.50")))
}

func TestPaymentRepository_FindMissing(t *testing.T) {
	repo := repository.NewPaymentRepository(newTestDB(t))

	_, err := repo.FindByPaymentID(context.Background(), "pay_unknown")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPaymentRepository_UpdateStatus(t *testing.T) {
	repo := repository.NewPaymentRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.PixPayment{
		ID:        "local-id-1",
		OrderID:   "order-42",
		PaymentID: "pay_0001",
		Status:    "PENDING",
		Amount:    decimal.RequireFromString("10"),
	}))

	now := time.Now().Truncate(time.Second)
	require.NoError(t, repo.UpdateStatus(ctx, "pay_0001", "CONFIRMED", now))

	found, err := repo.FindByPaymentID(ctx, "pay_0001")
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", found.Status)
	assert.WithinDuration(t, now, found.UpdatedAt, time.Second)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "pay_unknown", "CONFIRMED", now), gorm.ErrRecordNotFound)
}

func TestOrderRepository_LinkAndUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Order{ID: "order-42", Status: "NEW"}).Error)

	require.NoError(t, repo.LinkPayment(ctx, "order-42", "pay_0001"))
	require.NoError(t, repo.UpdateStatus(ctx, "order-42", "CONFIRMED", time.Now()))

	var order model.Order
	require.NoError(t, db.First(&order, "id = ?", "order-42").Error)
	assert.Equal(t, "pay_0001", order.AsaasPaymentID)
	assert.Equal(t, "CONFIRMED", order.Status)
}

func TestOrderRepository_MissingOrder(t *testing.T) {
	repo := repository.NewOrderRepository(newTestDB(t))
	ctx := context.Background()

	assert.ErrorIs(t, repo.LinkPayment(ctx, "missing", "pay_0001"), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, "missing", "CONFIRMED", time.Now()), gorm.ErrRecordNotFound)
}

func TestEmailConfigRepository_Get(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEmailConfigRepository(db)
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, db.Create(&model.EmailConfig{UseTempEmail: true, TempEmail: "x@y.com"}).Error)

	cfg, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, cfg.UseTempEmail)
	assert.Equal(t, "x@y.com", cfg.TempEmail)
}
