package repository

import (
	"context"
	"time"

	"asaas-integration-service/internal/model"

	"gorm.io/gorm"
)

// OrderRepository only mutates the fields this service owns on an order:
// the linked charge id, status and updated_at. Everything else belongs to
// the checkout side.
type OrderRepository interface {
	LinkPayment(ctx context.Context, orderID, paymentID string) error
	UpdateStatus(ctx context.Context, orderID, status string, updatedAt time.Time) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) LinkPayment(ctx context.Context, orderID, paymentID string) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"asaas_payment_id": paymentID,
			"updated_at":       time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *orderRepoImpl) UpdateStatus(ctx context.Context, orderID, status string, updatedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": updatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
