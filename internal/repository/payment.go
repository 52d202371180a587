package repository

import (
	"context"
	"time"

	"asaas-integration-service/internal/model"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.PixPayment) error
	FindByPaymentID(ctx context.Context, paymentID string) (*model.PixPayment, error)
	UpdateStatus(ctx context.Context, paymentID, status string, updatedAt time.Time) error
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{
		db: db,
	}
}

func (r *paymentRepoImpl) Create(ctx context.Context, payment *model.PixPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepoImpl) FindByPaymentID(ctx context.Context, paymentID string) (*model.PixPayment, error) {
	var payment model.PixPayment
	err := r.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		First(&payment).Error

	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func (r *paymentRepoImpl) UpdateStatus(ctx context.Context, paymentID, status string, updatedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.PixPayment{}).
		Where("payment_id = ?", paymentID).
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
