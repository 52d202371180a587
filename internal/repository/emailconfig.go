package repository

import (
	"context"

	"asaas-integration-service/internal/model"

	"gorm.io/gorm"
)

// EmailConfigRepository reads the single email-override row. Callers read
// it fresh on every use; nothing is cached here.
type EmailConfigRepository interface {
	Get(ctx context.Context) (*model.EmailConfig, error)
}

type emailConfigRepoImpl struct {
	db *gorm.DB
}

func NewEmailConfigRepository(db *gorm.DB) EmailConfigRepository {
	return &emailConfigRepoImpl{
		db: db,
	}
}

func (r *emailConfigRepoImpl) Get(ctx context.Context) (*model.EmailConfig, error) {
	var cfg model.EmailConfig
	err := r.db.WithContext(ctx).First(&cfg).Error
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
