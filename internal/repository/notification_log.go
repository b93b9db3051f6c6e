package repository

import (
	"context"
	"storefront-checkout/internal/model"

	"gorm.io/gorm"
)

type NotificationLogRepository interface {
	Create(ctx context.Context, entry *model.NotificationLog) error
}

type notificationLogRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationLogRepository(db *gorm.DB) NotificationLogRepository {
	return &notificationLogRepositoryImpl{db: db}
}

func (r *notificationLogRepositoryImpl) Create(ctx context.Context, entry *model.NotificationLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
