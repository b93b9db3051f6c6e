package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationKindCustomer = "customer"
	NotificationKindMerchant = "merchant"

	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

// NotificationLog records one confirmation email attempt.
type NotificationLog struct {
	ID        string `gorm:"primaryKey;size:36;not null"`
	Recipient string `gorm:"size:255;index;not null"`
	Subject   string `gorm:"size:255;not null"`
	Kind      string `gorm:"size:16;not null"`       // customer, merchant
	Status    string `gorm:"size:16;index;not null"` // sent, failed
	Error     string `gorm:"size:1024"`
	CreatedAt time.Time
}

func (l *NotificationLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
